package data

import (
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidAgeFormat = fmt.Errorf("%w: age must be an integer", ErrInvalidValue)

// Age is the request-side form of an actor's age. Clients send it either
// as a JSON number (25) or as a quoted integer ("25"). Anything else still
// counts as a supplied age; Int reports it as unusable.
type Age struct {
	value int
	err   error
}

// called automatically by json.NewDecoder in helpers/readJSON. It never fails
// so that the rest of the body is still decoded and presence checks run first.
func (a *Age) UnmarshalJSON(jsonValue []byte) error {
	value := string(jsonValue)

	// a quoted value is unwrapped first, a bare number is used as is
	if unquoted, err := strconv.Unquote(value); err == nil {
		value = strings.TrimSpace(unquoted)
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		*a = Age{err: ErrInvalidAgeFormat}
		return nil
	}

	*a = Age{value: i}
	return nil
}

func (a Age) Int() (int, error) {
	return a.value, a.err
}
