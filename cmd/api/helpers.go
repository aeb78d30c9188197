package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"castingagency/internal/data"
	"castingagency/internal/validator"

	"github.com/julienschmidt/httprouter"
)

type envelope map[string]any

func (app *application) readIdParam(r *http.Request) (int, error) {
	// httprouter stores interpolated URL parameters in the request context
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil || id < 1 {
		return 0, errors.New("invalid id parameter")
	}

	return id, nil
}

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	// trailing newline makes terminal output easier to read
	js = append(js, '\n')
	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
	return nil
}

// invalidFieldError reports a known field whose JSON value has the wrong type,
// such as {"name": 5}. The field counts as supplied.
type invalidFieldError struct {
	field string
	value string
}

func (e *invalidFieldError) Error() string {
	return fmt.Sprintf("field %q cannot hold a JSON %s", e.field, e.value)
}

func (e *invalidFieldError) Unwrap() error {
	return data.ErrInvalidValue
}

// readJSON decodes a single actor or movie document into dst. Bodies over
// 1MB, broken JSON, trailing documents and unknown keys (a "role" on an actor,
// say) all come back as plain errors. A wrong type on a known field comes back
// as *invalidFieldError once the remaining fields have been decoded.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var invalid error

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly formed JSON")
		case errors.As(err, &unmarshalTypeError):
			// a list or a bare string where the record object should be
			if unmarshalTypeError.Field == "" {
				return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
			}
			invalid = &invalidFieldError{field: unmarshalTypeError.Field, value: unmarshalTypeError.Value}
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		// the decoder has no typed error for unknown keys, golang/go#29035
		case strings.HasPrefix(err.Error(), "json: unknown field"):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			// dst was not a pointer to an input struct
			panic(err)
		default:
			return err
		}
	}

	// one record per request
	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return invalid
}

// readInput decodes a create or replace body and runs validate on it.
// Malformed bodies and missing fields are answered with 400. A field that is
// present but unusable is answered with 422, and only when nothing is missing.
// It reports whether the handler may carry on.
func (app *application) readInput(w http.ResponseWriter, r *http.Request, dst any, validate func(*validator.Validator)) bool {
	var invalid *invalidFieldError

	err := app.readJSON(w, r, dst)
	if err != nil && !errors.As(err, &invalid) {
		app.badRequestResponse(w, r, err)
		return false
	}

	v := validator.New()
	validate(v)
	if invalid != nil {
		delete(v.Errors, invalid.field)
	}

	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return false
	}

	if invalid != nil {
		app.unprocessableResponse(w, r, invalid)
		return false
	}

	return true
}

// formatAll projects every record through its Format method.
func formatAll[T interface{ Format() map[string]any }](records []T) []map[string]any {
	formatted := make([]map[string]any, 0, len(records))
	for _, record := range records {
		formatted = append(formatted, record.Format())
	}
	return formatted
}
