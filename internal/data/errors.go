package data

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidValue marks a field that was supplied but cannot be stored,
// such as an age that is not an integer.
var ErrInvalidValue = errors.New("invalid value")

// Kind groups store failures by cause. Callers at the HTTP boundary
// report every kind the same way but log it for operators.
type Kind int

const (
	KindUnknown Kind = iota
	KindConstraint
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// StoreError wraps a failure returned by the database while running Op.
type StoreError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	// postgres error classes: 08 connection exception,
	// 22 data exception, 23 integrity constraint violation
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "22", "23":
			return KindConstraint
		case "08":
			return KindConnection
		}
		return KindUnknown
	}

	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return KindConnection
	}

	return KindUnknown
}
