// Package apperr holds the typed errors shared by the gymstats domain packages
// and their mapping onto HTTP responses.
package apperr

import (
	"errors"
	"fmt"

	"github.com/2beens/gymtracker/pkg"

	"github.com/jackc/pgx/v5"
)

type Kind string

const (
	KindValidation       Kind = "validation_failure"
	KindUniqueness       Kind = "uniqueness_conflict"
	KindOwnership        Kind = "ownership_violation"
	KindImmutable        Kind = "immutable_resource_violation"
	KindAlreadyFinalized Kind = "already_finalized"
	KindNotFound         Kind = "not_found"
)

func (k Kind) String() string {
	return string(k)
}

type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += " [" + e.Field + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound) works
// regardless of field and message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrValidation       = &Error{Kind: KindValidation}
	ErrUniqueness       = &Error{Kind: KindUniqueness}
	ErrOwnership        = &Error{Kind: KindOwnership}
	ErrImmutable        = &Error{Kind: KindImmutable}
	ErrAlreadyFinalized = &Error{Kind: KindAlreadyFinalized}
	ErrNotFound         = &Error{Kind: KindNotFound}
)

func Validation(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Uniqueness(field, format string, args ...any) *Error {
	return &Error{Kind: KindUniqueness, Field: field, Message: fmt.Sprintf(format, args...)}
}

func Ownership(format string, args ...any) *Error {
	return &Error{Kind: KindOwnership, Message: fmt.Sprintf(format, args...)}
}

func Immutable(format string, args ...any) *Error {
	return &Error{Kind: KindImmutable, Message: fmt.Sprintf(format, args...)}
}

func AlreadyFinalized(format string, args ...any) *Error {
	return &Error{Kind: KindAlreadyFinalized, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// FromDB translates store errors into typed errors. Unrecognized errors are returned unchanged.
//   - no rows               -> NotFound
//   - unique violation      -> UniquenessConflict on field
//   - foreign key violation -> NotFound (referenced row is gone)
//   - check violation       -> ValidationFailure on field
func FromDB(err error, field string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return &Error{Kind: KindNotFound, Message: "resource not found", Err: err}
	case pkg.IsUniqueViolationError(err):
		return &Error{Kind: KindUniqueness, Field: field, Message: "already exists", Err: err}
	case pkg.IsForeignKeyViolationError(err):
		return &Error{Kind: KindNotFound, Field: field, Message: "referenced resource not found", Err: err}
	case pkg.IsCheckViolationError(err):
		return &Error{Kind: KindValidation, Field: field, Message: "constraint " + pkg.ConstraintName(err) + " violated", Err: err}
	default:
		return err
	}
}
