package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Msg      string
	Err      error
}

func (e NotFoundError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s not found", e.Resource)
	default:
		return "not found"
	}
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// UnauthorizedError means the caller could not be authenticated.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// ForbiddenError means the caller is known but not allowed.
type ForbiddenError struct {
	Msg string
}

func (e ForbiddenError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "forbidden"
}

// DataAccessError wraps connection and query failures against the store.
// Its message never carries driver text; use Unwrap for logs.
type DataAccessError struct {
	Op  string
	Err error
}

func (e DataAccessError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("data access failed: %s", e.Op)
	}
	return "data access failed"
}

func (e DataAccessError) Unwrap() error { return e.Err }

// TimeoutError is returned when a store call outlives its deadline.
type TimeoutError struct {
	Op  string
	Err error
}

func (e TimeoutError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s timed out", e.Op)
	}
	return "operation timed out"
}

func (e TimeoutError) Unwrap() error { return e.Err }

// EmptyResultError signals "nothing to return" for callers that must answer
// with a no-data status instead of a server error.
type EmptyResultError struct {
	Resource string
}

func (e EmptyResultError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("no %s data", e.Resource)
	}
	return "no data"
}

// BatchItemFailure is one failed entry of a batch write.
type BatchItemFailure struct {
	ID  int64
	Err error
}

// PartialBatchFailure reports the entries of a non-atomic batch that failed.
// Entries not listed were applied.
type PartialBatchFailure struct {
	Total    int
	Failures []BatchItemFailure
}

func (e PartialBatchFailure) Error() string {
	return fmt.Sprintf("%d of %d updates failed", len(e.Failures), e.Total)
}

// AllFailed reports whether no entry of the batch was applied.
func (e PartialBatchFailure) AllFailed() bool {
	return e.Total > 0 && len(e.Failures) >= e.Total
}

func (e PartialBatchFailure) Unwrap() []error {
	out := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		out = append(out, f.Err)
	}
	return out
}

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsForbidden(err error) bool {
	var target ForbiddenError
	return errors.As(err, &target)
}

func IsDataAccess(err error) bool {
	var target DataAccessError
	return errors.As(err, &target)
}

func IsTimeout(err error) bool {
	var target TimeoutError
	return errors.As(err, &target)
}

func IsEmptyResult(err error) bool {
	var target EmptyResultError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// AsPartialBatch extracts a PartialBatchFailure from err.
func AsPartialBatch(err error) (PartialBatchFailure, bool) {
	var target PartialBatchFailure
	ok := errors.As(err, &target)
	return target, ok
}
