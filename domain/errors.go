package domain

import (
	"errors"
	"fmt"
)

type (
	// ValidationError reports a malformed or incomplete input.
	ValidationError struct {
		Message string
	}

	// NotFoundError reports that an entity addressed by id does not exist.
	NotFoundError struct {
		Resource string
	}

	// ConflictError reports a violated uniqueness rule.
	ConflictError struct {
		Message string
	}

	// TransactionError reports a failed multi-step write that was rolled back.
	TransactionError struct {
		Op  string
		Err error
	}

	// UpstreamError reports a failure of an external collaborator such as the
	// page fetcher or the model provider.
	UpstreamError struct {
		Kind    UpstreamKind
		Message string
		Err     error
	}

	UpstreamKind string
)

const (
	UpstreamFetchFailed   UpstreamKind = "fetch_failed"
	UpstreamModelFailed   UpstreamKind = "model_failed"
	UpstreamNoRecipe      UpstreamKind = "no_recipe_found"
	UpstreamPartialData   UpstreamKind = "partial_data"
	UpstreamAmbiguousData UpstreamKind = "ambiguous_data"
)

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *NotFoundError) Error() string { return fmt.Sprintf("no %s with that ID found", e.Resource) }

func (e *ConflictError) Error() string { return e.Message }

func (e *TransactionError) Error() string {
	if e.Err == nil {
		return e.Op + " failed"
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error { return e.Err }

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// SafeMessage returns the message that may be shown to a caller for err.
// Store and unknown failures are never exposed; ok is false for them.
func SafeMessage(err error) (message string, ok bool) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
		upstreamErr   *UpstreamError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error(), true
	case errors.As(err, &notFoundErr):
		return notFoundErr.Error(), true
	case errors.As(err, &conflictErr):
		return conflictErr.Error(), true
	case errors.As(err, &upstreamErr):
		if upstreamErr.Message != "" {
			return upstreamErr.Message, true
		}
		return string(upstreamErr.Kind), true
	}
	return "", false
}
