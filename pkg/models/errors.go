package models

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-multierror"
)

var (
	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoSender is returned by Submit when no API client is attached.
	ErrNoSender = errors.New("no API client set, use SetAPIClient before calling Submit")
)

// InvalidArgumentError is returned immediately by a setter when a value
// fails a hard constraint.
type InvalidArgumentError struct {
	Field   string
	Message string
	Err     error
}

func (e *InvalidArgumentError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: invalid argument", e.Field)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func newInvalidArgument(field, message string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// ValidationError carries one message per field-level violation.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError collects the messages of a multierror. It returns nil
// when merr holds no errors.
func NewValidationError(merr *multierror.Error) error {
	if merr.ErrorOrNil() == nil {
		return nil
	}
	msgs := make([]string, 0, len(merr.Errors))
	for _, err := range merr.Errors {
		msgs = append(msgs, err.Error())
	}
	return &ValidationError{Errors: msgs}
}

// checkIn validates that value is one of allowed. Empty values must be
// handled by the caller.
func checkIn(field, label, value string, allowed []string) error {
	candidates := make([]interface{}, len(allowed))
	for i, a := range allowed {
		candidates[i] = a
	}
	err := validation.Validate(value,
		validation.Required,
		validation.In(candidates...),
	)
	if err != nil {
		return newInvalidArgument(field,
			fmt.Sprintf("%s must be one of: %s, got: %s", label, strings.Join(allowed, ", "), value),
			err)
	}
	return nil
}

// checkIntRange validates lo <= value <= hi.
func checkIntRange(field, message string, value, lo, hi int) error {
	err := validation.Validate(value,
		validation.Min(lo),
		validation.Max(hi),
	)
	if err == nil && value < lo {
		// Zero is skipped by ozzo's threshold rules.
		err = validation.NewError("validation_min_greater_equal_than_required", message)
	}
	if err != nil {
		return newInvalidArgument(field, message, err)
	}
	return nil
}

// checkNonNegative validates value >= 0.
func checkNonNegative(field, message string, value float64) error {
	if err := validation.Validate(value, validation.Min(0.0)); err != nil {
		return newInvalidArgument(field, message, err)
	}
	return nil
}
