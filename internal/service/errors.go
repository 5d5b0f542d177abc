package service

import "errors"

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to
// ErrInvalidInput and, when set, to the error that caused it.
type invalidInputError struct {
	fields []FieldError
	cause  error
}

func (e *invalidInputError) Error() string {
	if e.cause != nil {
		return ErrInvalidInput.Error() + ": " + e.cause.Error()
	}
	return ErrInvalidInput.Error()
}

func (e *invalidInputError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrInvalidInput, e.cause}
	}
	return []error{ErrInvalidInput}
}

func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// invalidField reports a single bad field caused by err, so callers can
// still match the underlying sentinel with errors.Is.
func invalidField(field string, err error) error {
	return &invalidInputError{
		fields: []FieldError{{Field: field, Message: err.Error()}},
		cause:  err,
	}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var ie *invalidInputError
	if errors.As(err, &ie) {
		return ie.Fields()
	}
	return nil
}
