package types

import "errors"

// ErrorKind classifies caller-visible failures. All of them map to a 400 at
// the HTTP boundary; the kind and context let callers self-correct.
type ErrorKind int

const (
	// InvalidInput marks an upload that could not be parsed at all.
	InvalidInput ErrorKind = iota
	// EmptyInput marks an upload that parsed but holds zero data rows.
	EmptyInput
	// InvalidConfiguration marks a bad column reference, enum value, or an
	// otherwise unusable request parameter.
	InvalidConfiguration
)

// Error is the tagged failure type used across the engine. Context carries
// structured diagnostics (available column names and the like) that the API
// layer flattens into the JSON error body.
type Error struct {
	Kind    ErrorKind
	Message string
	Context map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// NewInvalidInput returns an InvalidInput error.
func NewInvalidInput(msg string) *Error {
	return &Error{Kind: InvalidInput, Message: msg}
}

// NewEmptyInput returns an EmptyInput error.
func NewEmptyInput(msg string) *Error {
	return &Error{Kind: EmptyInput, Message: msg}
}

// NewInvalidConfiguration returns an InvalidConfiguration error with optional
// structured context.
func NewInvalidConfiguration(msg string, ctx map[string]any) *Error {
	return &Error{Kind: InvalidConfiguration, Message: msg, Context: ctx}
}

// AsError unwraps err into *Error if it is one.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
