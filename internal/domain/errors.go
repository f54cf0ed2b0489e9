package domain

import "errors"

var (
	ErrNotFound   = errors.New("presentation not found")
	ErrValidation = errors.New("invalid input")
	ErrConnection = errors.New("document store unavailable")
	ErrNotReady   = errors.New("presentation list not loaded")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return "invalid " + e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConnectionError reports that the document store could not be reached. Callers may
// retry by issuing the operation again.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return ErrConnection.Error()
	}
	return ErrConnection.Error() + ": " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}
