package schedule

import "fmt"

// InvalidInputError reports a malformed request (missing professional, bad
// date, non-positive duration). Handlers surface it as a 400, never a 500.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewInvalidInputError(field, msg string) error {
	return &InvalidInputError{Field: field, Message: msg}
}

// DataAccessError reports an availability or booking store failure. The engine
// performs no retries; retry policy belongs to the caller.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
