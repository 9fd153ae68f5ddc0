package services

import "fmt"

// ValidationError reports invalid input rejected before touching the
// store. Maps to HTTP 400.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }
func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an operation against a record that does not
// exist. Maps to HTTP 404.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("expense %d not found", e.ID) }

// StorageError reports a failure of the underlying store. Maps to
// HTTP 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }
