package composite

import (
	"errors"
	"fmt"
)

var (
	ErrMissingParent = errors.New("node has no parent")
	ErrNodeNotFound  = errors.New("node not found")
)

// MissingParentError is returned when the path of a detached, non-root node
// is requested.
type MissingParentError struct {
	Name string
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("cannot resolve path of %q: %s", e.Name, ErrMissingParent)
}

func (e *MissingParentError) Unwrap() error {
	return ErrMissingParent
}

// ValidationError reports an unusable argument given to BuildFromDisk.
// Err holds the underlying error when there is one.
type ValidationError struct {
	Arg   string
	Cause string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid argument %q: %s: %v", e.Arg, e.Cause, e.Err)
	}
	return fmt.Sprintf("invalid argument %q: %s", e.Arg, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
