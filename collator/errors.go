package collator

import (
	"errors"
	"fmt"
)

var errNotDirectory = errors.New("not a directory")

// NotFoundError reports a source root that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source root not found: %s", e.Path)
}

// AccessError reports a source root that exists but cannot be read.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// ReadError reports a discovered document that could not be read, naming
// the offending path.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("cannot read document %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a sink that could not receive the combined text.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot write combined text: %v", e.Err)
	}
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
