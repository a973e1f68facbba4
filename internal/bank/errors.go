package bank

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBank         = errors.New("question bank is empty")
	ErrUnknownExtension  = errors.New("unknown question bank extension")
	ErrUnsupportedFormat = errors.New("unsupported question bank format")
)

// LoadError reports a bank that could not be loaded. It is always fatal.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvariantError reports a question whose content is inconsistent, such as
// an answer index that does not name an option.
type InvariantError struct {
	Index  int
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("question %d: %s", e.Index+1, e.Reason)
}
