package batch

import (
	"errors"
	"fmt"
)

// ErrLocked is returned when another run holds the run lock.
var ErrLocked = errors.New("another feedtally run is in progress")

// OpenError reports a document that was discovered but could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open document %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
