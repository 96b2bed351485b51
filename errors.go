package textkit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks an operation invoked with an unusable Source,
	// such as the zero value. Always fatal to the call.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidWindow marks a co-occurrence window smaller than one.
	ErrInvalidWindow = errors.New("invalid window")
	// ErrFileRead marks a file source that could not be read. The
	// underlying cause is wrapped and remains visible to errors.Is and
	// errors.As. WordFrequency deliberately does not use this marker; its
	// read failures propagate untagged.
	ErrFileRead = errors.New("file read error")
)

// wrapRead tags err with ErrFileRead while keeping the cause available
// for unwrapping.
func wrapRead(operation, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrFileRead, operation, path, err)
}
