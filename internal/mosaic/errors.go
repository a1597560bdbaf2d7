package mosaic

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// Error kinds. Match them with errors.Is.
var (
	// ErrFileNotFound is returned when a source image or a tile is missing.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidParameter is returned for out-of-range block counts, negative
	// gaps or borders, malformed colors, ragged or empty maps.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrIO is returned when reading or writing an image or map file fails.
	ErrIO = errors.New("i/o failure")
)

// Error is a domain error carrying one of the kinds above.
type Error struct {
	// Kind is ErrFileNotFound, ErrInvalidParameter or ErrIO.
	Kind error

	// Message is the human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func fileNotFound(format string, args ...interface{}) error {
	return &Error{Kind: ErrFileNotFound, Message: fmt.Sprintf(format, args...)}
}

func invalidParameter(format string, args ...interface{}) error {
	return &Error{Kind: ErrInvalidParameter, Message: fmt.Sprintf(format, args...)}
}

func ioFailure(err error, format string, args ...interface{}) error {
	return &Error{Kind: ErrIO, Message: fmt.Sprintf(format, args...), Err: err}
}

// Errors splits an error returned by this package into its individual
// problems. Validation reports every problem it finds at once.
func Errors(err error) []error {
	return multierr.Errors(err)
}
