package domain

import "errors"

// Error kinds reported by the persistence gateway
var (
	ErrDirectoryResolution = errors.New("directory resolution error")
	ErrDirectoryCreation   = errors.New("directory creation error")
	ErrPathResolution      = errors.New("path resolution error")
	ErrRead                = errors.New("read error")
	ErrWrite               = errors.New("write error")
)

// Causes that do not originate from the operating system
var (
	ErrInvalidUTF8  = errors.New("stream did not contain valid UTF-8")
	ErrEmptyDataDir = errors.New("application data directory is empty")
)

// Error describes a failed gateway operation. Kind is one of the Err* kinds
// above and Err is the underlying cause.
type Error struct {
	Kind    error
	Message string
	Path    string
	Err     error
}

// NewError returns an Error of the given kind wrapping cause
func NewError(kind error, message, path string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Path: path, Err: cause}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
