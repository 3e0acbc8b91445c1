package compression

import (
	"errors"
	"os"
)

// CodecError reports a failure inside the XZ encoder or decoder, typically a
// malformed or truncated stream. The underlying library message is preserved.
type CodecError struct {
	Err error
}

func (e *CodecError) Error() string { return e.Err.Error() }

func (e *CodecError) Unwrap() error { return e.Err }

// IOError reports a filesystem-level failure (permissions, disk full, path
// gone mid-operation) while streaming.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// classify splits an error surfacing from the streaming loop into the codec
// and filesystem categories. File operations report *os.PathError; anything
// else came out of the codec itself.
func classify(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return &IOError{Err: err}
	}
	return &CodecError{Err: err}
}
