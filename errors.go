package huff

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrFormat is matched (via errors.Is) by every *FormatError.
	ErrFormat = errors.New("huff: unrecognized compressed format")

	// ErrTruncated is matched (via errors.Is) by every *TruncatedInputError.
	ErrTruncated = errors.New("huff: truncated input")
)

// FormatError reports a compressed stream whose header is not in this
// package's tree-header format.
type FormatError struct {
	// Magic is the leading 32-bit value that was read.
	Magic uint32

	// Reason describes what was wrong with the header.
	Reason string
}

// Error fulfills the error interface.
func (e *FormatError) Error() string {
	return "huff: " + e.Reason
}

// Is returns true for ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// TruncatedInputError reports a compressed stream that ended before the tree
// header was complete or before the EOF code was read.
type TruncatedInputError struct {
	// Section is one of "magic", "header", or "body".
	Section string

	// BitsRead is the number of bits consumed from Section before it ended.
	BitsRead uint64
}

// Error fulfills the error interface.
func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("huff: truncated input: stream ended after %d bits of %s", e.BitsRead, e.Section)
}

// Is returns true for ErrTruncated.
func (e *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncated
}

// IOError wraps a failure of the underlying bit stream.
type IOError struct {
	Op  string
	Err error
}

// Error fulfills the error interface.
func (e *IOError) Error() string {
	return "huff: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *IOError) Cause() error {
	return e.Err
}

var (
	_ error = (*FormatError)(nil)
	_ error = (*TruncatedInputError)(nil)
	_ error = (*IOError)(nil)
)

func isEOF(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

func readError(section string, bitsRead uint64, err error) error {
	if isEOF(err) {
		return &TruncatedInputError{Section: section, BitsRead: bitsRead}
	}
	return &IOError{Op: "read " + section, Err: errors.WithStack(err)}
}

func writeError(section string, err error) error {
	return &IOError{Op: "write " + section, Err: errors.WithStack(err)}
}
