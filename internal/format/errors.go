package format

import "errors"

var (
	// ErrBadMagic indicates the buffer does not start with the QHF signature.
	ErrBadMagic = errors.New("format: bad magic")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrInvalidLength indicates a length field was negative or unrepresentable.
	ErrInvalidLength = errors.New("format: invalid length")
	// ErrInvalidEncoding indicates a decoded byte run is not valid text.
	ErrInvalidEncoding = errors.New("format: invalid text encoding")
)
