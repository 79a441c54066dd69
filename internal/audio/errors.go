package audio

import "errors"

// Failure taxonomy for the sample codec and everything built on top of it.
// Callers match with errors.Is; every error carries the offending path and
// the underlying cause via %w wrapping.
var (
	// ErrFileNotFound indicates the input path does not exist.
	ErrFileNotFound = errors.New("audio file not found")

	// ErrDecodeFailure indicates the input container is unreadable or corrupt.
	ErrDecodeFailure = errors.New("audio decode failed")

	// ErrEncodeFailure indicates the output container could not be built or written.
	ErrEncodeFailure = errors.New("audio encode failed")

	// ErrUnsupportedFormat indicates a sample width outside 8/16/32 bits.
	ErrUnsupportedFormat = errors.New("unsupported sample format")
)
