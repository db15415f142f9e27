package digest

import "github.com/pkg/errors"

var (
	// ErrEncoding is returned when text input is not valid UTF-8.
	ErrEncoding = errors.New("digest: input is not valid UTF-8")

	// ErrLengthOverflow is returned when a message is too long for its bit
	// length to fit the 64-bit length field of SHA-256 padding.
	ErrLengthOverflow = errors.New("digest: message bit length overflows 64 bits")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unsupported names.
	ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")
)
