package fourier

import "errors"

var (
	// ErrEmptyInput is returned when a transform, normalization or
	// reconstruction is asked to work on zero samples.
	ErrEmptyInput = errors.New("fourier: empty input")

	// ErrLengthMismatch is returned when a coefficient set does not have the
	// length the frequency mapping was derived from.
	ErrLengthMismatch = errors.New("fourier: coefficient count mismatch")

	// ErrInvalidLength is returned for a negative output length.
	ErrInvalidLength = errors.New("fourier: invalid output length")
)
