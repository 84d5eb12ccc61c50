package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Reconstruct sums the rotating vectors described by coeffs at time t, where
// t = 1 is one full period. It returns the final point together with the
// chain of partial sums in ascending index order. The chain is freshly
// allocated on every call.
func Reconstruct(coeffs []complex128, t float64) (complex128, []complex128, error) {
	return ReconstructN(coeffs, len(coeffs), t)
}

// ReconstructN is Reconstruct with the term count stated explicitly. It fails
// with ErrLengthMismatch when len(coeffs) != n.
func ReconstructN(coeffs []complex128, n int, t float64) (complex128, []complex128, error) {
	if len(coeffs) == 0 {
		return 0, nil, ErrEmptyInput
	}
	if len(coeffs) != n {
		return 0, nil, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(coeffs), n)
	}

	chain := make([]complex128, n)
	var sum complex128
	for k, c := range coeffs {
		sum += c * rotation(t, Frequency(k, n))
		chain[k] = sum
	}
	return sum, chain, nil
}

func rotation(t float64, freq int) complex128 {
	return cmplx.Exp(complex(0, 2*math.Pi*t*float64(freq)))
}
