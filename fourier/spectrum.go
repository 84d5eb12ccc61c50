package fourier

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Spectrum evaluates m bins of the discrete Fourier transform of samples,
// starting at frequency offset:
//
//	X[k] = Σ samples[n]·exp(-i·2π·(k+offset)·n/N)
//
// m may differ from len(samples). Bins past N alias; they are not
// interpolated.
func Spectrum(samples []complex128, m int, offset float64) ([]complex128, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, m)
	}
	res := make([]complex128, m)
	for k := 0; k < m; k++ {
		res[k] = Bin(samples, float64(k)+offset)
	}
	return res, nil
}

// Bin returns the transform of samples evaluated at the (possibly fractional)
// bin k. It returns 0 for an empty slice.
func Bin(samples []complex128, k float64) complex128 {
	w := -2 * math.Pi * k / float64(len(samples))
	var sum complex128
	for n, x := range samples {
		sum += x * cmplx.Exp(complex(0, w*float64(n)))
	}
	return sum
}
