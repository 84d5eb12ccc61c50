package fourier

import (
	"math/cmplx"
)

func divNCS(src []complex128, s float64) (res []complex128) {
	res = make([]complex128, len(src))
	d := complex(s, 0)
	for i := 0; i < len(src); i++ {
		res[i] = src[i] / d
	}
	return res
}

// Magnitudes returns the radius of every epicycle.
func Magnitudes(coeffs []complex128) []float64 {
	r := make([]float64, len(coeffs))
	for i := 0; i < len(coeffs); i++ {
		r[i] = cmplx.Abs(coeffs[i])
	}
	return r
}

// Phases returns the starting angle of every epicycle in radians.
func Phases(coeffs []complex128) []float64 {
	r := make([]float64, len(coeffs))
	for i := 0; i < len(coeffs); i++ {
		r[i] = cmplx.Phase(coeffs[i])
	}
	return r
}
