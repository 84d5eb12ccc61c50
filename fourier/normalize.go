package fourier

import "fmt"

// Normalize divides every coefficient by the sample count n, turning raw
// transform output into rotation amplitudes. The input is left untouched.
func Normalize(coeffs []complex128, n int) ([]complex128, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count %d", ErrEmptyInput, n)
	}
	return divNCS(coeffs, float64(n)), nil
}
