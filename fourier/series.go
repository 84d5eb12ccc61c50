package fourier

import "fmt"

// Series is a frozen set of normalized coefficients. It is safe for
// concurrent use since nothing mutates it after construction.
type Series struct {
	coeffs []complex128
}

// NewSeries copies coeffs into a new Series.
func NewSeries(coeffs []complex128) (*Series, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyInput
	}
	c := make([]complex128, len(coeffs))
	copy(c, coeffs)
	return &Series{c}, nil
}

// Decompose transforms path into circles terms starting at the given
// frequency offset and normalizes them by the sample count.
func Decompose(path []complex128, circles int, offset float64) (*Series, error) {
	spectrum, err := Spectrum(path, circles, offset)
	if err != nil {
		return nil, fmt.Errorf("decompose: %w", err)
	}
	coeffs, err := Normalize(spectrum, len(path))
	if err != nil {
		return nil, fmt.Errorf("decompose: %w", err)
	}
	if len(coeffs) == 0 {
		return nil, fmt.Errorf("decompose: %w: no circles requested", ErrEmptyInput)
	}
	return &Series{coeffs}, nil
}

// Len is the number of epicycles.
func (s *Series) Len() int {
	return len(s.coeffs)
}

// Coefficients returns a copy of the normalized coefficients.
func (s *Series) Coefficients() []complex128 {
	c := make([]complex128, len(s.coeffs))
	copy(c, s.coeffs)
	return c
}

// At returns the final point and the chain at time t.
func (s *Series) At(t float64) (complex128, []complex128) {
	// Length is fixed at construction, the error can't happen.
	p, chain, _ := Reconstruct(s.coeffs, t)
	return p, chain
}

// Point returns only the final point at time t without building a chain.
func (s *Series) Point(t float64) complex128 {
	n := len(s.coeffs)
	var sum complex128
	for k, c := range s.coeffs {
		sum += c * rotation(t, Frequency(k, n))
	}
	return sum
}

// Outline samples the reconstructed path at steps evenly spaced times in
// [0, 1).
func (s *Series) Outline(steps int) []complex128 {
	if steps <= 0 {
		return nil
	}
	r := make([]complex128, steps)
	for i := 0; i < steps; i++ {
		r[i] = s.Point(float64(i) / float64(steps))
	}
	return r
}
