package fourier

import "math"

// Rotator advances a series by a fixed time step using one complex
// multiplication per term instead of a fresh exponential. Rounding error
// builds up with every step; call Reset to resynchronize.
type Rotator struct {
	coeffs []complex128
	terms  []complex128
	steps  []complex128
	t, dt  float64
}

// NewRotator prepares a rotator starting at time start and moving dt per
// Advance.
func NewRotator(coeffs []complex128, start, dt float64) (*Rotator, error) {
	if len(coeffs) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(coeffs)
	r := &Rotator{
		coeffs: make([]complex128, n),
		terms:  make([]complex128, n),
		steps:  make([]complex128, n),
		dt:     dt,
	}
	copy(r.coeffs, coeffs)
	for k := range r.steps {
		r.steps[k] = rotation(dt, Frequency(k, n))
	}
	r.Reset(start)
	return r, nil
}

// Reset moves the rotator to time t, recomputing every term exactly.
func (r *Rotator) Reset(t float64) {
	n := len(r.coeffs)
	for k, c := range r.coeffs {
		r.terms[k] = c * rotation(t, Frequency(k, n))
	}
	r.t = t
}

// Advance moves every term forward by one time step.
func (r *Rotator) Advance() {
	for k := range r.terms {
		r.terms[k] *= r.steps[k]
	}
	r.t += r.dt
}

// Time returns the current time wrapped into [0, 1).
func (r *Rotator) Time() float64 {
	return r.t - math.Floor(r.t)
}

// Chain returns a fresh slice of partial sums for the current time.
func (r *Rotator) Chain() []complex128 {
	chain := make([]complex128, len(r.terms))
	var sum complex128
	for k, v := range r.terms {
		sum += v
		chain[k] = sum
	}
	return chain
}
