package fourier

// Frequency maps bin index k of an n-term series to its signed rotation
// frequency: k for the lower half (k <= n/2), k-n above it.
func Frequency(k, n int) int {
	if k <= n/2 {
		return k
	}
	return k - n
}

// Frequencies returns Frequency(k, n) for every k in [0, n).
func Frequencies(n int) []int {
	r := make([]int, n)
	for k := 0; k < n; k++ {
		r[k] = Frequency(k, n)
	}
	return r
}
