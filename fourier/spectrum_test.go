package fourier_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/VictorDenisov/epicycles/fourier"
)

func TestSpectrumEmptyInput(t *testing.T) {
	_, err := fourier.Spectrum(nil, 4, 0)
	assert.ErrorIs(t, err, fourier.ErrEmptyInput)

	_, err = fourier.Spectrum([]complex128{}, 0, 0)
	assert.ErrorIs(t, err, fourier.ErrEmptyInput)
}

func TestSpectrumNegativeLength(t *testing.T) {
	_, err := fourier.Spectrum(unitSquare, -1, 0)
	assert.ErrorIs(t, err, fourier.ErrInvalidLength)
}

func TestSpectrumUnitSquare(t *testing.T) {
	spectrum, err := fourier.Spectrum(unitSquare, len(unitSquare), 0)
	require.NoError(t, err)
	coeffs, err := fourier.Normalize(spectrum, len(unitSquare))
	require.NoError(t, err)

	diff(t, []complex128{0, 1, 0, 0}, coeffs, approx)
}

func TestSpectrumDoesNotMutateInput(t *testing.T) {
	in := append([]complex128(nil), square8...)
	_, err := fourier.Spectrum(in, 12, 0.5)
	require.NoError(t, err)
	assert.Equal(t, square8, in)
}

func TestSpectrumTruncation(t *testing.T) {
	full, err := fourier.Spectrum(square8, 8, 0)
	require.NoError(t, err)
	truncated, err := fourier.Spectrum(square8, 2, 0)
	require.NoError(t, err)

	require.Len(t, truncated, 2)
	assert.Equal(t, full[:2], truncated)

	// Direct sums for k=0 and k=1.
	var k0, k1 complex128
	for n, x := range square8 {
		k0 += x
		phi := -2 * math.Pi * float64(n) / 8
		k1 += x * complex(math.Cos(phi), math.Sin(phi))
	}
	diff(t, []complex128{k0, k1}, truncated, approx)
}

func TestSpectrumAliasesPastN(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	path := randomPath(rnd, 6)

	spectrum, err := fourier.Spectrum(path, 15, 0)
	require.NoError(t, err)
	for k := 6; k < 15; k++ {
		assert.InDelta(t, 0, cmplx.Abs(spectrum[k]-spectrum[k%6]), 1e-9, "bin %d", k)
	}
}

func TestSpectrumOffset(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	path := randomPath(rnd, 9)

	shifted, err := fourier.Spectrum(path, 5, 2)
	require.NoError(t, err)
	plain, err := fourier.Spectrum(path, 7, 0)
	require.NoError(t, err)
	diff(t, plain[2:], shifted, approx)

	half, err := fourier.Spectrum(path, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, fourier.Bin(path, 0.5), half[0])
}

func TestSpectrumLinearity(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 2, 5, 16, 31} {
		a := randomPath(rnd, n)
		b := randomPath(rnd, n)
		sum := make([]complex128, n)
		for i := range sum {
			sum[i] = a[i] + b[i]
		}

		sa, err := fourier.Spectrum(a, n, 0)
		require.NoError(t, err)
		sb, err := fourier.Spectrum(b, n, 0)
		require.NoError(t, err)
		ssum, err := fourier.Spectrum(sum, n, 0)
		require.NoError(t, err)

		want := make([]complex128, n)
		for i := range want {
			want[i] = sa[i] + sb[i]
		}
		diff(t, want, ssum, approx)
	}
}

func TestSpectrumDCTerm(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	path := randomPath(rnd, 13)

	spectrum, err := fourier.Spectrum(path, 1, 0)
	require.NoError(t, err)

	var mean complex128
	for _, p := range path {
		mean += p
	}
	mean /= complex(float64(len(path)), 0)
	diff(t, mean, spectrum[0]/13, approx)
}

func TestSpectrumMatchesFFT(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 3, 8, 17, 64} {
		path := randomPath(rnd, n)

		spectrum, err := fourier.Spectrum(path, n, 0)
		require.NoError(t, err)

		diff(t, fft.FFT(append([]complex128(nil), path...)), spectrum, approx)
		diff(t, gonumfourier.NewCmplxFFT(n).Coefficients(nil, path), spectrum, approx)
	}
}

func TestNormalize(t *testing.T) {
	coeffs := []complex128{4, 8i, -2 + 2i}
	got, err := fourier.Normalize(coeffs, 4)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2i, -0.5 + 0.5i}, got)
	assert.Equal(t, []complex128{4, 8i, -2 + 2i}, coeffs)

	_, err = fourier.Normalize(coeffs, 0)
	assert.ErrorIs(t, err, fourier.ErrEmptyInput)
}

func TestMagnitudesAndPhases(t *testing.T) {
	coeffs := []complex128{3 + 4i, -2, 1i}
	assert.Equal(t, []float64{5, 2, 1}, fourier.Magnitudes(coeffs))
	assert.InDeltaSlice(t, []float64{math.Atan2(4, 3), math.Pi, math.Pi / 2}, fourier.Phases(coeffs), 1e-12)
}

func BenchmarkSpectrum(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	path := randomPath(rnd, 256)

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		fourier.Spectrum(path, len(path), 0)
	}
}
