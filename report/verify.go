package report

import (
	"fmt"
	"io"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/VictorDenisov/epicycles/fourier"
)

// Verify compares the direct transform of path against go-dsp's FFT and
// fails when any bin differs by more than tolerance times the largest bin.
func Verify(w io.Writer, path []complex128, tolerance float64) error {
	direct, err := fourier.Spectrum(path, len(path), 0)
	if err != nil {
		return err
	}
	input := make([]complex128, len(path))
	copy(input, path)
	fast := fft.FFT(input)

	var worst, scale float64
	worstBin := 0
	for k := range direct {
		if m := cmplx.Abs(fast[k]); m > scale {
			scale = m
		}
		if d := cmplx.Abs(direct[k] - fast[k]); d > worst {
			worst = d
			worstBin = k
		}
	}
	if scale == 0 {
		scale = 1
	}
	fmt.Fprintf(w, "bins: %d\nlargest bin: %g\nworst difference: %g at bin %d\nrelative: %g\n",
		len(direct), scale, worst, worstBin, worst/scale)
	if worst/scale > tolerance {
		return fmt.Errorf("direct transform differs from FFT by %g at bin %d", worst/scale, worstBin)
	}
	return nil
}
