package report

import (
	"fmt"
	"io"
	"math/cmplx"
	"sort"
	"text/tabwriter"

	"github.com/VictorDenisov/epicycles/fourier"
)

func newCoeffTable(coeffs []complex128) *coeffTable {
	n := len(coeffs)
	rows := make([]coeffRow, n)
	for i := 0; i < n; i++ {
		rows[i].index = i
		rows[i].freq = fourier.Frequency(i, n)
		rows[i].coeff = coeffs[i]
		rows[i].magn = cmplx.Abs(coeffs[i])
	}
	return &coeffTable{rows}
}

var _ sort.Interface = &coeffTable{}

type coeffTable struct {
	rows []coeffRow
}

func (s *coeffTable) Len() int {
	return len(s.rows)
}

func (s *coeffTable) Less(i, j int) bool {
	return s.rows[i].magn < s.rows[j].magn
}

func (s *coeffTable) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
}

type coeffRow struct {
	index int
	freq  int
	coeff complex128
	magn  float64
}

// Coefficients prints one row per epicycle, in index order or by
// decreasing radius.
func Coefficients(w io.Writer, series *fourier.Series, byMagnitude bool) error {
	s := newCoeffTable(series.Coefficients())
	if byMagnitude {
		sort.Stable(sort.Reverse(s))
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "k\tfreq\tre\tim\tradius\tphase\t\n")
	for _, u := range s.rows {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6f\t%.6f\t%.4f\t\n",
			u.index, u.freq, real(u.coeff), imag(u.coeff), u.magn, cmplx.Phase(u.coeff))
	}
	return tw.Flush()
}
