package fourier_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const tolerance = 1e-9

var approx = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= tolerance*(1+cmplx.Abs(b))
})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func randomPath(rnd *rand.Rand, n int) []complex128 {
	p := make([]complex128, n)
	for i := range p {
		p[i] = complex(rnd.Float64()*200-100, rnd.Float64()*200-100)
	}
	return p
}

// Unit square traversed counterclockwise, one point per side.
var unitSquare = []complex128{1, 1i, -1, -1i}

// The eight point square of the viewer's default scene, scaled to 1.
var square8 = []complex128{
	complex(-1, -1),
	complex(0, -1),
	complex(1, -1),
	complex(1, 0),
	complex(1, 1),
	complex(0, 1),
	complex(-1, 1),
	complex(-1, 0),
}
