package shape_test

import (
	"math/cmplx"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictorDenisov/epicycles/shape"
)

var approx = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) < 1e-9
})

func TestRead(t *testing.T) {
	in := `# unit square
1 0
0,1

-1	0
  0, -1
`
	points, err := shape.Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 1i, -1, -1i}, points)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name, in, msg string
	}{
		{"empty", "", "no points"},
		{"comments only", "# nothing\n\n", "no points"},
		{"one coordinate", "1 2\n3\n", "line 2"},
		{"three coordinates", "1 2 3\n", "line 1"},
		{"not a number", "1 2\nx 4\n", "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := shape.Read(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := shape.Read(strings.NewReader(""))
	assert.ErrorIs(t, err, shape.ErrNoPoints)
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(name, []byte("1.5 -2\n3e2 0\n"), 0o644))

	points, err := shape.Load(name)
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(1.5, -2), 300}, points)

	_, err = shape.Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSquare(t *testing.T) {
	sq := shape.Square(100)
	require.Len(t, sq, 8)
	assert.Equal(t, complex(-100, -100), sq[0])
	assert.Equal(t, complex(-100, 0), sq[7])
}

func TestPolygon(t *testing.T) {
	if d := cmp.Diff([]complex128{1, 1i, -1, -1i}, shape.Polygon(4, 1, 1), approx); d != "" {
		t.Error(d)
	}

	tri := shape.Polygon(3, 2, 4)
	assert.Len(t, tri, 12)
	for _, p := range tri {
		assert.LessOrEqual(t, cmplx.Abs(p), 2+1e-9)
	}

	assert.Nil(t, shape.Polygon(2, 1, 1))
}

func TestStar(t *testing.T) {
	star := shape.Star(5, 10, 4)
	require.Len(t, star, 10)
	for i, p := range star {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		assert.InDelta(t, want, cmplx.Abs(p), 1e-9)
	}
	assert.InDelta(t, 10, imag(star[0]), 1e-9)
	assert.Nil(t, shape.Star(1, 1, 1))
}

func TestNamed(t *testing.T) {
	for _, name := range shape.Names() {
		points, err := shape.Named(name, 50)
		require.NoError(t, err, name)
		assert.NotEmpty(t, points, name)
	}

	_, err := shape.Named("dodecahedron", 1)
	assert.ErrorIs(t, err, shape.ErrUnknownShape)
	assert.Equal(t, []string{"circle", "hexagon", "square", "star", "triangle"}, shape.Names())
}
