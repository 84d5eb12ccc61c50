// Package shape produces the closed paths fed to the transform: parsed from
// a point file or generated procedurally.
package shape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrNoPoints     = errors.New("shape: no points")
	ErrUnknownShape = errors.New("shape: unknown shape")
)

// Read parses one point per line. Coordinates are separated by whitespace
// or a comma; blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]complex128, error) {
	points := make([]complex128, 0)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, complex(x, y))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}

func Load(name string) ([]complex128, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	points, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return points, nil
}

// Square is the eight point square, corners and edge midpoints, starting at
// the lower left corner.
func Square(half float64) []complex128 {
	return []complex128{
		complex(-half, -half),
		complex(0, -half),
		complex(half, -half),
		complex(half, 0),
		complex(half, half),
		complex(0, half),
		complex(-half, half),
		complex(-half, 0),
	}
}

// Polygon returns the vertices of a regular polygon, counterclockwise from
// the positive x axis, with perSide points along each edge.
func Polygon(sides int, radius float64, perSide int) []complex128 {
	if sides < 3 {
		return nil
	}
	if perSide < 1 {
		perSide = 1
	}
	vertices := Circle(sides, radius)
	points := make([]complex128, 0, sides*perSide)
	for i := 0; i < sides; i++ {
		a, b := vertices[i], vertices[(i+1)%sides]
		for j := 0; j < perSide; j++ {
			f := complex(float64(j)/float64(perSide), 0)
			points = append(points, a+(b-a)*f)
		}
	}
	return points
}

func Circle(n int, radius float64) []complex128 {
	points := make([]complex128, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / float64(n)
		points[i] = complex(radius*math.Cos(phi), radius*math.Sin(phi))
	}
	return points
}

// Star alternates between outer and inner radius, 2*tips points in total.
func Star(tips int, outer, inner float64) []complex128 {
	if tips < 2 {
		return nil
	}
	points := make([]complex128, 2*tips)
	for i := range points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		phi := math.Pi/2 + math.Pi*float64(i)/float64(tips)
		points[i] = complex(r*math.Cos(phi), r*math.Sin(phi))
	}
	return points
}

var builtin = map[string]func(size float64) []complex128{
	"square":   func(size float64) []complex128 { return Square(size) },
	"triangle": func(size float64) []complex128 { return Polygon(3, size, 4) },
	"hexagon":  func(size float64) []complex128 { return Polygon(6, size, 3) },
	"circle":   func(size float64) []complex128 { return Circle(32, size) },
	"star":     func(size float64) []complex128 { return Star(5, size, size*0.4) },
}

// Named returns one of the built-in shapes scaled by size.
func Named(name string, size float64) ([]complex128, error) {
	gen, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownShape, name, strings.Join(Names(), ", "))
	}
	return gen(size), nil
}

func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
