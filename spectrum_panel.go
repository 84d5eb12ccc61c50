package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/epicycles/fourier"
)

// SpectrumPanel draws one bar per epicycle, ordered by signed frequency, with
// the height proportional to the radius.
type SpectrumPanel struct {
	radii []float64
	order []int
	area  AreaRect
}

func NewSpectrumPanel(coeffs []complex128) *SpectrumPanel {
	n := len(coeffs)
	order := make([]int, n)
	// Negative frequencies first, so the panel reads left to right.
	for k := 0; k < n; k++ {
		order[fourier.Frequency(k, n)+n-n/2-1] = k
	}
	return &SpectrumPanel{fourier.Magnitudes(coeffs), order, AreaRect{}}
}

func (this *SpectrumPanel) Draw(renderer *sdl.Renderer) {
	n := int32(len(this.radii))
	if n == 0 || this.area.w < n || this.area.h <= 0 {
		return
	}
	maxValue := this.radii[0]
	for _, r := range this.radii {
		if maxValue < r {
			maxValue = r
		}
	}
	if maxValue == 0 {
		return
	}
	columnWidth := this.area.w / n
	log.Tracef("Column width: %v\n", columnWidth)

	for i, k := range this.order {
		h := int32(this.radii[k] / maxValue * float64(this.area.h))
		rect := &sdl.Rect{
			X: this.area.x + int32(i)*columnWidth,
			Y: this.area.y + this.area.h - h,
			W: max(columnWidth-1, 1),
			H: h,
		}
		if fourier.Frequency(k, int(n)) == 0 {
			setColor(renderer, pointColor)
		} else {
			setColor(renderer, jointColor)
		}
		renderer.FillRect(rect)
	}
}
