package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Camera maps world coordinates (y up) to screen pixels (y down). Target is
// the world point drawn at the center of the viewport.
type Camera struct {
	Target complex128
	Zoom   float64

	minZoom, maxZoom float64
	width, height    float64

	spring harmonica.Spring
	vx, vy float64
}

// NewCamera returns a camera whose follow spring is stepped fps times a
// second. A non-positive fps falls back to 60.
func NewCamera(minZoom, maxZoom float64, fps int) *Camera {
	if fps <= 0 {
		fps = 60
	}
	return &Camera{
		Zoom:    1,
		minZoom: minZoom,
		maxZoom: maxZoom,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}
}

func (c *Camera) Resize(w, h int32) {
	c.width = float64(w)
	c.height = float64(h)
}

// Scroll changes the zoom by the wheel delta, clamped to the configured
// limits.
func (c *Camera) Scroll(delta float64) {
	c.Zoom = math.Max(c.minZoom, math.Min(c.maxZoom, c.Zoom+delta))
}

// Pan moves the view by a mouse drag of (dx, dy) screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.Target -= complex(dx/c.Zoom, -dy/c.Zoom)
	c.vx, c.vy = 0, 0
}

// Follow moves Target one spring step towards p.
func (c *Camera) Follow(p complex128) {
	x, vx := c.spring.Update(real(c.Target), c.vx, real(p))
	y, vy := c.spring.Update(imag(c.Target), c.vy, imag(p))
	c.Target = complex(x, y)
	c.vx, c.vy = vx, vy
}

func (c *Camera) ToScreen(p complex128) (x, y float64) {
	x = (real(p)-real(c.Target))*c.Zoom + c.width/2
	y = -(imag(p)-imag(c.Target))*c.Zoom + c.height/2
	return x, y
}

func (c *Camera) ToWorld(x, y float64) complex128 {
	return complex(
		(x-c.width/2)/c.Zoom+real(c.Target),
		-(y-c.height/2)/c.Zoom+imag(c.Target),
	)
}
