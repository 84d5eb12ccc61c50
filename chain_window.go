package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/epicycles/scene"
)

// ChainWindow draws the links of the current chain, tail to tip, with the
// locked joint highlighted.
type ChainWindow struct {
	scene *scene.Scene
}

func (cw *ChainWindow) Draw(renderer *sdl.Renderer) {
	cam := cw.scene.Camera
	chain := cw.scene.Frame().Chain
	locked, isLocked := cw.scene.Lock.Index()

	px, py := cam.ToScreen(0)
	for i, c := range chain {
		x, y := cam.ToScreen(c)
		setColor(renderer, linkColor)
		renderer.DrawLineF(float32(px), float32(py), float32(x), float32(y))
		if isLocked && i == locked {
			setColor(renderer, lockedColor)
		} else {
			setColor(renderer, jointColor)
		}
		fillDot(renderer, x, y, 2.5)
		px, py = x, y
	}
}
