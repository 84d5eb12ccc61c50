package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/epicycles/scene"
)

// TrailWindow draws the recent tips as a polyline.
type TrailWindow struct {
	scene *scene.Scene
}

func (tw *TrailWindow) Draw(renderer *sdl.Renderer) {
	tips := tw.scene.Trail.Points()
	if len(tips) < 2 {
		return
	}
	points := make([]sdl.FPoint, len(tips))
	for i, p := range tips {
		x, y := tw.scene.Camera.ToScreen(p)
		points[i] = sdl.FPoint{X: float32(x), Y: float32(y)}
	}
	setColor(renderer, trailColor)
	renderer.DrawLinesF(points)
}
