package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/epicycles/config"
	"github.com/VictorDenisov/epicycles/fourier"
	"github.com/VictorDenisov/epicycles/scene"
)

type WindowSize struct {
	Width, Height int32
}

type AreaRect struct {
	// upper left corner coordinates and width and height
	x, y, w, h int32
}

type Viewer struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	windowSize WindowSize

	scene         *scene.Scene
	path          []complex128
	chainWindow   *ChainWindow
	trailWindow   *TrailWindow
	spectrumPanel *SpectrumPanel

	lastFrame time.Time
}

var (
	backgroundColor = sdl.Color{R: 36, G: 39, B: 58, A: 255}
	axisColor       = sdl.Color{R: 110, G: 115, B: 141, A: 255}
	pointColor      = sdl.Color{R: 166, G: 218, B: 149, A: 255}
	linkColor       = sdl.Color{R: 128, G: 135, B: 162, A: 255}
	jointColor      = sdl.Color{R: 147, G: 154, B: 183, A: 255}
	lockedColor     = sdl.Color{R: 237, G: 135, B: 150, A: 255}
	trailColor      = sdl.Color{R: 238, G: 212, B: 159, A: 255}
)

func setColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func newViewer(cfg config.Config, path []complex128, series *fourier.Series) (*Viewer, error) {
	sc := scene.New(series, cfg.SceneOptions())
	sc.Camera.Resize(cfg.Width, cfg.Height)

	window, err := sdl.CreateWindow("epicycles", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		cfg.Width, cfg.Height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}
	v := &Viewer{
		window:        window,
		renderer:      renderer,
		windowSize:    WindowSize{cfg.Width, cfg.Height},
		scene:         sc,
		path:          path,
		chainWindow:   &ChainWindow{sc},
		trailWindow:   &TrailWindow{sc},
		spectrumPanel: NewSpectrumPanel(series.Coefficients()),
		lastFrame:     time.Now(),
	}
	v.layout()
	return v, nil
}

func (this *Viewer) layout() {
	this.scene.Camera.Resize(this.windowSize.Width, this.windowSize.Height)
	h := this.windowSize.Height / 8
	this.spectrumPanel.area = AreaRect{0, this.windowSize.Height - h, this.windowSize.Width, h}
}

func (this *Viewer) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			this.windowSize.Width = e.Data1
			this.windowSize.Height = e.Data2
			this.layout()
		}
	case *sdl.MouseMotionEvent:
		log.Tracef("Mouse position: %v %v\n", e.X, e.Y)
		if e.State&sdl.BUTTON_LEFT > 0 {
			this.scene.Camera.Pan(float64(e.XRel), float64(e.YRel))
		}
	case *sdl.MouseWheelEvent:
		this.scene.Camera.Scroll(float64(e.Y))
		log.Tracef("Zoom: %v\n", this.scene.Camera.Zoom)
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			this.scene.Click(float64(e.X), float64(e.Y))
		}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			switch e.Keysym.Sym {
			case sdl.K_l:
				this.scene.ToggleLock()
			case sdl.K_c:
				this.scene.Trail.Clear()
			}
		}
	}
}

// Step advances the scene by the wall time since the previous step.
func (this *Viewer) Step() {
	now := time.Now()
	this.scene.Step(now.Sub(this.lastFrame))
	this.lastFrame = now
}

func (this *Viewer) Render() {
	setColor(this.renderer, backgroundColor)
	this.renderer.Clear()

	this.drawAxes()
	this.drawPoints()
	this.trailWindow.Draw(this.renderer)
	this.chainWindow.Draw(this.renderer)
	this.spectrumPanel.Draw(this.renderer)

	this.renderer.Present()
	this.updateTitle()
}

func (this *Viewer) drawAxes() {
	cam := this.scene.Camera
	x, y := cam.ToScreen(0)
	setColor(this.renderer, axisColor)
	this.renderer.DrawLineF(0, float32(y), float32(this.windowSize.Width), float32(y))
	this.renderer.DrawLineF(float32(x), 0, float32(x), float32(this.windowSize.Height))
}

func (this *Viewer) drawPoints() {
	setColor(this.renderer, pointColor)
	for _, p := range this.path {
		x, y := this.scene.Camera.ToScreen(p)
		fillDot(this.renderer, x, y, 5)
	}
}

// updateTitle stands in for on-screen text: time, lock state and the world
// coordinates under the cursor.
func (this *Viewer) updateTitle() {
	mx, my, _ := sdl.GetMouseState()
	w := this.scene.Camera.ToWorld(float64(mx), float64(my))
	i, locked := this.scene.Lock.Index()
	lock := "none"
	if locked {
		lock = fmt.Sprint(i)
	}
	this.window.SetTitle(fmt.Sprintf("epicycles  t=%.2f  lock=%s  %.2f %+.2fi",
		this.scene.Frame().T, lock, real(w), imag(w)))
}

func fillDot(renderer *sdl.Renderer, x, y, r float64) {
	renderer.FillRectF(&sdl.FRect{X: float32(x - r), Y: float32(y - r), W: float32(2 * r), H: float32(2 * r)})
}

func (this *Viewer) Destroy() {
	this.renderer.Destroy()
	this.window.Destroy()
}
