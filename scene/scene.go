package scene

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/VictorDenisov/epicycles/fourier"
)

type Options struct {
	Speed       float64 // periods per second
	TrailLength int
	PickRadius  float64 // world units
	MinZoom     float64
	MaxZoom     float64
	FPS         int
}

// DefaultOptions matches the pacing of the interactive viewer: one period
// every five seconds, zoom between 0.1 and 50.
func DefaultOptions() Options {
	return Options{
		Speed:       0.2,
		TrailLength: 512,
		PickRadius:  10,
		MinZoom:     0.1,
		MaxZoom:     50,
		FPS:         60,
	}
}

// Frame is what the presentation layer draws for one step.
type Frame struct {
	T     float64
	Tip   complex128
	Chain []complex128
}

type Scene struct {
	Series *fourier.Series
	Clock  *Clock
	Camera *Camera
	Lock   *LockOn
	Trail  *Trail

	frame Frame
}

func New(series *fourier.Series, opts Options) *Scene {
	s := &Scene{
		Series: series,
		Clock:  NewClock(opts.Speed),
		Camera: NewCamera(opts.MinZoom, opts.MaxZoom, opts.FPS),
		Lock:   NewLockOn(opts.PickRadius),
		Trail:  NewTrail(opts.TrailLength),
	}
	s.frame = s.evaluate()
	return s
}

func (s *Scene) evaluate() Frame {
	t := s.Clock.Time()
	tip, chain := s.Series.At(t)
	return Frame{t, tip, chain}
}

// Step advances the clock by dt, recomputes the chain and lets the trail and
// camera catch up with it.
func (s *Scene) Step(dt time.Duration) Frame {
	s.Clock.Advance(dt)
	s.frame = s.evaluate()
	s.Trail.Push(s.frame.Tip)
	if p, ok := s.Lock.Target(s.frame.Chain); ok {
		s.Camera.Follow(p)
	}
	log.Tracef("t=%.4f tip=%v", s.frame.T, s.frame.Tip)
	return s.frame
}

// Frame returns the last computed frame.
func (s *Scene) Frame() Frame {
	return s.frame
}

// Click picks the chain link under the screen position (x, y).
func (s *Scene) Click(x, y float64) bool {
	p := s.Camera.ToWorld(x, y)
	picked := s.Lock.Pick(s.frame.Chain, p)
	if picked {
		i, _ := s.Lock.Index()
		log.Infof("Locked on link %d", i)
	}
	return picked
}

// ToggleLock switches between following the tip and free camera.
func (s *Scene) ToggleLock() {
	s.Lock.Toggle(len(s.frame.Chain))
	i, locked := s.Lock.Index()
	log.Infof("Lock on: %v (link %d)", locked, i)
}
