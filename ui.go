package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/VictorDenisov/epicycles/config"
	"github.com/VictorDenisov/epicycles/fourier"
)

func MainLoop(ctx context.Context, cfg config.Config, path []complex128, series *fourier.Series) (err error) {
	done := make(chan struct{})
	renderLoopComplete := make(chan struct{})
	sdl.Main(func() {
		sdl.Do(func() {
			err = sdl.Init(sdl.INIT_VIDEO)
		})
		if err != nil {
			return
		}
		defer sdl.Do(func() { sdl.Quit() })

		var viewer *Viewer
		sdl.Do(func() {
			viewer, err = newViewer(cfg, path, series)
		})
		if err != nil {
			return
		}
		defer sdl.Do(func() { viewer.Destroy() })

		go RenderLoop(viewer, cfg.FPS, done, renderLoopComplete)
		EventLoop(ctx, viewer, done)
		log.Info("Waiting for render loop")
		<-renderLoopComplete
	})
	return err
}

// EventLoop polls with a timeout so the render loop gets the main thread
// between events.
func EventLoop(ctx context.Context, viewer *Viewer, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		var event sdl.Event
		sdl.Do(func() {
			event = sdl.WaitEventTimeout(10)
		})
		for event != nil {
			switch event.(type) {
			case *sdl.QuitEvent:
				log.Info("Quit")
				return
			default:
				sdl.Do(func() {
					viewer.handleEvent(event)
				})
			}
			sdl.Do(func() {
				event = sdl.PollEvent()
			})
		}
	}
}

func RenderLoop(viewer *Viewer, fps int, done, complete chan struct{}) {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
outer:
	for {
		select {
		case <-ticker.C:
			sdl.Do(func() {
				viewer.Step()
				viewer.Render()
			})
		case <-done:
			break outer
		}
	}
	complete <- struct{}{}
}
