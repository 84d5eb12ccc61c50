package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/VictorDenisov/epicycles/fourier"
)

type traceFrame struct {
	step  int
	t     float64
	chain []complex128
}

// Trace writes frames evenly spaced frames over one period, one line each.
func Trace(ctx context.Context, w io.Writer, series *fourier.Series, frames int, withChain bool) error {
	if frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", frames)
	}
	rotator, err := fourier.NewRotator(series.Coefficients(), 0, 1/float64(frames))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	textChan := formatFrames(ctx, produceFrames(ctx, rotator, frames), withChain)
	for line := range textChan {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Frames are produced by rotating the previous one; every resyncEvery
// frames the rotator is reset to the exact time to bound the drift.
const resyncEvery = 64

func produceFrames(ctx context.Context, rotator *fourier.Rotator, frames int) (out chan traceFrame) {
	out = make(chan traceFrame)
	go func() {
		defer close(out)
		for i := 0; i < frames; i++ {
			if i > 0 && i%resyncEvery == 0 {
				rotator.Reset(float64(i) / float64(frames))
			}
			f := traceFrame{i, rotator.Time(), rotator.Chain()}
			log.Tracef("Frame %d at t=%.4f", f.step, f.t)
			select {
			case <-ctx.Done():
				return
			case out <- f:
			}
			rotator.Advance()
		}
	}()
	return out
}

// formatFrames stops when ctx is done even if nobody reads out anymore.
func formatFrames(ctx context.Context, in chan traceFrame, withChain bool) (out chan string) {
	out = make(chan string)
	go func() {
		defer close(out)
		for f := range in {
			var b strings.Builder
			tip := f.chain[len(f.chain)-1]
			fmt.Fprintf(&b, "%d\t%.6f\t%.6f\t%.6f", f.step, f.t, real(tip), imag(tip))
			if withChain {
				for _, c := range f.chain {
					fmt.Fprintf(&b, "\t%.6f,%.6f", real(c), imag(c))
				}
			}
			b.WriteByte('\n')
			select {
			case <-ctx.Done():
				return
			case out <- b.String():
			}
		}
	}()
	return out
}
