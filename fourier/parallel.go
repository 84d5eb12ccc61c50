package fourier

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// SpectrumParallel computes the same bins as Spectrum, splitting them into
// contiguous ranges handled by workers goroutines. workers <= 0 means one per
// CPU. Cancelling ctx stops the workers between bins.
func SpectrumParallel(ctx context.Context, samples []complex128, m int, offset float64, workers int) ([]complex128, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, m)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > m {
		workers = m
	}

	res := make([]complex128, m)
	if m == 0 {
		return res, nil
	}
	chunk := (m + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < m; lo += chunk {
		hi := lo + chunk
		if hi > m {
			hi = m
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				if ctx.Err() != nil {
					return
				}
				res[k] = Bin(samples, float64(k)+offset)
			}
		}(lo, hi)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
