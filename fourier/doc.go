// Package fourier decomposes a closed path of complex samples into rotating
// vectors and sums them back at a given time.
//
// The transform is a direct summation over the samples. The number of output
// bins is independent of the number of samples: fewer bins truncate the
// spectrum to its lowest indices, more bins keep evaluating the same sum past
// N, where the bins alias onto the low ones.
//
// A typical session:
//
//	series, err := fourier.Decompose(path, len(path), 0)
//	if err != nil {
//		return err
//	}
//	tip, chain := series.At(0.25)
//
// Every function here is pure. Callers own the time value and the coefficient
// slices; nothing is cached between calls.
package fourier
