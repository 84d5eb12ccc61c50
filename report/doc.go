// Package report turns an epicycle series into text and HTML for the
// command line: coefficient tables, traced frames, FFT cross-checks and
// charts.
package report
