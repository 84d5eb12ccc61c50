package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/VictorDenisov/epicycles/fourier"
)

// Chart writes an HTML page with the input points overlaid on the
// reconstructed outline, and a bar chart of the epicycle radii.
func Chart(name string, path []complex128, series *fourier.Series, steps int) error {
	page := components.NewPage()
	page.PageTitle = "epicycles"
	page.AddCharts(
		pathChart(path, series.Outline(steps)),
		radiusChart(series.Coefficients()),
	)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func pathChart(path, outline []complex128) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Path",
			Subtitle: fmt.Sprintf("%d points, %d outline samples", len(path), len(outline)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)
	points := make([]opts.ScatterData, len(path))
	for i, p := range path {
		points[i] = opts.ScatterData{Value: []float64{real(p), imag(p)}, SymbolSize: 8}
	}
	scatter.AddSeries("input", points)

	line := charts.NewLine()
	closed := append(outline, outline[:min(1, len(outline))]...)
	lineData := make([]opts.LineData, len(closed))
	for i, p := range closed {
		lineData[i] = opts.LineData{Value: []float64{real(p), imag(p)}}
	}
	line.AddSeries("reconstruction", lineData)
	scatter.Overlap(line)
	return scatter
}

func radiusChart(coeffs []complex128) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Epicycle radii",
		Subtitle: "by signed frequency",
	}))
	n := len(coeffs)
	radii := fourier.Magnitudes(coeffs)
	labels := make([]int, n)
	barData := make([]opts.BarData, n)
	for i := 0; i < n; i++ {
		labels[i] = fourier.Frequency(i, n)
		barData[i] = opts.BarData{Value: radii[i]}
	}
	bar.SetXAxis(labels).AddSeries("radius", barData)
	return bar
}
