package web

import (
	"io"

	"github.com/johnnoDev/Ruta-4A/layout"
	"github.com/johnnoDev/Ruta-4A/opt"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var chartColors = map[string]drawing.Color{
	"blue":   drawing.ColorBlue,
	"green":  drawing.ColorGreen,
	"red":    drawing.ColorRed,
	"purple": drawing.ColorFromHex("800080"),
}

// renderScoreChart draws one bar per route, scaled by its score.
func renderScoreChart(n *layout.Network, w io.Writer) error {
	metrics := opt.ComputeAll(n)
	bars := make([]chart.Value, 0, len(metrics))
	for i, m := range metrics {
		col, ok := chartColors[n.Routes[i].Params.Color]
		if !ok {
			col = drawing.ColorBlack
		}
		bars = append(bars, chart.Value{
			Label: m.Route,
			Value: m.Score,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}
	graph := chart.BarChart{
		Title:    "Route scores",
		Width:    512,
		Height:   400,
		BarWidth: 60,
		Bars:     bars,
	}
	return graph.Render(chart.PNG, w)
}
