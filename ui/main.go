// Package ui renders the map, the animated bus, and the info panels
// with termui, and owns the keyboard loop.
package ui

import (
	"fmt"
	"image"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/johnnoDev/Ruta-4A/guide"
	"github.com/johnnoDev/Ruta-4A/icon"
	"github.com/johnnoDev/Ruta-4A/layout"
)

const sidebarWidth = 34

var colors = map[string]termui.Color{
	"blue":   termui.ColorBlue,
	"green":  termui.ColorGreen,
	"red":    termui.ColorRed,
	"purple": termui.ColorMagenta,
}

// dimColor is used for the inactive routes.
const dimColor = termui.Color(8)

func routeColor(name string) termui.Color {
	if c, ok := colors[name]; ok {
		return c
	}
	return termui.ColorWhite
}

// Main runs the visualization until q or Ctrl-C. The Guide must
// already be stepping; Main only subscribes and draws.
func Main(g *guide.Guide, mask *icon.Mask) error {
	err := termui.Init()
	if err != nil {
		return fmt.Errorf("termui init: %w", err)
	}
	defer termui.Close()

	v := &view{g: g, mask: mask}
	snaps := make(chan guide.Snapshot, 1)
	g.SnapshotMux.Subscribe("ui", snaps)
	defer g.SnapshotMux.Unsubscribe(snaps)
	g.PublishSnapshot()

	uiEvents := termui.PollEvents()
	var last guide.Snapshot
	for {
		select {
		case e := <-uiEvents:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "<Space>":
				g.CycleRoute()
			case "<Resize>":
				termui.Clear()
				v.render(last)
			}
		case s := <-snaps:
			last = s
			v.render(s)
		}
	}
}

type view struct {
	g    *guide.Guide
	mask *icon.Mask
}

// render draws one frame. The canvas is rebuilt every frame; termui
// buffers per Render call, so this does not flicker.
func (v *view) render(s guide.Snapshot) {
	n := v.g.Network()
	w, h := termui.TerminalDimensions()
	mapW := w - sidebarWidth
	if mapW < 20 {
		mapW = w
	}

	c := termui.NewCanvas()
	c.Title = "Bus Simulator — Route Analysis"
	c.SetRect(0, 0, mapW, h-1)

	tr := newTransform(n, c.Inner)
	for _, r := range n.Routes {
		col := dimColor
		if r.Name == s.Route.Name {
			col = routeColor(r.Params.Color)
		}
		from, to := n.Endpoints(r)
		if r.Name == s.Route.Name {
			c.SetLine(tr.dot(from.X, from.Y), tr.dot(to.X, to.Y), col)
		} else {
			drawDashed(c, tr.dot(from.X, from.Y), tr.dot(to.X, to.Y), col)
		}
	}
	for _, p := range n.Points {
		d := tr.dot(p.X, p.Y)
		// fat dot for the stop
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				c.SetPoint(image.Pt(d.X+dx, d.Y+dy), termui.ColorWhite)
			}
		}
	}
	drawMask(c, v.mask.Oriented(s.Heading), tr.dot(s.X, s.Y), routeColor(s.Route.Params.Color))

	items := []termui.Drawable{c}
	for _, p := range n.Points {
		items = append(items, pointLabel(tr, p))
	}
	items = append(items, v.panels(s, mapW, h)...)
	termui.Render(items...)
}

func (v *view) panels(s guide.Snapshot, x0, h int) []termui.Drawable {
	route := widgets.NewParagraph()
	route.Title = "Route"
	route.Text = fmt.Sprintf("Active: %s (%s → %s)\nSpeed: %.0f km/h\nCongestion: %.0f%%\nFrequency: %.0f min\nBuses: %d",
		s.Route.Name, s.Route.Stops[0], s.Route.Stops[1],
		s.Route.Params.AvgSpeedKmph, s.Route.Params.Congestion*100,
		s.Route.Params.FrequencyMin, s.Route.Params.BusesRequired)
	route.SetRect(x0, 0, x0+sidebarWidth, 7)

	m := s.Metrics
	metrics := widgets.NewParagraph()
	metrics.Title = "Optimization Metrics"
	metrics.Text = fmt.Sprintf("Distance: %.2f km\nTime: %.2f min\nDemand: %.0f\nScore: %.2f",
		m.DistanceKM, m.TimeMin, m.Demand, m.Score)
	metrics.SetRect(x0, 7, x0+sidebarWidth, 13)

	impact := widgets.NewParagraph()
	impact.Title = "Impact"
	impact.Text = v.impactText(s)
	impact.SetRect(x0, 13, x0+sidebarWidth, 19)

	help := widgets.NewParagraph()
	help.Border = false
	help.Text = "SPACE: next route   q: quit"
	help.SetRect(0, h-1, x0+sidebarWidth, h)

	return []termui.Drawable{route, metrics, impact, help}
}

// impactText describes R4's demand diversion; it concerns only R1 (the
// affected route) and R4 (the cause).
func (v *view) impactText(s guide.Snapshot) string {
	n := v.g.Network()
	var r4 layout.Route
	found := false
	for _, r := range n.Routes {
		if r.Params.ImpactR1 != 0 {
			r4, found = r, true
		}
	}
	if !found {
		return ""
	}
	pct := -r4.Params.ImpactR1 * 100
	switch s.Route.Name {
	case "R1":
		return fmt.Sprintf("Impact of %s:\nReduces demand on R1: %.0f%%\nExtra buses needed: %d",
			r4.Name, pct, r4.Params.BusesRequired)
	case r4.Name:
		return fmt.Sprintf("Impact of this route:\nReduces demand on R1: %.0f%%\nBuses required: %d",
			pct, r4.Params.BusesRequired)
	}
	return ""
}

// transform maps world coordinates to braille-dot coordinates inside a
// canvas. Braille cells are 2 dots wide and 4 tall; y is flipped so
// the world origin is bottom-left.
type transform struct {
	n     *layout.Network
	inner image.Rectangle
}

func newTransform(n *layout.Network, inner image.Rectangle) transform {
	return transform{n: n, inner: inner}
}

func (t transform) dot(x, y float64) image.Point {
	dotW := t.inner.Dx() * 2
	dotH := t.inner.Dy() * 4
	dx := t.inner.Min.X*2 + int(x/t.n.Width*float64(dotW-1))
	dy := t.inner.Min.Y*4 + (dotH - 1 - int(y/t.n.Height*float64(dotH-1)))
	return image.Pt(dx, dy)
}

// cell converts a world coordinate to a terminal cell, for labels.
func (t transform) cell(x, y float64) image.Point {
	d := t.dot(x, y)
	return image.Pt(d.X/2, d.Y/4)
}

func pointLabel(tr transform, p layout.Point) termui.Drawable {
	l := widgets.NewParagraph()
	l.Border = false
	l.Text = p.Name
	c := tr.cell(p.X, p.Y+0.4)
	half := len(p.Name) / 2
	l.SetRect(c.X-half, c.Y-1, c.X-half+len(p.Name)+1, c.Y)
	return l
}

// drawDashed draws a dotted line by walking the segment and keeping
// every other step, the faint rendering for inactive routes.
func drawDashed(c *termui.Canvas, p0, p1 image.Point, col termui.Color) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		c.SetPoint(p0, col)
		return
	}
	for i := 0; i <= steps; i += 3 {
		x := p0.X + dx*i/steps
		y := p0.Y + dy*i/steps
		c.SetPoint(image.Pt(x, y), col)
	}
}

func drawMask(c *termui.Canvas, m *icon.Mask, at image.Point, col termui.Color) {
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				c.SetPoint(image.Pt(at.X-m.W/2+x, at.Y-m.H+y), col)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
