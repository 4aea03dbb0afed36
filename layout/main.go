// Package layout models the fixed city map: named points, the routes
// between them, and per-route service parameters.
package layout

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Point is a named location on the map.
type Point struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Params are the static service parameters of one route.
type Params struct {
	Color        string  `json:"color"`
	AvgSpeedKmph float64 `json:"avg-speed-kmph"`
	FrequencyMin float64 `json:"frequency-min"`
	// Congestion is in [0, 1] and slows the effective speed.
	Congestion    float64 `json:"congestion"`
	Demand        float64 `json:"demand"`
	BusesRequired int     `json:"buses-required"`
	// ImpactR1 is nonzero only for the route whose service
	// diverts demand away from R1.
	ImpactR1 float64 `json:"impact-r1,omitempty"`
}

// Route is an ordered pair of point names with its parameters.
type Route struct {
	Name   string    `json:"name"`
	Stops  [2]string `json:"stops"`
	Params Params    `json:"params"`
}

// Network is the whole map. Routes keep insertion order; route cycling
// depends on it.
type Network struct {
	Points []Point `json:"points"`
	Routes []Route `json:"routes"`
	// Width and Height bound the drawable area.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Connect validates that every route endpoint names a known point.
func Connect(points []Point, routes []Route, width, height float64) (Network, error) {
	n := Network{Points: points, Routes: routes, Width: width, Height: height}
	for _, r := range n.Routes {
		for _, stop := range r.Stops {
			if slices.IndexFunc(points, func(p Point) bool { return p.Name == stop }) == -1 {
				return Network{}, fmt.Errorf("route %s: unknown point %q", r.Name, stop)
			}
		}
	}
	return n, nil
}

// MustPoint finds a point by name. It panics if the point does not
// exist; the map data is fixed, so a miss is a programmer error.
func (n *Network) MustPoint(name string) Point {
	i := slices.IndexFunc(n.Points, func(p Point) bool { return p.Name == name })
	if i == -1 {
		panic(fmt.Sprintf("found nothing when looking up for %s", name))
	}
	return n.Points[i]
}

// MustRouteIndex is like MustPoint but for routes.
func (n *Network) MustRouteIndex(name string) int {
	i := slices.IndexFunc(n.Routes, func(r Route) bool { return r.Name == name })
	if i == -1 {
		panic(fmt.Sprintf("found nothing when looking up for %s", name))
	}
	return i
}

// Endpoints returns the two stops of a route, in travel order.
func (n *Network) Endpoints(r Route) (from, to Point) {
	return n.MustPoint(r.Stops[0]), n.MustPoint(r.Stops[1])
}

// Distance is the euclidean length of the route in map units (km).
func (n *Network) Distance(r Route) float64 {
	from, to := n.Endpoints(r)
	return math.Hypot(to.X-from.X, to.Y-from.Y)
}

// Heading is a coarse 90°-banded direction of travel.
type Heading int

const (
	HeadingRight Heading = iota
	HeadingUp
	HeadingLeft
	HeadingDown
)

func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "right"
	case HeadingUp:
		return "up"
	case HeadingLeft:
		return "left"
	case HeadingDown:
		return "down"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// HeadingOf bands atan2(dy, dx) into four cases: (−45°, 45°] is right,
// (45°, 135°] is up, beyond ±135° is left, the rest is down.
func HeadingOf(dx, dy float64) Heading {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	switch {
	case deg >= -45 && deg <= 45:
		return HeadingRight
	case deg > 45 && deg <= 135:
		return HeadingUp
	case deg > 135 || deg < -135:
		return HeadingLeft
	default:
		return HeadingDown
	}
}

// Heading returns the travel direction of a route's single segment.
func (n *Network) Heading(r Route) Heading {
	from, to := n.Endpoints(r)
	return HeadingOf(to.X-from.X, to.Y-from.Y)
}
