// Package guide owns the animation state: which route is active and
// where the bus is on it. All mutation goes through the Guide, which
// publishes an immutable Snapshot after every change.
package guide

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/johnnoDev/Ruta-4A/layout"
	"github.com/johnnoDev/Ruta-4A/notify"
	"github.com/johnnoDev/Ruta-4A/opt"
)

// TickInterval is the animation period.
const TickInterval = 50 * time.Millisecond

const (
	// baseStep is the progress gained per tick at reference speed on a
	// congestion-free route.
	baseStep = 0.01
	// refSpeedKmph is the speed at which a route moves at baseStep.
	refSpeedKmph = 30
)

// Position is the transient motion state of the bus on the active
// route. Progress stays in [0, 1) and Segment within route bounds;
// both wrap rather than error.
type Position struct {
	Segment  int     `json:"segment"`
	Progress float64 `json:"progress"`
}

func (p Position) String() string {
	return fmt.Sprintf("seg%d+%.3f", p.Segment, p.Progress)
}

// Snapshot is one published frame of the simulation.
type Snapshot struct {
	Session    uuid.UUID      `json:"session"`
	Tick       uint64         `json:"tick"`
	RouteIndex int            `json:"route-index"`
	Route      layout.Route   `json:"route"`
	Pos        Position       `json:"pos"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Heading    layout.Heading `json:"heading"`
	Metrics    opt.Metrics    `json:"metrics"`
}

func (s Snapshot) String() string {
	return fmt.Sprintf("t%d %s %s (%.2f, %.2f) %s",
		s.Tick, s.Route.Name, s.Pos, s.X, s.Y, s.Heading)
}

type Guide struct {
	n       *layout.Network
	session uuid.UUID

	mu     sync.Mutex
	tick   uint64
	active int
	pos    Position

	SnapshotMux *notify.Multiplexer[Snapshot]
	snapshotS   *notify.MultiplexerSender[Snapshot]
}

func NewGuide(n *layout.Network) *Guide {
	g := &Guide{
		n:       n,
		session: uuid.New(),
	}
	g.snapshotS, g.SnapshotMux = notify.NewMultiplexerSender[Snapshot]("guide")
	return g
}

func (g *Guide) Network() *layout.Network { return g.n }

// Snapshot returns the current frame without publishing it.
func (g *Guide) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// PublishSnapshot pushes the current frame to all subscribers, e.g. so
// a freshly subscribed UI has something to draw before the first tick.
func (g *Guide) PublishSnapshot() {
	g.snapshotS.Send(g.Snapshot())
}

// snapshot assembles a frame. g.mu must be held.
func (g *Guide) snapshot() Snapshot {
	r := g.n.Routes[g.active]
	from, to := g.segmentEndpoints(r)
	return Snapshot{
		Session:    g.session,
		Tick:       g.tick,
		RouteIndex: g.active,
		Route:      r,
		Pos:        g.pos,
		X:          from.X + (to.X-from.X)*g.pos.Progress,
		Y:          from.Y + (to.Y-from.Y)*g.pos.Progress,
		Heading:    layout.HeadingOf(to.X-from.X, to.Y-from.Y),
		Metrics:    opt.Compute(g.n, g.active),
	}
}

// segmentEndpoints returns the endpoints of the segment the bus is
// currently on. g.mu must be held.
func (g *Guide) segmentEndpoints(r layout.Route) (from, to layout.Point) {
	from = g.n.MustPoint(r.Stops[g.pos.Segment])
	next := g.pos.Segment + 1
	if next >= len(r.Stops) {
		next = 0
	}
	to = g.n.MustPoint(r.Stops[next])
	return
}

// Step advances the bus one tick and publishes the resulting frame.
// The per-tick progress scales with route speed and shrinks with
// congestion; progress and segment wrap at their bounds.
func (g *Guide) Step() Snapshot {
	g.mu.Lock()
	r := g.n.Routes[g.active]
	p := r.Params
	step := baseStep * (p.AvgSpeedKmph / refSpeedKmph) * (1 - p.Congestion*0.5)
	g.pos.Progress += step
	if g.pos.Progress >= 1 {
		g.pos.Progress = 0
		g.pos.Segment++
		if g.pos.Segment >= len(r.Stops)-1 {
			g.pos.Segment = 0
		}
	}
	g.tick++
	s := g.snapshot()
	g.mu.Unlock()
	g.snapshotS.Send(s)
	return s
}

// CycleRoute activates the next route in insertion order, wrapping
// past the last, and resets the bus to the start of the route.
func (g *Guide) CycleRoute() Snapshot {
	g.mu.Lock()
	g.active = (g.active + 1) % len(g.n.Routes)
	g.pos = Position{}
	s := g.snapshot()
	g.mu.Unlock()
	g.snapshotS.Send(s)
	return s
}

// Run steps the animation every TickInterval until ctx is done.
func (g *Guide) Run(ctx context.Context) {
	t := time.NewTicker(TickInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			g.Step()
		}
	}
}
