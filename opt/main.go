// Package opt computes the route optimization metrics shown in the
// info panels: travel time, adjusted demand, and a ranking score.
package opt

import (
	"fmt"

	"github.com/johnnoDev/Ruta-4A/layout"
)

// Metrics are the derived figures for one route.
type Metrics struct {
	Route string `json:"route"`
	// DistanceKM is the euclidean length of the route.
	DistanceKM float64 `json:"distance-km"`
	// TimeMin is the congestion-adjusted travel time in minutes.
	TimeMin      float64 `json:"time-min"`
	Congestion   float64 `json:"congestion"`
	FrequencyMin float64 `json:"frequency-min"`
	// Demand is the adjusted demand; for R1 it absorbs R4's impact
	// coefficient.
	Demand        float64 `json:"demand"`
	Score         float64 `json:"score"`
	BusesRequired int     `json:"buses-required"`
}

func (m Metrics) String() string {
	return fmt.Sprintf("%s dist%.2f time%.2f demand%.0f score%.2f",
		m.Route, m.DistanceKM, m.TimeMin, m.Demand, m.Score)
}

// Compute derives the metrics for the route at index i.
//
// time = (distance / speed) × 60 × (1 + congestion)
// score = (demand × 0.5) / (time × 0.3 + frequency × 0.2)
func Compute(n *layout.Network, i int) Metrics {
	r := n.Routes[i]
	p := r.Params
	distance := n.Distance(r)
	time := (distance / p.AvgSpeedKmph) * 60 * (1 + p.Congestion)

	demand := p.Demand
	if r.Name == "R1" {
		// R4 diverts part of R1's riders.
		for _, other := range n.Routes {
			if other.Params.ImpactR1 != 0 {
				demand = p.Demand * (1 + other.Params.ImpactR1)
			}
		}
	}

	score := (demand * 0.5) / (time*0.3 + p.FrequencyMin*0.2)
	return Metrics{
		Route:         r.Name,
		DistanceKM:    distance,
		TimeMin:       time,
		Congestion:    p.Congestion,
		FrequencyMin:  p.FrequencyMin,
		Demand:        demand,
		Score:         score,
		BusesRequired: p.BusesRequired,
	}
}

// ComputeAll derives metrics for every route, in insertion order.
func ComputeAll(n *layout.Network) []Metrics {
	res := make([]Metrics, len(n.Routes))
	for i := range n.Routes {
		res[i] = Compute(n, i)
	}
	return res
}
