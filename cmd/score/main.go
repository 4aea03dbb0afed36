// Command score prints the optimization metrics for every route and
// exits; it is the headless counterpart of the visualization.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/johnnoDev/Ruta-4A/layout"
	"github.com/johnnoDev/Ruta-4A/opt"
)

func main() {
	n, err := layout.InitCiudad()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init map: %s\n", err)
		os.Exit(1)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ROUTE\tDISTANCE\tTIME\tCONGESTION\tFREQUENCY\tDEMAND\tSCORE\tBUSES")
	for _, m := range opt.ComputeAll(n) {
		fmt.Fprintf(w, "%s\t%.2f km\t%.2f min\t%.0f%%\t%.0f min\t%.0f\t%.2f\t%d\n",
			m.Route, m.DistanceKM, m.TimeMin, m.Congestion*100,
			m.FrequencyMin, m.Demand, m.Score, m.BusesRequired)
	}
	w.Flush()
}
