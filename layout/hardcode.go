package layout

// InitCiudad builds the fixed four-point, four-route city map.
func InitCiudad() (*Network, error) {
	points := []Point{
		{Name: "Terminal", X: 2, Y: 2},
		{Name: "Hospital", X: 8, Y: 5},
		{Name: "El Recreo", X: 5, Y: 8},
		{Name: "Barrio Industrial", X: 10, Y: 2},
	}
	routes := []Route{
		{
			Name:  "R1",
			Stops: [2]string{"Terminal", "Hospital"},
			Params: Params{
				Color:         "blue",
				AvgSpeedKmph:  30,
				FrequencyMin:  15,
				Congestion:    0.7,
				Demand:        180,
				BusesRequired: 180,
			},
		},
		{
			Name:  "R2",
			Stops: [2]string{"Hospital", "El Recreo"},
			Params: Params{
				Color:         "green",
				AvgSpeedKmph:  25,
				FrequencyMin:  20,
				Congestion:    0.6,
				Demand:        150,
				BusesRequired: 150,
			},
		},
		{
			Name:  "R3",
			Stops: [2]string{"Terminal", "El Recreo"},
			Params: Params{
				Color:         "red",
				AvgSpeedKmph:  35,
				FrequencyMin:  25,
				Congestion:    0.4,
				Demand:        120,
				BusesRequired: 120,
			},
		},
		{
			Name:  "R4",
			Stops: [2]string{"Terminal", "Barrio Industrial"},
			Params: Params{
				Color:         "purple",
				AvgSpeedKmph:  40,
				FrequencyMin:  15,
				Congestion:    0.5,
				Demand:        100,
				BusesRequired: 2,
				ImpactR1:      -0.12,
			},
		},
	}
	n, err := Connect(points, routes, 12, 10)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
