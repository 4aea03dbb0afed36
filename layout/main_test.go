package layout

import (
	"math"
	"testing"
)

func TestInitCiudad(t *testing.T) {
	n, err := InitCiudad()
	if err != nil {
		t.Fatalf("InitCiudad: %s", err)
	}
	if len(n.Points) != 4 {
		t.Errorf("got %d points, want 4", len(n.Points))
	}
	if len(n.Routes) != 4 {
		t.Errorf("got %d routes, want 4", len(n.Routes))
	}
	for i, name := range []string{"R1", "R2", "R3", "R4"} {
		if got := n.MustRouteIndex(name); got != i {
			t.Errorf("route %s at index %d, want %d", name, got, i)
		}
	}
	if p := n.MustPoint("Terminal"); p.X != 2 || p.Y != 2 {
		t.Errorf("Terminal at (%v, %v), want (2, 2)", p.X, p.Y)
	}
}

func TestConnectUnknownPoint(t *testing.T) {
	_, err := Connect(
		[]Point{{Name: "A", X: 0, Y: 0}},
		[]Route{{Name: "R1", Stops: [2]string{"A", "Nowhere"}}},
		10, 10,
	)
	if err == nil {
		t.Fatalf("expected error for unknown point")
	}
}

func TestDistance(t *testing.T) {
	n, err := InitCiudad()
	if err != nil {
		t.Fatalf("InitCiudad: %s", err)
	}
	want := map[string]float64{
		"R1": math.Sqrt(45), // (2,2)→(8,5)
		"R2": math.Sqrt(18), // (8,5)→(5,8)
		"R3": math.Sqrt(45), // (2,2)→(5,8)
		"R4": 8,             // (2,2)→(10,2)
	}
	for _, r := range n.Routes {
		got := n.Distance(r)
		if math.Abs(got-want[r.Name]) > 1e-9 {
			t.Errorf("%s: distance %v, want %v", r.Name, got, want[r.Name])
		}
	}
}

func TestHeadingOf(t *testing.T) {
	setups := []struct {
		name   string
		dx, dy float64
		want   Heading
	}{
		{"east", 1, 0, HeadingRight},
		{"northeast-45", 1, 1, HeadingRight},
		{"north", 0, 1, HeadingUp},
		{"northwest-135", -1, 1, HeadingUp},
		{"west", -1, 0, HeadingLeft},
		{"southwest-135", -1, -1, HeadingDown},
		{"south", 0, -1, HeadingDown},
		{"southeast-45", 1, -1, HeadingRight},
	}
	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			if got := HeadingOf(s.dx, s.dy); got != s.want {
				t.Errorf("HeadingOf(%v, %v) = %s, want %s", s.dx, s.dy, got, s.want)
			}
		})
	}
}

func TestRouteHeadings(t *testing.T) {
	n, err := InitCiudad()
	if err != nil {
		t.Fatalf("InitCiudad: %s", err)
	}
	want := map[string]Heading{
		"R1": HeadingRight, // shallow climb east
		"R2": HeadingUp,    // exactly 135°
		"R3": HeadingUp,
		"R4": HeadingRight,
	}
	for _, r := range n.Routes {
		if got := n.Heading(r); got != want[r.Name] {
			t.Errorf("%s: heading %s, want %s", r.Name, got, want[r.Name])
		}
	}
}
