// Package web optionally exposes the running visualization over HTTP:
// an SSE stream of frames, the static network as JSON, and a score
// comparison chart.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/johnnoDev/Ruta-4A/guide"
	"github.com/johnnoDev/Ruta-4A/layout"
	"github.com/johnnoDev/Ruta-4A/opt"
	"github.com/r3labs/sse/v2"
	"go.uber.org/zap"
)

type Server struct {
	g   *guide.Guide
	s   *sse.Server
	mux *http.ServeMux
}

func NewServer(g *guide.Guide) *Server {
	s := &Server{
		g:   g,
		s:   sse.New(),
		mux: http.NewServeMux(),
	}
	s.mux.Handle("/events", s.s)
	s.mux.HandleFunc("/routes", s.handleRoutes)
	s.mux.HandleFunc("/chart.png", s.handleChart)
	go s.forward()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// forward republishes every guide snapshot on the "snapshot" stream.
func (s *Server) forward() {
	s.s.CreateStream("snapshot")
	defer s.s.RemoveStream("snapshot")
	ch := make(chan guide.Snapshot)
	s.g.SnapshotMux.Subscribe("web", ch)
	defer s.g.SnapshotMux.Unsubscribe(ch)
	for snap := range ch {
		data, err := json.Marshal(snap)
		if err != nil {
			zap.S().Errorf("web: marshal snapshot: %s", err)
			continue
		}
		s.s.TryPublish("snapshot", &sse.Event{Data: data})
	}
}

type routesResponse struct {
	Network *layout.Network `json:"network"`
	Metrics []opt.Metrics   `json:"metrics"`
}

func (s *Server) handleRoutes(w http.ResponseWriter, r *http.Request) {
	n := s.g.Network()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(routesResponse{
		Network: n,
		Metrics: opt.ComputeAll(n),
	})
	if err != nil {
		zap.S().Errorf("web: encode routes: %s", err)
	}
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")
	err := renderScoreChart(s.g.Network(), w)
	if err != nil {
		zap.S().Errorf("web: render chart: %s", err)
		http.Error(w, "chart render failed", http.StatusInternalServerError)
	}
}
