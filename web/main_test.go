package web

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/johnnoDev/Ruta-4A/guide"
	"github.com/johnnoDev/Ruta-4A/layout"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	n, err := layout.InitCiudad()
	if err != nil {
		t.Fatalf("InitCiudad: %s", err)
	}
	return NewServer(guide.NewGuide(n))
}

func TestRoutesHandler(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/routes", nil))
	if rec.Code != 200 {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var res routesResponse
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %s", err)
	}
	if len(res.Metrics) != 4 {
		t.Errorf("got %d metric rows, want 4", len(res.Metrics))
	}
	if res.Network == nil || len(res.Network.Routes) != 4 {
		t.Errorf("network missing routes")
	}
}

func TestChartHandler(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", "/chart.png", nil))
	if rec.Code != 200 {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/png" {
		t.Errorf("content type %q, want image/png", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")) {
		t.Errorf("body is not a PNG")
	}
}
