package icon

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnnoDev/Ruta-4A/layout"
)

func TestFallback(t *testing.T) {
	m := Fallback()
	if m.W != MaskW || m.H != MaskH {
		t.Errorf("fallback is %dx%d, want %dx%d", m.W, m.H, MaskW, MaskH)
	}
	if m.Count() == 0 {
		t.Errorf("fallback mask is empty")
	}
	// body row in the middle
	if !m.At(MaskW/2, 3) {
		t.Errorf("expected body dot at (%d, 3)", MaskW/2)
	}
	// nothing in the first column; the body is inset
	if m.At(0, 0) {
		t.Errorf("unexpected dot at (0, 0)")
	}
}

func TestOriented(t *testing.T) {
	// 3×2 mask with one dot at the front-right corner.
	m := NewMask(3, 2)
	m.Set(2, 0)
	setups := []struct {
		name       string
		h          layout.Heading
		w, x, y, hh int
	}{
		{"right", layout.HeadingRight, 3, 2, 0, 2},
		{"up", layout.HeadingUp, 2, 0, 0, 3},
		{"left", layout.HeadingLeft, 3, 0, 0, 2},
		{"down", layout.HeadingDown, 2, 1, 2, 3},
	}
	for _, s := range setups {
		t.Run(s.name, func(t *testing.T) {
			o := m.Oriented(s.h)
			if o.W != s.w || o.H != s.hh {
				t.Fatalf("dims %dx%d, want %dx%d", o.W, o.H, s.w, s.hh)
			}
			if !o.At(s.x, s.y) {
				t.Errorf("expected dot at (%d, %d)", s.x, s.y)
			}
			if o.Count() != 1 {
				t.Errorf("count %d, want 1", o.Count())
			}
		})
	}
}

// Near-white pixels are background and never make it into the mask.
func TestFromImageThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2*MaskW, 2*MaskH))
	for y := 0; y < 2*MaskH; y++ {
		for x := 0; x < 2*MaskW; x++ {
			if x < MaskW { // left half: bus-ish blue
				img.Set(x, y, color.RGBA{R: 20, G: 20, B: 200, A: 255})
			} else { // right half: white background
				img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	m := FromImage(img)
	if !m.At(0, 0) || !m.At(MaskW/2-1, MaskH-1) {
		t.Errorf("expected left half set")
	}
	for y := 0; y < MaskH; y++ {
		for x := MaskW/2 + 1; x < MaskW; x++ {
			if m.At(x, y) {
				t.Errorf("background pixel kept at (%d, %d)", x, y)
			}
		}
	}
}

func TestFetch(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("encode png: %s", err)
	}

	t.Run("ok", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(buf.Bytes())
		}))
		defer srv.Close()
		m, err := Fetch(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("Fetch: %s", err)
		}
		if m.Count() == 0 {
			t.Errorf("mask is empty")
		}
	})
	t.Run("not-found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()
		_, err := Fetch(context.Background(), srv.URL)
		if err == nil {
			t.Fatalf("expected error on 404")
		}
	})
	t.Run("garbage", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("definitely not a png"))
		}))
		defer srv.Close()
		_, err := Fetch(context.Background(), srv.URL)
		if err == nil {
			t.Fatalf("expected decode error")
		}
	})
}
