// Package icon loads the bus icon drawn on the map canvas. The icon is
// fetched from the network once at startup and reduced to an on/off
// dot mask; failures fall back to a synthesized bus shape.
package icon

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"net/http"

	"github.com/johnnoDev/Ruta-4A/layout"
	xdraw "golang.org/x/image/draw"
)

// DefaultURL is the bus icon fetched at startup.
const DefaultURL = "https://cdn-icons-png.flaticon.com/512/1061/1061186.png"

// Mask dimensions in canvas dots. Braille cells are 2×4 dots, so this
// is 8×2 terminal cells.
const (
	MaskW = 16
	MaskH = 8
)

// backgroundThreshold marks near-white pixels as background.
const backgroundThreshold = 200

// Mask is an on/off dot grid. The base mask faces right.
type Mask struct {
	W, H int
	bits []bool
}

func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, bits: make([]bool, w*h)}
}

func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

func (m *Mask) Set(x, y int) {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = true
}

// Count returns the number of set dots.
func (m *Mask) Count() int {
	c := 0
	for _, b := range m.bits {
		if b {
			c++
		}
	}
	return c
}

// Oriented returns the mask turned to face the given heading. Left is
// a horizontal flip rather than a 180° turn so the bus stays upright.
func (m *Mask) Oriented(h layout.Heading) *Mask {
	switch h {
	case HeadingBase:
		return m
	case layout.HeadingUp:
		n := NewMask(m.H, m.W)
		for y := 0; y < n.H; y++ {
			for x := 0; x < n.W; x++ {
				if m.At(m.W-1-y, x) {
					n.Set(x, y)
				}
			}
		}
		return n
	case layout.HeadingLeft:
		n := NewMask(m.W, m.H)
		for y := 0; y < n.H; y++ {
			for x := 0; x < n.W; x++ {
				if m.At(m.W-1-x, y) {
					n.Set(x, y)
				}
			}
		}
		return n
	default: // down
		n := NewMask(m.H, m.W)
		for y := 0; y < n.H; y++ {
			for x := 0; x < n.W; x++ {
				if m.At(y, m.H-1-x) {
					n.Set(x, y)
				}
			}
		}
		return n
	}
}

// HeadingBase is the direction the unrotated mask faces.
const HeadingBase = layout.HeadingRight

// Fetch downloads and decodes the icon, reducing it to a mask.
func Fetch(ctx context.Context, url string) (*Mask, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get: status %s", resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return FromImage(img), nil
}

// FromImage scales an image down to mask size and thresholds away the
// near-white background.
func FromImage(img image.Image) *Mask {
	small := image.NewRGBA(image.Rect(0, 0, MaskW, MaskH))
	xdraw.NearestNeighbor.Scale(small, small.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	m := NewMask(MaskW, MaskH)
	for y := 0; y < MaskH; y++ {
		for x := 0; x < MaskW; x++ {
			c := small.RGBAAt(x, y)
			if c.A < 128 {
				continue
			}
			if c.R > backgroundThreshold && c.G > backgroundThreshold && c.B > backgroundThreshold {
				continue
			}
			m.Set(x, y)
		}
	}
	return m
}

// Fallback synthesizes a simple side-view bus: a body slab with a
// windscreen notch and two wheels.
func Fallback() *Mask {
	m := NewMask(MaskW, MaskH)
	// body
	for y := 1; y <= 5; y++ {
		for x := 1; x <= MaskW-2; x++ {
			m.Set(x, y)
		}
	}
	// windscreen notch at the front (right)
	m.bits[1*MaskW+(MaskW-2)] = false
	// wheels
	for _, x := range []int{3, MaskW - 4} {
		m.Set(x, 6)
		m.Set(x+1, 6)
		m.Set(x, 7)
		m.Set(x+1, 7)
	}
	return m
}
