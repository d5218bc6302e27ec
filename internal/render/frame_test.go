package render

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/image-particles/internal/particle"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func TestClearFillsSurface(t *testing.T) {
	f := NewFrame(7, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	f.Clear()
	img := f.Image()
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			if got := img.RGBAAt(x, y); got != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
				t.Fatalf("Pixel (%d,%d): expected clear colour, got %v", x, y, got)
			}
		}
	}
}

func TestDrawRoundsPosition(t *testing.T) {
	f := NewFrame(10, 10, black)
	p := particle.New(2, 3, red)
	p.X, p.Y = 2.4, 2.6

	f.Draw([]particle.Particle{p}, 3)
	img := f.Image()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 3 && y < 6
			got := img.RGBAAt(x, y)
			if inside && got != red {
				t.Errorf("Pixel (%d,%d): expected particle colour, got %v", x, y, got)
			}
			if !inside && got != black {
				t.Errorf("Pixel (%d,%d): expected clear colour, got %v", x, y, got)
			}
		}
	}

	if p.X != 2.4 || p.Y != 2.6 {
		t.Errorf("Draw must not write back rounded positions, got (%v,%v)", p.X, p.Y)
	}
}

func TestDrawClearsPreviousFrame(t *testing.T) {
	f := NewFrame(10, 10, black)
	f.Draw([]particle.Particle{particle.New(0, 0, red)}, 3)
	f.Draw([]particle.Particle{particle.New(6, 6, red)}, 3)

	if got := f.Image().RGBAAt(1, 1); got != black {
		t.Errorf("Expected old square cleared, got %v", got)
	}
	if got := f.Image().RGBAAt(7, 7); got != red {
		t.Errorf("Expected new square drawn, got %v", got)
	}
}

func TestDrawClipsToSurface(t *testing.T) {
	f := NewFrame(10, 10, black)
	ps := []particle.Particle{
		particle.New(-1, -1, red),
		particle.New(9, 9, red),
		particle.New(-50, 4, red),
		particle.New(4, 400, red),
	}
	f.Draw(ps, 3)
	img := f.Image()

	for _, pt := range [][2]int{{0, 0}, {1, 1}, {9, 9}} {
		if got := img.RGBAAt(pt[0], pt[1]); got != red {
			t.Errorf("Pixel %v: expected particle colour, got %v", pt, got)
		}
	}
	if got := img.RGBAAt(2, 2); got != black {
		t.Errorf("Pixel (2,2): expected clear colour, got %v", got)
	}
}

func TestEmptySurface(t *testing.T) {
	f := NewFrame(0, 0, black)
	f.Draw([]particle.Particle{particle.New(0, 0, red)}, 3)
	if len(f.Pix()) != 0 {
		t.Errorf("Expected no pixels, got %d bytes", len(f.Pix()))
	}
}

func TestResize(t *testing.T) {
	f := NewFrame(4, 4, black)
	before := f.Image()
	f.Resize(4, 4)
	if f.Image() != before {
		t.Error("Expected same-size resize to keep the surface")
	}
	f.Resize(8, 3)
	if w, h := f.Size(); w != 8 || h != 3 {
		t.Errorf("Expected 8x3, got %dx%d", w, h)
	}
	if len(f.Pix()) != 8*3*4 {
		t.Errorf("Expected %d bytes, got %d", 8*3*4, len(f.Pix()))
	}
}
