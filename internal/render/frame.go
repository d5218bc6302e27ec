// Package render draws particles into a CPU-side RGBA surface that the
// window uploads once per frame.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/image-particles/internal/particle"
)

type Frame struct {
	img   *image.RGBA
	clear color.RGBA
}

func NewFrame(w, h int, clear color.RGBA) *Frame {
	return &Frame{
		img:   image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		clear: clear,
	}
}

// Resize reallocates the surface when the size changed.
func (f *Frame) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if b := f.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	f.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (f *Frame) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole surface with the clear colour.
func (f *Frame) Clear() {
	pix := f.img.Pix
	if len(pix) == 0 {
		return
	}
	c := f.clear
	pix[0], pix[1], pix[2], pix[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// Draw clears the surface and paints each particle as a size×size square at
// its rounded position. Squares are clipped to the surface.
func (f *Frame) Draw(ps []particle.Particle, size int) {
	f.Clear()
	w, h := f.Size()
	for i := range ps {
		x := int(math.Round(ps[i].X))
		y := int(math.Round(ps[i].Y))
		f.fillRect(x, y, size, size, w, h, ps[i].Color)
	}
}

func (f *Frame) fillRect(x, y, rw, rh, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+rw, w), min(y+rh, h)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for yy := y0; yy < y1; yy++ {
		row := f.img.Pix[f.img.PixOffset(x0, yy):f.img.PixOffset(x1, yy)]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// Pix returns the raw RGBA bytes, suitable for ebiten.Image.WritePixels.
func (f *Frame) Pix() []byte {
	return f.img.Pix
}

func (f *Frame) Image() *image.RGBA {
	return f.img
}
