// Package sampler turns a decoded image into a set of particles resting on a
// fixed pixel grid.
package sampler

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/iburimskiy/image-particles/internal/particle"
)

var (
	ErrNoImage    = errors.New("sampler: image not loaded")
	ErrEmptyImage = errors.New("sampler: image has no pixels")
)

// Options control how the source is rasterized and scanned.
type Options struct {
	Step           int
	AlphaThreshold uint8
	// Background fills the buffer before the image is drawn. Alpha 0 skips the fill.
	Background   color.RGBA
	Interpolator draw.Interpolator
}

// Sample rasterizes img into a w×h buffer and scans it into particles.
func Sample(img image.Image, w, h int, opts Options) ([]particle.Particle, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	if w <= 0 || h <= 0 {
		return []particle.Particle{}, nil
	}
	buf := Rasterize(img, w, h, opts)
	return Scan(buf, opts.Step, opts.AlphaThreshold), nil
}

// Rasterize draws img stretched to exactly w×h over the background. The
// aspect ratio of the source is not preserved.
func Rasterize(img image.Image, w, h int, opts Options) *image.RGBA {
	buf := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background.A != 0 {
		draw.Draw(buf, buf.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	interp := opts.Interpolator
	if interp == nil {
		interp = draw.BiLinear
	}
	interp.Scale(buf, buf.Bounds(), img, img.Bounds(), draw.Over, nil)
	return buf
}

// Scan visits every step-th pixel in both axes and emits a particle for each
// pixel whose alpha exceeds threshold.
func Scan(buf *image.RGBA, step int, threshold uint8) []particle.Particle {
	if step <= 0 {
		step = 1
	}
	b := buf.Bounds()
	cols := (b.Dx() + step - 1) / step
	rows := (b.Dy() + step - 1) / step
	out := make([]particle.Particle, 0, cols*rows)

	for y := 0; y < b.Dy(); y += step {
		for x := 0; x < b.Dx(); x += step {
			i := buf.PixOffset(b.Min.X+x, b.Min.Y+y)
			a := buf.Pix[i+3]
			if a <= threshold {
				continue
			}
			c := unpremultiply(buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2], a)
			out = append(out, particle.New(float64(x), float64(y), c))
		}
	}
	return out
}

// unpremultiply returns the straight colour of an RGBA pixel, alpha dropped.
func unpremultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	n := color.NRGBAModel.Convert(color.RGBA{R: r, G: g, B: b, A: a}).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 0xff}
}
