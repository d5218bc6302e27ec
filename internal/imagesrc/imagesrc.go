// Package imagesrc supplies the decoded image the particles are sampled from.
package imagesrc

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/aquilax/go-perlin"
	"github.com/ncruces/zenity"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrDecode = errors.New("image decode failed")
)

// Patterns lists the file types Load can decode.
var Patterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp", "*.tif", "*.tiff"}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s: empty %s image", ErrDecode, path, format)
	}
	return img, nil
}

// Pick asks the user for an image file. An empty path and nil error mean the
// dialog was cancelled.
func Pick() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

// Default generates the built-in artwork: a perlin noise field shaded into
// a warm-to-cool palette, inside a soft-edged disc on a transparent canvas.
func Default(w, h int, seed int64) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	if w <= 0 || h <= 0 {
		return img
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)

	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) * 0.9
	scale := 4.0 / math.Max(float64(w), float64(h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / radius
			if d >= 1 {
				continue
			}
			n := (noise.Noise2D(float64(x)*scale, float64(y)*scale) + 1) / 2
			hue := 200 + n*160
			r, g, b := hsvToRgb(hue, 0.75, 0.55+0.45*clamp01(n))
			a := uint8(255 * clamp01((1-d)*6))
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
