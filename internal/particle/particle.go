package particle

import (
	"image/color"
	"math"
)

// Particle is one sampled pixel. X0/Y0 is the rest position and is only
// written by the sampler.
type Particle struct {
	X, Y      float64 // Position
	X0, Y0    float64 // Origin
	VX, VY    float64 // Velocity
	Color     color.RGBA
	Displaced bool
}

func New(x, y float64, c color.RGBA) Particle {
	return Particle{X: x, Y: y, X0: x, Y0: y, Color: c}
}

func (p *Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// AtRest reports whether the particle sits exactly on its origin with no velocity.
func (p *Particle) AtRest() bool {
	return !p.Displaced && p.X == p.X0 && p.Y == p.Y0 && p.VX == 0 && p.VY == 0
}

// Pointer is the pointer state as seen by one frame.
type Pointer struct {
	X, Y    float64
	Present bool
	Pressed bool
}

func Absent() Pointer {
	return Pointer{}
}

func At(x, y float64, pressed bool) Pointer {
	return Pointer{X: x, Y: y, Present: true, Pressed: pressed}
}
