package sim

import (
	"github.com/iburimskiy/image-particles/internal/particle"
)

// Simulator owns the particle set and the pointer the next frame will see.
// It is not safe for concurrent use; input, resize and frames are expected
// to run on the same goroutine, one after another.
type Simulator struct {
	params    Params
	particles []particle.Particle
	pointer   particle.Pointer
	frames    int
}

func New(params Params) *Simulator {
	return &Simulator{params: params}
}

// Replace discards the current set and adopts ps. Call it between frames.
func (s *Simulator) Replace(ps []particle.Particle) {
	s.particles = ps
}

func (s *Simulator) SetPointer(ptr particle.Pointer) {
	s.pointer = ptr
}

func (s *Simulator) Pointer() particle.Pointer {
	return s.pointer
}

func (s *Simulator) Params() Params {
	return s.params
}

// Step advances every particle by one frame.
func (s *Simulator) Step() {
	ptr := s.pointer
	for i := range s.particles {
		StepParticle(&s.particles[i], ptr, s.params)
	}
	s.frames++
}

// Particles returns the live set. Callers must not keep it across Replace.
func (s *Simulator) Particles() []particle.Particle {
	return s.particles
}

func (s *Simulator) Len() int {
	return len(s.particles)
}

// Displaced counts particles currently away from their origin.
func (s *Simulator) Displaced() int {
	n := 0
	for i := range s.particles {
		if s.particles[i].Displaced {
			n++
		}
	}
	return n
}

func (s *Simulator) Frames() int {
	return s.frames
}
