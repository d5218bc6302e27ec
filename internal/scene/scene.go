// Package scene ties an image, the simulator and a drawing surface together.
package scene

import (
	"fmt"
	"image"
	"log"

	"github.com/iburimskiy/image-particles/internal/config"
	"github.com/iburimskiy/image-particles/internal/particle"
	"github.com/iburimskiy/image-particles/internal/render"
	"github.com/iburimskiy/image-particles/internal/sampler"
	"github.com/iburimskiy/image-particles/internal/sim"
)

// Scene is the image, the simulator and the surface it draws into. Both the
// window and the headless runner drive one.
type Scene struct {
	opts  sampler.Options
	size  int
	sim   *sim.Simulator
	frame *render.Frame
	img   image.Image

	w, h int
}

func New(cfg config.Config) (*Scene, error) {
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	clearColor, err := config.ParseColor(cfg.ClearColor)
	if err != nil {
		return nil, err
	}
	interp, err := config.Interpolator(cfg.Interpolation)
	if err != nil {
		return nil, err
	}
	return &Scene{
		opts: sampler.Options{
			Step:           cfg.Step,
			AlphaThreshold: uint8(cfg.AlphaThreshold),
			Background:     bg,
			Interpolator:   interp,
		},
		size:  cfg.Size,
		sim:   sim.New(sim.ParamsFrom(cfg)),
		frame: render.NewFrame(0, 0, clearColor),
	}, nil
}

// SetImage swaps the source image and rebuilds at the current size. A nil
// image leaves the surface blank.
func (s *Scene) SetImage(img image.Image) error {
	s.img = img
	return s.Rebuild(s.w, s.h)
}

func (s *Scene) Image() image.Image {
	return s.img
}

// Rebuild resamples the current image at w×h and replaces every particle.
func (s *Scene) Rebuild(w, h int) error {
	s.w, s.h = w, h
	s.frame.Resize(w, h)
	if s.img == nil {
		s.sim.Replace(nil)
		return nil
	}
	ps, err := sampler.Sample(s.img, w, h, s.opts)
	if err != nil {
		s.sim.Replace(nil)
		return fmt.Errorf("sample image: %w", err)
	}
	s.sim.Replace(ps)
	if w > 0 && h > 0 {
		log.Printf("sampled %d particles at %dx%d", len(ps), w, h)
	}
	return nil
}

// Step runs one frame of physics against ptr.
func (s *Scene) Step(ptr particle.Pointer) {
	s.sim.SetPointer(ptr)
	s.sim.Step()
}

// Draw clears the surface and paints every particle.
func (s *Scene) Draw() {
	s.frame.Draw(s.sim.Particles(), s.size)
}

// Size is the buffer size the particles were last sampled for.
func (s *Scene) Size() (int, int) {
	return s.w, s.h
}

func (s *Scene) Sim() *sim.Simulator {
	return s.sim
}

func (s *Scene) Frame() *render.Frame {
	return s.frame
}
