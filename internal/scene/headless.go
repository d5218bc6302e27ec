package scene

import (
	"image"
	"image/png"
	"io"

	"github.com/iburimskiy/image-particles/internal/config"
	"github.com/iburimskiy/image-particles/internal/input"
)

// Headless runs the effect without a window. The pointer follows a fixed
// script in display coordinates. It implements loop.Stepper.
type Headless struct {
	scene  *Scene
	script input.Script
	mapper input.Mapper
}

func NewHeadless(cfg config.Config, img image.Image) (*Headless, error) {
	sc, err := New(cfg)
	if err != nil {
		return nil, err
	}
	bw, bh := cfg.BufferSize(cfg.Width, cfg.Height)
	h := &Headless{
		scene:  sc,
		script: input.Script{Width: cfg.Width, Height: cfg.Height, Frames: cfg.Frames},
		mapper: input.Mapper{DisplayW: cfg.Width, DisplayH: cfg.Height, BufferW: bw, BufferH: bh},
	}
	sc.img = img
	if err := sc.Rebuild(bw, bh); err != nil {
		return nil, err
	}
	sc.Draw()
	return h, nil
}

func (h *Headless) Frame() error {
	ptr := h.mapper.Pointer(h.script.At(h.scene.sim.Frames()))
	h.scene.Step(ptr)
	h.scene.Draw()
	return nil
}

// Particles returns the number of live particles and how many are displaced.
func (h *Headless) Particles() (int, int) {
	return h.scene.sim.Len(), h.scene.sim.Displaced()
}

func (h *Headless) Image() *image.RGBA {
	return h.scene.frame.Image()
}

func (h *Headless) WritePNG(w io.Writer) error {
	return png.Encode(w, h.scene.frame.Image())
}
