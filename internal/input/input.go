// Package input turns raw mouse and touch state into the pointer seen by the
// simulation.
package input

import (
	"math"

	"github.com/iburimskiy/image-particles/internal/particle"
)

// Mapper converts display coordinates into backing buffer pixels.
type Mapper struct {
	DisplayW, DisplayH int
	BufferW, BufferH   int
}

func (m Mapper) ToBuffer(x, y float64) (float64, float64) {
	if m.DisplayW <= 0 || m.DisplayH <= 0 {
		return x, y
	}
	return x * float64(m.BufferW) / float64(m.DisplayW), y * float64(m.BufferH) / float64(m.DisplayH)
}

// Pointer maps a display-space pointer into buffer space.
func (m Mapper) Pointer(p particle.Pointer) particle.Pointer {
	if !p.Present {
		return particle.Absent()
	}
	p.X, p.Y = m.ToBuffer(p.X, p.Y)
	return p
}

type Touch struct {
	X, Y int
}

// Sample is one poll of the input devices, in buffer coordinates.
type Sample struct {
	CursorX, CursorY int
	MouseDown        bool
	Touches          []Touch
	Width, Height    int
}

// Tracker keeps the pointer across polls. A lifted touch leaves the pointer
// absent until the mouse cursor moves again.
type Tracker struct {
	touching     bool
	touchEnded   bool
	lastCursorX  int
	lastCursorY  int
	pointer      particle.Pointer
	pressedEdges int
}

func (t *Tracker) Update(s Sample) particle.Pointer {
	wasPressed := t.pointer.Present && t.pointer.Pressed
	t.pointer = t.resolve(s)
	if t.pointer.Present && t.pointer.Pressed && !wasPressed {
		t.pressedEdges++
	}
	return t.pointer
}

func (t *Tracker) resolve(s Sample) particle.Pointer {
	defer func() { t.lastCursorX, t.lastCursorY = s.CursorX, s.CursorY }()

	if len(s.Touches) > 0 {
		t.touching = true
		t.touchEnded = false
		tc := s.Touches[0]
		return particle.At(float64(tc.X), float64(tc.Y), true)
	}
	if t.touching {
		t.touching = false
		t.touchEnded = true
		return particle.Absent()
	}
	if t.touchEnded {
		if s.CursorX == t.lastCursorX && s.CursorY == t.lastCursorY && !s.MouseDown {
			return particle.Absent()
		}
		t.touchEnded = false
	}

	if s.CursorX < 0 || s.CursorY < 0 || s.CursorX >= s.Width || s.CursorY >= s.Height {
		return particle.Absent()
	}
	return particle.At(float64(s.CursorX), float64(s.CursorY), s.MouseDown)
}

func (t *Tracker) Pointer() particle.Pointer {
	return t.pointer
}

// TakePress reports whether the pointer went down since the last call.
func (t *Tracker) TakePress() bool {
	if t.pressedEdges == 0 {
		return false
	}
	t.pressedEdges = 0
	return true
}

// Script is a fixed pointer path over a display of Width×Height: the pointer
// sweeps left to right along a wave, is pressed through the middle third of
// the sweep, and leaves the surface for the final quarter of Frames so the
// particles can settle.
type Script struct {
	Width, Height int
	Frames        int
}

func (s Script) At(frame int) particle.Pointer {
	if s.Frames <= 0 || s.Width <= 0 || s.Height <= 0 {
		return particle.Absent()
	}
	sweep := s.Frames * 3 / 4
	if sweep == 0 || frame >= sweep || frame < 0 {
		return particle.Absent()
	}
	t := float64(frame) / float64(sweep)
	x := t * float64(s.Width)
	y := float64(s.Height)/2 + math.Sin(t*4*math.Pi)*float64(s.Height)/4
	pressed := t >= 1.0/3 && t < 2.0/3
	return particle.At(x, y, pressed)
}
