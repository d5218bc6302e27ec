package config

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	TPS          = 60

	// Sampling
	Step           = 4
	Size           = 3
	AlphaThreshold = 40

	// Physics
	RepelRadius    = 50.0
	RepelForce     = 3.5
	PressBoost     = 1.6
	ReturnForce    = 0.06
	Damping        = 0.85
	MaxSpeed       = 25.0
	SettleDistance = 0.3
	SettleSpeed    = 0.3
	Epsilon        = 0.0001

	Background = "#e6edf3"
	ClearColor = "#000000"

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 36
	ButtonGap    = 12

	// Press feedback
	ClickFrequency = 880.0
	ClickMillis    = 60
	SampleRate     = 44100
)

var (
	ErrInvalid = errors.New("invalid config")
)

// Config holds every tunable of the program. Default returns the values the
// effect was designed around.
type Config struct {
	Width, Height   int
	ResolutionScale float64
	TPS             int

	Step           int
	Size           int
	AlphaThreshold int
	Background     string
	ClearColor     string
	Interpolation  string

	RepelRadius    float64
	RepelForce     float64
	PressBoost     float64
	ReturnForce    float64
	Damping        float64
	MaxSpeed       float64
	SettleDistance float64
	SettleSpeed    float64

	ImagePath  string
	Seed       int64
	Sound      bool
	ClickSound string

	Headless bool
	Frames   int
	Output   string
}

func Default() Config {
	return Config{
		Width:           WindowWidth,
		Height:          WindowHeight,
		ResolutionScale: 1,
		TPS:             TPS,
		Step:            Step,
		Size:            Size,
		AlphaThreshold:  AlphaThreshold,
		Background:      Background,
		ClearColor:      ClearColor,
		Interpolation:   "bilinear",
		RepelRadius:     RepelRadius,
		RepelForce:      RepelForce,
		PressBoost:      PressBoost,
		ReturnForce:     ReturnForce,
		Damping:         Damping,
		MaxSpeed:        MaxSpeed,
		SettleDistance:  SettleDistance,
		SettleSpeed:     SettleSpeed,
		Seed:            1,
		Frames:          240,
		Output:          "frame.png",
	}
}

// Register binds the config fields to command line flags on fs.
func (c *Config) Register(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "Window width")
	fs.IntVar(&c.Height, "h", c.Height, "Window height")
	fs.Float64Var(&c.ResolutionScale, "scale", c.ResolutionScale, "Backing buffer size relative to the window")
	fs.IntVar(&c.TPS, "tps", c.TPS, "Simulation ticks per second")

	fs.IntVar(&c.Step, "step", c.Step, "Sampling stride in pixels (smaller = more particles)")
	fs.IntVar(&c.Size, "size", c.Size, "Particle square size in pixels")
	fs.IntVar(&c.AlphaThreshold, "alpha", c.AlphaThreshold, "Pixels with alpha at or below this are skipped")
	fs.StringVar(&c.Background, "background", c.Background, "Offscreen fill colour (hex, or 'transparent')")
	fs.StringVar(&c.ClearColor, "clear", c.ClearColor, "Frame clear colour (hex)")
	fs.StringVar(&c.Interpolation, "interp", c.Interpolation, "Image stretch: nearest, approx-bilinear, bilinear, catmull-rom")

	fs.Float64Var(&c.RepelRadius, "radius", c.RepelRadius, "Pointer repel radius")
	fs.Float64Var(&c.RepelForce, "repel", c.RepelForce, "Pointer repel force")
	fs.Float64Var(&c.PressBoost, "boost", c.PressBoost, "Repel multiplier while the pointer is pressed")
	fs.Float64Var(&c.ReturnForce, "return", c.ReturnForce, "Spring force toward the origin")
	fs.Float64Var(&c.Damping, "damping", c.Damping, "Velocity damping per frame")
	fs.Float64Var(&c.MaxSpeed, "max-speed", c.MaxSpeed, "Velocity clamp")

	fs.StringVar(&c.ImagePath, "image", c.ImagePath, "Image file to sample (default: generated artwork)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the generated artwork")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Play a click when the pointer is pressed")
	fs.StringVar(&c.ClickSound, "click", c.ClickSound, "wav/mp3/flac file used as the click (default: synthesized)")

	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run without a window and write the last frame to -o")
	fs.IntVar(&c.Frames, "frames", c.Frames, "Frames to run in headless mode")
	fs.StringVar(&c.Output, "o", c.Output, "PNG written in headless mode")
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.ResolutionScale <= 0:
		return fmt.Errorf("%w: scale %v must be positive", ErrInvalid, c.ResolutionScale)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalid, c.TPS)
	case c.Step <= 0:
		return fmt.Errorf("%w: step %d must be positive", ErrInvalid, c.Step)
	case c.Size <= 0:
		return fmt.Errorf("%w: size %d must be positive", ErrInvalid, c.Size)
	case c.AlphaThreshold < 0 || c.AlphaThreshold > 255:
		return fmt.Errorf("%w: alpha threshold %d outside 0..255", ErrInvalid, c.AlphaThreshold)
	case c.RepelRadius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalid, c.RepelRadius)
	case c.Damping < 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping %v outside 0..1", ErrInvalid, c.Damping)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %v must be positive", ErrInvalid, c.MaxSpeed)
	case c.Headless && c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	if _, err := ParseColor(c.ClearColor); err != nil {
		return err
	}
	if _, err := Interpolator(c.Interpolation); err != nil {
		return err
	}
	return nil
}

// ParseColor accepts "#rrggbb" and the word "transparent".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "transparent") || s == "" {
		return color.RGBA{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func Interpolator(name string) (draw.Interpolator, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "bilinear", "":
		return draw.BiLinear, nil
	case "catmull-rom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("%w: unknown interpolation %q", ErrInvalid, name)
}

// BufferSize is the backing buffer size for a displayed size.
func (c Config) BufferSize(displayW, displayH int) (int, int) {
	return int(float64(displayW) * c.ResolutionScale), int(float64(displayH) * c.ResolutionScale)
}
