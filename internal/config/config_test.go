package config

import (
	"errors"
	"flag"
	"image/color"
	"testing"

	"golang.org/x/image/draw"
)

func TestDefaultValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Step != 4 || cfg.Size != 3 || cfg.AlphaThreshold != 40 {
		t.Errorf("Unexpected sampling defaults: step=%d size=%d alpha=%d", cfg.Step, cfg.Size, cfg.AlphaThreshold)
	}
	if cfg.RepelRadius != 50 || cfg.RepelForce != 3.5 || cfg.MaxSpeed != 25 {
		t.Errorf("Unexpected physics defaults: %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative scale", func(c *Config) { c.ResolutionScale = -1 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"zero size", func(c *Config) { c.Size = 0 }},
		{"alpha too high", func(c *Config) { c.AlphaThreshold = 256 }},
		{"zero radius", func(c *Config) { c.RepelRadius = 0 }},
		{"damping above one", func(c *Config) { c.Damping = 1.5 }},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"bad background", func(c *Config) { c.Background = "#nothex" }},
		{"bad clear", func(c *Config) { c.ClearColor = "purple-ish" }},
		{"bad interpolation", func(c *Config) { c.Interpolation = "lanczos" }},
		{"negative headless frames", func(c *Config) { c.Headless = true; c.Frames = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#e6edf3", color.RGBA{R: 0xe6, G: 0xed, B: 0xf3, A: 0xff}},
		{"000000", color.RGBA{A: 0xff}},
		{"#ff0000", color.RGBA{R: 0xff, A: 0xff}},
		{"transparent", color.RGBA{}},
		{"Transparent", color.RGBA{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: expected %v, got %v", tt.in, tt.want, got)
		}
	}

	if _, err := ParseColor("#12"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for a short hex, got %v", err)
	}
}

func TestInterpolator(t *testing.T) {
	tests := map[string]draw.Interpolator{
		"nearest":         draw.NearestNeighbor,
		"approx-bilinear": draw.ApproxBiLinear,
		"bilinear":        draw.BiLinear,
		"":                draw.BiLinear,
		"Catmull-Rom":     draw.CatmullRom,
	}
	for name, want := range tests {
		got, err := Interpolator(name)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("%q: wrong interpolator", name)
		}
	}
}

func TestRegisterFlags(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Register(fs)

	err := fs.Parse([]string{"-step", "8", "-background", "transparent", "-sound", "-radius", "80", "-headless", "-frames", "12", "-image", "cat.png"})
	if err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if cfg.Step != 8 || cfg.Background != "transparent" || !cfg.Sound || cfg.RepelRadius != 80 {
		t.Errorf("Flags not applied: %+v", cfg)
	}
	if !cfg.Headless || cfg.Frames != 12 || cfg.ImagePath != "cat.png" {
		t.Errorf("Headless flags not applied: %+v", cfg)
	}
	if cfg.Size != Size {
		t.Errorf("Expected untouched size %d, got %d", Size, cfg.Size)
	}
}

func TestBufferSize(t *testing.T) {
	cfg := Default()
	if w, h := cfg.BufferSize(300, 200); w != 300 || h != 200 {
		t.Errorf("Expected 300x200, got %dx%d", w, h)
	}
	cfg.ResolutionScale = 0.5
	if w, h := cfg.BufferSize(300, 200); w != 150 || h != 100 {
		t.Errorf("Expected 150x100, got %dx%d", w, h)
	}
}
