package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/image-particles/internal/audio"
	"github.com/iburimskiy/image-particles/internal/config"
	"github.com/iburimskiy/image-particles/internal/game"
	"github.com/iburimskiy/image-particles/internal/imagesrc"
	"github.com/iburimskiy/image-particles/internal/loop"
	"github.com/iburimskiy/image-particles/internal/scene"
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("particles: ")

	cfg := config.Default()
	cfg.Register(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	img := loadImage(cfg)

	if cfg.Headless {
		if err := runHeadless(cfg, img); err != nil {
			log.Fatal(err)
		}
		return
	}

	player := newPlayer(cfg)
	defer player.Close()

	g, err := game.New(cfg, img, player)
	if err != nil {
		log.Fatal(err)
	}

	// Ctrl-C in the terminal closes the window after the current frame.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		g.Halt()
	}()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Image Particles - move the pointer over the image, click to push harder")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// loadImage returns the image named by -image, or the generated artwork. A
// file that fails to decode is logged and yields a nil image so the window
// opens blank.
func loadImage(cfg config.Config) image.Image {
	if cfg.ImagePath == "" {
		return imagesrc.Default(cfg.Width, cfg.Height, cfg.Seed)
	}
	img, err := imagesrc.Load(cfg.ImagePath)
	if err != nil {
		log.Printf("error: %v", err)
		return nil
	}
	return img
}

func newPlayer(cfg config.Config) *audio.Player {
	if !cfg.Sound {
		return nil
	}
	sr := beep.SampleRate(config.SampleRate)
	sample := audio.Click(sr, config.ClickFrequency, config.ClickMillis*time.Millisecond)
	if cfg.ClickSound != "" {
		s, err := audio.LoadSample(cfg.ClickSound, sr)
		if err != nil {
			log.Printf("click sound: %v, using the built-in click", err)
		} else {
			sample = s
		}
	}
	return audio.NewPlayer(sample)
}

func runHeadless(cfg config.Config, img image.Image) error {
	h, err := scene.NewHeadless(cfg, img)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Headless frames are not tied to a display, so they run back to back.
	d := loop.NewDriver(0)
	n, err := d.Run(ctx, h, cfg.Frames)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := h.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	total, displaced := h.Particles()
	fmt.Printf("%d frames, %d particles (%d displaced), wrote %s\n", n, total, displaced, cfg.Output)
	return nil
}
