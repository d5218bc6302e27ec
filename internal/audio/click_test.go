package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func drain(buf *beep.Buffer) [][2]float64 {
	out := make([][2]float64, buf.Len())
	s := buf.Streamer(0, buf.Len())
	n, _ := s.Stream(out)
	return out[:n]
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = math.Max(m, math.Abs(s[0]))
	}
	return m
}

// TestClickShape verifies length, range and decay of the synthesized click
func TestClickShape(t *testing.T) {
	sr := beep.SampleRate(44100)
	buf := Click(sr, 880, 60*time.Millisecond)

	if buf.Len() != sr.N(60*time.Millisecond) {
		t.Fatalf("Expected %d samples, got %d", sr.N(60*time.Millisecond), buf.Len())
	}

	samples := drain(buf)
	if len(samples) != buf.Len() {
		t.Fatalf("Expected to stream %d samples, got %d", buf.Len(), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	for i, s := range samples {
		if math.Abs(s[0]) > clickGain+1e-3 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
	}

	tenth := len(samples) / 10
	head := peak(samples[:tenth*2])
	tail := peak(samples[len(samples)-tenth:])
	if head <= tail*2 {
		t.Errorf("Expected decay: head peak %f, tail peak %f", head, tail)
	}
}

func TestLoadSampleWav(t *testing.T) {
	sr := beep.SampleRate(44100)
	click := Click(sr, 440, 40*time.Millisecond)

	path := filepath.Join(t.TempDir(), "click.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := wav.Encode(f, click.Streamer(0, click.Len()), click.Format()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	same, err := LoadSample(path, sr)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if same.Len() != click.Len() {
		t.Errorf("Expected %d samples, got %d", click.Len(), same.Len())
	}

	half, err := LoadSample(path, sr/2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d := half.Len() - click.Len()/2; d < -8 || d > 8 {
		t.Errorf("Expected about %d resampled samples, got %d", click.Len()/2, half.Len())
	}
	if half.Format().SampleRate != sr/2 {
		t.Errorf("Expected rate %d, got %d", sr/2, half.Format().SampleRate)
	}
}

func TestLoadSampleErrors(t *testing.T) {
	dir := t.TempDir()
	ogg := filepath.Join(dir, "click.ogg")
	if err := os.WriteFile(ogg, []byte("OggS"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSample(ogg, 44100); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported, got %v", err)
	}

	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("RIFF nope"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadSample(bad, 44100); err == nil {
		t.Error("Expected decode error for a broken wav")
	}

	if _, err := LoadSample(filepath.Join(dir, "missing.wav"), 44100); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestDisabledPlayer(t *testing.T) {
	var nilPlayer *Player
	nilPlayer.Play()
	nilPlayer.Close()
	if nilPlayer.Enabled() {
		t.Error("Expected nil player to be disabled")
	}

	p := NewPlayer(nil)
	if p.Enabled() {
		t.Error("Expected player without a sample to be disabled")
	}
	p.Play()
}
