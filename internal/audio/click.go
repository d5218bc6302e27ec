// Package audio plays a short click whenever the pointer is pressed.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

var (
	ErrUnsupported = errors.New("unsupported audio file")
)

// clickGain keeps the synthesized click well below full scale.
const clickGain = 0.35

// Click synthesizes a sine burst of freq Hz with an exponential decay and a
// short linear attack.
func Click(sr beep.SampleRate, freq float64, dur time.Duration) *beep.Buffer {
	total := sr.N(dur)
	attack := sr.N(2 * time.Millisecond)
	tau := float64(total) / 5
	phaseInc := freq / float64(sr)

	pos := 0
	phase := 0.0
	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := math.Exp(-float64(pos) / tau)
			if pos < attack && attack > 0 {
				env *= float64(pos) / float64(attack)
			}
			v := math.Sin(2*math.Pi*phase) * env * clickGain
			samples[i][0], samples[i][1] = v, v

			phase += phaseInc
			if phase >= 1 {
				phase -= 1
			}
			pos++
			n++
		}
		return n, true
	})

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(gen)
	return buf
}

// LoadSample decodes a wav, mp3 or flac file fully into memory, resampled
// to sr.
func LoadSample(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, filepath.Ext(path))
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sr {
		src = beep.Resample(4, format.SampleRate, sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}
