package audio

import (
	"log"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// Player replays one sample through the speaker. A nil or disabled Player
// ignores Play.
type Player struct {
	sample  *beep.Buffer
	enabled bool
}

// NewPlayer initialises the speaker at the sample's rate. When the device
// cannot be opened the error is logged and a disabled player is returned, so
// the effect keeps running silently.
func NewPlayer(sample *beep.Buffer) *Player {
	p := &Player{sample: sample}
	if sample == nil {
		return p
	}
	sr := sample.Format().SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		log.Printf("audio disabled: %v", err)
		return p
	}
	p.enabled = true
	return p
}

func (p *Player) Enabled() bool {
	return p != nil && p.enabled
}

// Play starts the sample. Overlapping plays are mixed by the speaker.
func (p *Player) Play() {
	if !p.Enabled() {
		return
	}
	speaker.Play(p.sample.Streamer(0, p.sample.Len()))
}

// Close stops anything still playing.
func (p *Player) Close() {
	if !p.Enabled() {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
	p.enabled = false
}
