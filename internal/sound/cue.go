// Package sound plays a short tone whenever the morph changes direction.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"go.uber.org/zap"
)

const (
	SampleRate = beep.SampleRate(44100)
	Volume     = 0.2

	// Circle and polygon get different pitches so the listener can tell
	// which end was reached.
	CircleFreq  = 880
	PolygonFreq = 440
	CueLength   = 60 * time.Millisecond
)

// Tone returns a sine tone of length d with a linear fade-out so that it ends
// without a click.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			env := 1 - float64(pos)/float64(total)
			v := Volume * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// Output is an audio device. github.com/faiface/beep/speaker satisfies it
// through a thin adapter in package main.
type Output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
}

// Cue plays a tone on an Output. The device is opened lazily on the first
// bounce; if that fails the cue stays silent.
type Cue struct {
	out      Output
	log      *zap.Logger
	initOnce sync.Once
	initErr  error
}

func NewCue(out Output, lg *zap.Logger) *Cue {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &Cue{out: out, log: lg}
}

func (c *Cue) init() error {
	c.initOnce.Do(func() {
		c.initErr = c.out.Init(SampleRate, SampleRate.N(time.Second/20))
		if c.initErr != nil {
			c.log.Warn("audio unavailable, sound cue disabled", zap.Error(c.initErr))
		}
	})
	return c.initErr
}

// Bounce plays the cue for a direction flip at u.
func (c *Cue) Bounce(u float64) {
	if c.init() != nil {
		return
	}
	c.out.Play(Tone(SampleRate, Pitch(u), CueLength))
}

// Pitch picks the cue frequency for the bound that u reached.
func Pitch(u float64) float64 {
	if u >= 0.5 {
		return CircleFreq
	}
	return PolygonFreq
}
