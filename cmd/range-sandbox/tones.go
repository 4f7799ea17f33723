package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/younwookim/artillery/internal/infrastructure/config"
)

const sampleRate = beep.SampleRate(44100)

// tonePlayer plays short sine cues for fire and impact
type tonePlayer struct {
	cfg         config.SoundConfig
	initialized bool
}

// newTonePlayer opens the speaker. A disabled config gives a silent player.
func newTonePlayer(cfg config.SoundConfig) (*tonePlayer, error) {
	t := &tonePlayer{cfg: cfg}
	if !cfg.Enabled {
		return t, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return t, err
	}
	t.initialized = true
	return t, nil
}

// Play queues a tone at freq Hz
func (t *tonePlayer) Play(freq float64) {
	if !t.initialized {
		return
	}
	s, err := toneStreamer(sampleRate, freq, t.duration())
	if err != nil {
		return
	}
	speaker.Play(s)
}

func (t *tonePlayer) duration() time.Duration {
	ms := t.cfg.DurationMilli
	if ms <= 0 {
		ms = 120
	}
	return time.Duration(ms) * time.Millisecond
}

// Close releases the speaker
func (t *tonePlayer) Close() {
	if t.initialized {
		speaker.Close()
		t.initialized = false
	}
}

// toneStreamer is a quiet sine of the given length
func toneStreamer(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   math.Log2(0.3),
	}, nil
}
