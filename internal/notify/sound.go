package notify

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate beep.SampleRate = 44100
	bellFreq                   = 880.0
	bufferSize                 = 10
)

// bellPattern alternates tone and silence lengths.
var bellPattern = []time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

// Bell plays a short synthesized chime through the default audio device.
type Bell struct {
	initErr error
	once    sync.Once
}

// Play rings the bell at a linear volume between 0 and 1 and returns once
// the chime is queued.
func (b *Bell) Play(volume float64) error {
	b.once.Do(func() {
		b.initErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Second/bufferSize),
		)
	})

	if b.initErr != nil {
		return b.initErr
	}

	chime, err := bellStreamer(volume)
	if err != nil {
		return err
	}

	speaker.Play(chime)

	return nil
}

func bellStreamer(volume float64) (beep.Streamer, error) {
	tone, err := generators.SineTone(sampleRate, bellFreq)
	if err != nil {
		return nil, err
	}

	parts := make([]beep.Streamer, 0, len(bellPattern))

	for i, d := range bellPattern {
		n := sampleRate.N(d)
		if i%2 == 1 {
			parts = append(parts, generators.Silence(n))

			continue
		}

		parts = append(parts, beep.Take(n, tone))
	}

	return &effects.Gain{
		Streamer: beep.Seq(parts...),
		Gain:     clampVolume(volume) - 1,
	}, nil
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
