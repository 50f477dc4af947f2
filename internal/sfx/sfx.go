// Package sfx synthesizes the game's sound effects and writes them as WAV
// assets.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/pkg/errors"
)

const SampleRate = beep.SampleRate(44100)

// Format is the on-disk format of generated assets: 16-bit mono.
var Format = beep.Format{
	SampleRate:  SampleRate,
	NumChannels: 1,
	Precision:   2,
}

// Effect names a sound effect. The name doubles as the asset file stem.
type Effect string

const (
	Paddle Effect = "paddle"
	Wall   Effect = "wall"
	Score  Effect = "score"
)

// All lists every effect in generation order.
var All = []Effect{Paddle, Wall, Score}

func (e Effect) FileName() string {
	return string(e) + ".wav"
}

const (
	paddleFreq      = 600.0
	paddleDuration  = 80 * time.Millisecond
	paddleDecay     = 10.0
	paddleAmplitude = 0.5

	wallDuration  = 40 * time.Millisecond
	wallDecay     = 50.0
	wallAmplitude = 0.3

	scoreStartFreq = 400.0
	scoreEndFreq   = 800.0
	scoreDuration  = 250 * time.Millisecond
	scoreDecay     = 5.0
	scoreAmplitude = 0.5
)

// Duration returns how long an effect plays.
func Duration(e Effect) time.Duration {
	switch e {
	case Paddle:
		return paddleDuration
	case Wall:
		return wallDuration
	case Score:
		return scoreDuration
	}
	return 0
}

// Samples returns the number of frames an effect streams at SampleRate.
func Samples(e Effect) int {
	return SampleRate.N(Duration(e))
}

// Stream returns a finite streamer for the effect. rng feeds the wall noise;
// nil means a time-seeded source.
func Stream(e Effect, rng *rand.Rand) (beep.Streamer, error) {
	switch e {
	case Paddle:
		return gain(decayTone(paddleFreq, paddleDuration, paddleDecay), paddleAmplitude), nil
	case Wall:
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return gain(noiseBurst(rng, wallDuration, wallDecay), wallAmplitude), nil
	case Score:
		return gain(sweep(scoreStartFreq, scoreEndFreq, scoreDuration, scoreDecay), scoreAmplitude), nil
	}
	return nil, errors.Errorf("unknown sound effect %q", e)
}

// gain scales a unit-amplitude streamer to the given peak amplitude.
func gain(s beep.Streamer, amplitude float64) beep.Streamer {
	return &effects.Gain{Streamer: s, Gain: amplitude - 1}
}

// synth streams n frames, writing the same value to both channels.
func synth(n int, sample func(i int, t float64) float64) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= n {
				return i, i > 0
			}
			t := float64(pos) / float64(SampleRate)
			val := sample(pos, t)
			samples[i][0] = val
			samples[i][1] = val
			pos++
		}
		return len(samples), true
	})
}

// decayTone is a sine at freq with an exponential decay envelope so the
// attack doesn't click.
func decayTone(freq float64, d time.Duration, decay float64) beep.Streamer {
	return synth(SampleRate.N(d), func(_ int, t float64) float64 {
		return math.Sin(2*math.Pi*freq*t) * math.Exp(-t*decay)
	})
}

// noiseBurst is uniform white noise under a fast decay.
func noiseBurst(rng *rand.Rand, d time.Duration, decay float64) beep.Streamer {
	return synth(SampleRate.N(d), func(_ int, t float64) float64 {
		return (rng.Float64()*2 - 1) * math.Exp(-t*decay)
	})
}

// sweep glides linearly from startFreq to endFreq. Phase is accumulated per
// sample so the pitch change stays continuous.
func sweep(startFreq, endFreq float64, d time.Duration, decay float64) beep.Streamer {
	seconds := d.Seconds()
	phase := 0.0
	return synth(SampleRate.N(d), func(_ int, t float64) float64 {
		freq := startFreq + (endFreq-startFreq)*t/seconds
		phase += 2 * math.Pi * freq / float64(SampleRate)
		return math.Sin(phase) * math.Exp(-t*decay)
	})
}
