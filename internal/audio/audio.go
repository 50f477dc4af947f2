// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"github.com/termpong/pingpong/internal/sfx"
)

const (
	sampleRate      = sfx.SampleRate
	resampleQuality = 4
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Bank holds every effect decoded in memory so playback never touches disk.
type Bank struct {
	buffers map[sfx.Effect]*beep.Buffer
	muted   bool
}

// Load reads each effect's WAV file from dir. An asset that is missing or
// unreadable is synthesized instead, so the bank always holds every effect.
func Load(dir string, logger *log.Logger) *Bank {
	b := &Bank{buffers: make(map[sfx.Effect]*beep.Buffer, len(sfx.All))}

	for _, e := range sfx.All {
		path := filepath.Join(dir, e.FileName())
		buf, err := loadFile(path)
		if err != nil {
			logger.Warn("sound asset unavailable, synthesizing", "effect", e, "path", path, "error", err)
			buf, err = synthesize(e)
			if err != nil {
				logger.Error("could not synthesize sound", "effect", e, "error", err)
				continue
			}
		}
		logger.Debug("sound loaded", "effect", e, "frames", buf.Len())
		b.buffers[e] = buf
	}
	return b
}

func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer s.Close()

	var stream beep.Streamer = s
	if format.SampleRate != sampleRate {
		stream = beep.Resample(resampleQuality, format.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(bufferFormat())
	buf.Append(stream)
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return buf, nil
}

func synthesize(e sfx.Effect) (*beep.Buffer, error) {
	s, err := sfx.Stream(e, nil)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(bufferFormat())
	buf.Append(s)
	return buf, nil
}

func bufferFormat() beep.Format {
	return beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}
}

// SetMuted turns playback off or back on.
func (b *Bank) SetMuted(muted bool) {
	b.muted = muted
}

// Has reports whether the effect is ready to play.
func (b *Bank) Has(e sfx.Effect) bool {
	_, ok := b.buffers[e]
	return ok
}

// Frames returns the length of a loaded effect.
func (b *Bank) Frames(e sfx.Effect) int {
	if buf, ok := b.buffers[e]; ok {
		return buf.Len()
	}
	return 0
}

// Play starts an effect without blocking. It is a no-op when the speaker is
// not initialized, the bank is muted or the effect is unknown.
func (b *Bank) Play(e sfx.Effect) {
	if !initialized || b.muted {
		return
	}
	buf, ok := b.buffers[e]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}
