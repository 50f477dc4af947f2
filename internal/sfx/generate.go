package sfx

import (
	"math/rand"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"
)

// DefaultDir is where the game looks for its sound assets.
const DefaultDir = "assets"

// Generate writes every effect into dir, creating it if needed, and returns
// the written paths.
func Generate(dir string, rng *rand.Rand) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create asset directory %s", dir)
	}

	paths := make([]string, 0, len(All))
	for _, e := range All {
		path := filepath.Join(dir, e.FileName())
		if err := WriteFile(path, e, rng); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteFile encodes a single effect to path as 16-bit mono WAV.
func WriteFile(path string, e Effect, rng *rand.Rand) error {
	s, err := Stream(e, rng)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := wav.Encode(f, s, Format); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}
