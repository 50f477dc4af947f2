package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/termpong/pingpong/internal/logging"
	"github.com/termpong/pingpong/internal/sfx"
)

var flagOut string

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Generate the sound effect WAV files",
	Long: `Synthesizes the paddle, wall and score effects and writes them as
44.1 kHz mono 16-bit WAV files. Existing files are overwritten.

Files go to the game's assets directory (--assets or assets_dir in the
config) unless --out names another one. The game synthesizes any file that
is missing, so running this is optional.

Examples:
  pingpong sounds
  pingpong --assets ./sfx sounds
  pingpong sounds --out ./build/assets`,
	Args: cobra.NoArgs,
	RunE: runSounds,
}

func init() {
	soundsCmd.Flags().StringVar(&flagOut, "out", "", "Output directory (default: the assets directory)")
}

func runSounds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.Level())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := cfg.AssetsDir
	if cmd.Flags().Changed("out") {
		out = flagOut
	}

	paths, err := sfx.Generate(out, rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Error("sound generation failed", "dir", out, "error", err)
		return err
	}
	for _, path := range paths {
		logger.Info("Created " + path)
	}
	return nil
}
