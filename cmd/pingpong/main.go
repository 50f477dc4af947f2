// pingpong is a terminal Pong game: one player against a computer paddle.
//
// Usage:
//
//	pingpong                  - Play
//	pingpong sounds           - Write the sound effect WAV files
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.pingpong/config.yaml, then ./pingpong.yaml)
//	--assets <dir>      - Directory holding the sound effects (default: assets)
//	--fps <rate>        - Frame rate (default: 60)
//	--mute              - Play without sound
//	--seed <value>      - RNG seed for reproducible serves
//	--log-file <path>   - Write logs to a file while playing
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termpong/pingpong/internal/app"
	"github.com/termpong/pingpong/internal/config"
	"github.com/termpong/pingpong/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagAssets   string
	flagFPS      int
	flagMute     bool
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "Ping Pong - Pong against the computer in your terminal",
	Long: `Ping Pong is a terminal version of the classic paddle game. You play the
left paddle against a computer-controlled right paddle.

Controls:
  3/5/7      - Pick first to 3, 5 or 7 points (menu)
  W/S, Up/Down - Move paddle
  R          - Play again (after game over)
  Esc/Q      - Exit (after game over)
  Ctrl+C     - Quit at any time

Examples:
  pingpong
  pingpong --fps 30 --mute
  pingpong --log-file pingpong.log --log-level debug
  pingpong sounds --out ./assets`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", config.DefaultAssetsDir, "Sound effects directory")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", config.DefaultFPS, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (logs are discarded when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(soundsCmd)
}

// loadConfig reads the config file and applies the flags given on the
// command line on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("assets") {
		cfg.AssetsDir = flagAssets
	}
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("mute") {
		cfg.Mute = flagMute
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("pingpong needs an interactive terminal; use 'pingpong sounds' to only write the sound files")
	}

	logger, closeLog, err := logging.ToFile(cfg.LogFile, cfg.Level())
	if err != nil {
		return err
	}
	defer closeLog()

	if err := app.NewApp(cfg, logger).Run(); err != nil {
		logger.Error("game failed", "error", err)
		return err
	}
	return nil
}
