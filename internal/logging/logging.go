// Package logging builds the structured loggers used by the commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const prefix = "pingpong"

var levelStyles = map[log.Level]lipgloss.Style{
	log.DebugLevel: lipgloss.NewStyle().SetString("DEBUG").Foreground(lipgloss.Color("8")),
	log.InfoLevel:  lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("4")),
	log.WarnLevel:  lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("3")),
	log.ErrorLevel: lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("1")),
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})

	styles := log.DefaultStyles()
	for lvl, style := range levelStyles {
		styles.Levels[lvl] = style
	}
	logger.SetStyles(styles)
	return logger
}

// ToFile opens path for appending and returns a logger writing to it. The
// game owns the terminal while running, so it can't log to stderr. An empty
// path discards everything. The returned close func is never nil.
func ToFile(path string, level log.Level) (*log.Logger, func() error, error) {
	if path == "" {
		return New(io.Discard, level), func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
