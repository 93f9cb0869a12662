// Package logging configures the logrus logger shared by the binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the level ("debug", "info", "warn", "error") and the
// format ("text" or "json") of the logger.
type Config struct {
	Level  string
	Format string
}

// New returns a logger writing to stderr.
func New(cfg Config) (*logrus.Logger, error) {
	return NewWithWriter(os.Stderr, cfg)
}

// NewWithWriter returns a logger writing to w.
func NewWithWriter(w io.Writer, cfg Config) (*logrus.Logger, error) {
	level := logrus.InfoLevel
	if s := strings.TrimSpace(cfg.Level); s != "" {
		var err error
		if level, err = logrus.ParseLevel(s); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(level)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}
	return logger, nil
}
