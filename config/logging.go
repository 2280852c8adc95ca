package config

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging applies the log config to the given logger. If a log file is
// configured, entries are written to both stderr and the file. The returned
// closer must be closed on exit; it's a no-op if there's no file.
func ConfigureLogging(l *logrus.Logger, c LogConfig) (io.Closer, error) {
	lvl, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l.SetLevel(lvl)

	switch c.Format {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format: %q", c.Format)
	}

	if c.File == "" {
		l.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}

	lj := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSize,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAge,
		Compress:   c.Compress,
	}

	l.SetOutput(io.MultiWriter(os.Stderr, lj))
	return lj, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
