// Package logging selects the writer used by the standard logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures log output.
type Options struct {
	// File is the destination path. Empty writes to stderr.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// Writer returns the destination for log output. Regular files are rotated;
// special files such as /dev/stdout or named pipes are written directly.
// The returned closer must be called on shutdown.
func Writer(opts Options) (io.Writer, io.Closer, error) {
	name := strings.TrimSpace(opts.File)
	if name == "" {
		return os.Stderr, nopCloser{}, nil
	}
	if st, err := os.Stat(name); err == nil && !st.Mode().IsRegular() {
		if st.IsDir() {
			return nil, nil, fmt.Errorf("log file %q is a directory", name)
		}
		fp, err := os.OpenFile(name, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %q: %w", name, err)
		}
		return fp, fp, nil
	}
	logger := &lumberjack.Logger{
		Filename:   name,
		MaxSize:    opts.MaxSizeMB,
		MaxAge:     opts.MaxAgeDays,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
		Compress:   true,
	}
	return logger, logger, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
