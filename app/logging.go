package app

import (
	"io"
	"log"
	"os"

	"github.com/natefinch/lumberjack"
)

const (
	LOG_MAX_SIZE_MB = 10
	LOG_MAX_BACKUPS = 5
	LOG_MAX_AGE     = 28
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging sends the standard logger to stderr and, when filename is
// set, to a rotating log file as well. The returned closer releases the file.
func SetupLogging(filename string) io.Closer {
	if !allOut {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
	if filename == "" {
		return nopCloser{}
	}
	fileLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    LOG_MAX_SIZE_MB,
		MaxBackups: LOG_MAX_BACKUPS,
		MaxAge:     LOG_MAX_AGE,
	}
	// the file keeps the full record even when -q silences stderr
	if allOut {
		log.SetOutput(io.MultiWriter(os.Stderr, fileLogger))
	} else {
		log.SetOutput(fileLogger)
	}
	return fileLogger
}
