package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "arcade.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging points the global logger at logs/arcade.log when debug is set.
// Without debug every log call is discarded. An oversized log is rotated to a
// timestamped file first. The returned file is nil when logging is off.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("arcade-%s.log", time.Now().Format("20060102-150405")))
		// Best effort; on failure we keep appending to the large file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).With().
		Timestamp().
		Str("session", uuid.NewString()).
		Logger()
	return f
}
