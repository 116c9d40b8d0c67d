package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"
)

const (
	logDir      = "logs"
	logFileName = "snake.log"
	maxLogSize  = 10 * 1024 * 1024
)

var log = logging.MustGetLogger("snake")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{module} %{shortfunc} ▶ %{level:.4s} %{message}`,
)

// setupLogging routes all package loggers; logs go to a file under logs/ with debug
// and are discarded otherwise, so the terminal is never written to
func setupLogging(debug bool) *os.File {
	if !debug {
		stdlog.SetOutput(io.Discard)
		backend := logging.AddModuleLevel(logging.NewLogBackend(io.Discard, "", 0))
		backend.SetLevel(logging.CRITICAL, "")
		logging.SetBackend(backend)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logs directory: %v\n", err)
		return setupLogging(false)
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("snake-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return setupLogging(false)
	}

	stdlog.SetOutput(f)
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(f, "", 0), logFormat))
	backend.SetLevel(logging.DEBUG, "")
	logging.SetBackend(backend)

	log.Infof("logging to %s", logPath)
	return f
}
