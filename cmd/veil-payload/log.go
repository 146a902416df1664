// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	"github.com/veilcoin/veild/internal/veillog"
)

// logRotator rotates the log file written to by backendLog. It is
// initialized by initLogRotator and kept open for the life of the
// process, the same as every daemon in the dcrd/exccd family sets up
// its logging in its own log.go.
var logRotator *rotator.Rotator

// backendLog is the logging backend used to create all subsystem
// loggers. Its log level is dynamically controlled through loggers.
var backendLog = veillog.StdoutBackend

var (
	log        = backendLog.Logger("MAIN")
	txCryptLog = backendLog.Logger("CRYP")
)

// subsystemLoggers maps each subsystem identifier to its logger,
// enabling --loglevel and any future per-subsystem debug flag to
// adjust levels by name.
var subsystemLoggers = map[string]slog.Logger{
	"MAIN": log,
	"CRYP": txCryptLog,
}

// initLogRotator initializes the logging rotator to write to logFile.
// This function must be called before the package-level log variables
// are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	logRotator = r

	backendLog = veillog.NewBackend(logWriter{})
	for name := range subsystemLoggers {
		subsystemLoggers[name] = backendLog.Logger(name)
	}
	log = subsystemLoggers["MAIN"]
	txCryptLog = subsystemLoggers["CRYP"]
	return nil
}

// logWriter implements io.Writer and writes to both standard output
// and the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// setLogLevels sets the logging level for every subsystem to level.
func setLogLevels(level slog.Level) {
	for _, l := range subsystemLoggers {
		l.SetLevel(level)
	}
}
