// Copyright (c) 2024 The Veil developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package veillog wires the slog.Backend shared by the txoutcrypt
// codec and the veil-payload command line tool. The codec itself only
// ever logs operational events (lengths, decode-path choices) and
// never the plaintext value, mask, or derived key it handles.
package veillog

import (
	"io"
	"os"

	"github.com/decred/slog"
)

// NewBackend creates a slog.Backend that writes to w. Passing io.Discard
// yields a backend whose loggers are silent. (txoutcrypt does not use
// such a backend for a nil slog.Logger; it falls back to slog.Disabled.)
func NewBackend(w io.Writer) *slog.Backend {
	return slog.NewBackend(w)
}

// Disabled is a logger that discards everything, used as the default
// for any package-level logger that the caller hasn't configured.
var Disabled = slog.Disabled

// NewSubsystem creates a named, levelled logger from backend, the same
// pattern exccd-family daemons use to give each subsystem its own log
// tag (e.g. "CRYP" for this codec).
func NewSubsystem(backend *slog.Backend, tag string, level slog.Level) slog.Logger {
	log := backend.Logger(tag)
	log.SetLevel(level)
	return log
}

// StdoutBackend is a convenience backend for command line tools that
// have not configured a log file.
var StdoutBackend = NewBackend(os.Stdout)
