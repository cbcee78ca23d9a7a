// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag provides the console diagnostics used by the driver and its
// adapters: plain informational lines, yellow warnings for locally-recovered
// errors, and red fatal lines.
package diag

import "github.com/cpmech/gosl/io"

// Info prints a plain informational line.
func Info(msg string, args ...interface{}) {
	io.Pf(msg+"\n", args...)
}

// Warn prints a yellow warning line, used for locally-recovered errors
// (LineToGrid, OffGridEndpoint, CliffNotch, odd coastline endpoint counts,
// intersecting profiles).
func Warn(msg string, args ...interface{}) {
	io.PfYel("WARNING: "+msg+"\n", args...)
}

// Fatal prints a red line for a step-ending fatal error before the driver
// returns it to the caller.
func Fatal(msg string, args ...interface{}) {
	io.PfRed("FATAL: "+msg+"\n", args...)
}
