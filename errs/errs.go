// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errs implements the CoastalME error-kind taxonomy: every failure
// that crosses a component boundary is one of a fixed set of Kind values,
// never a bare string.
package errs

import "github.com/cpmech/gosl/chk"

// Kind enumerates the error taxonomy.
type Kind int

// error kinds, one per row of the taxonomy table
const (
	BadParam Kind = iota
	IniMalformed
	CmeDirMissing
	RunDataMalformed
	ShapeFunctionFile
	TideDataFile
	LogFile
	OutFile
	TsFile
	DemFile
	RasterFileRead
	VectorFileRead
	MemAlloc
	RasterGISOutFormat
	VectorGISOutFormat
	TextFileWrite
	RasterFileWrite
	VectorFileWrite
	TsFileWrite
	LineToGrid
	NoSeaCells
	GridToLine
	FindCoast
	MassBalance
	ProfileWrite
	TimeUnits
	BadEndpoint
	OffGridEndpoint
	CliffNotch
	CliffDeposit
)

var names = map[Kind]string{
	BadParam:           "BadParam",
	IniMalformed:       "IniMalformed",
	CmeDirMissing:      "CmeDirMissing",
	RunDataMalformed:   "RunDataMalformed",
	ShapeFunctionFile:  "ShapeFunctionFile",
	TideDataFile:       "TideDataFile",
	LogFile:            "LogFile",
	OutFile:            "OutFile",
	TsFile:             "TsFile",
	DemFile:            "DemFile",
	RasterFileRead:     "RasterFileRead",
	VectorFileRead:     "VectorFileRead",
	MemAlloc:           "MemAlloc",
	RasterGISOutFormat: "RasterGISOutFormat",
	VectorGISOutFormat: "VectorGISOutFormat",
	TextFileWrite:      "TextFileWrite",
	RasterFileWrite:    "RasterFileWrite",
	VectorFileWrite:    "VectorFileWrite",
	TsFileWrite:        "TsFileWrite",
	LineToGrid:         "LineToGrid",
	NoSeaCells:         "NoSeaCells",
	GridToLine:         "GridToLine",
	FindCoast:          "FindCoast",
	MassBalance:        "MassBalance",
	ProfileWrite:       "ProfileWrite",
	TimeUnits:          "TimeUnits",
	BadEndpoint:        "BadEndpoint",
	OffGridEndpoint:    "OffGridEndpoint",
	CliffNotch:         "CliffNotch",
	CliffDeposit:       "CliffDeposit",
}

// String implements fmt.Stringer
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "Unknown"
}

// Error is the error type returned across every CoastalME component
// boundary. It always carries a Kind so callers can switch on the taxonomy
// rather than parsing messages.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Kind.String() + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Kind.String() + ": " + e.Message
}

// Unwrap supports errors.Is / errors.As
func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error of the given Kind, formatting Message the same way
// gosl/chk.Err formats its panic messages.
func New(kind Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: chk.Err(msg, args...).Error()}
}

// Wrap creates an Error of the given Kind around an existing cause.
func Wrap(kind Kind, cause error, msg string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: chk.Err(msg, args...).Error(), Cause: cause}
}

// Is reports whether err is a CoastalME Error of the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	return e.Kind == kind
}

// Recoverable reports whether kind is recovered locally (logged, the step
// continues) rather than fatal at step end.
func Recoverable(kind Kind) bool {
	switch kind {
	case LineToGrid, BadEndpoint, OffGridEndpoint, CliffNotch:
		return true
	default:
		return false
	}
}
