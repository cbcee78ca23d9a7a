// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the run configuration: a flat, JSON-tagged
// struct that Read decodes from a JSON datafile and validates before the
// driver accepts it.
package config

import (
	"encoding/json"
	"os"

	"github.com/ferid60433/coastalme-sub000/errs"
)

// Config holds every option the core driver needs.
type Config struct {

	// timing
	SimulationDuration float64 `json:"simulationDuration"` // hours
	TimeStep           float64 `json:"timeStep"`           // hours

	// still water and waves
	InitialStillWaterLevel  float64 `json:"initialStillWaterLevel"`
	WavePeriod              float64 `json:"wavePeriod"`
	OffshoreWaveHeight      float64 `json:"offshoreWaveHeight"`
	OffshoreWaveOrientation float64 `json:"offshoreWaveOrientation"`

	// erosion scaling
	R                     float64 `json:"r"`
	BeachProtectionFactor float64 `json:"beachProtectionFactor"`

	// fraction split
	FineErodibility   float64 `json:"fineErodibility"`
	SandErodibility   float64 `json:"sandErodibility"`
	CoarseErodibility float64 `json:"coarseErodibility"`

	// cliff-collapse triggers
	CliffErodibility              float64 `json:"cliffErodibility"`
	NotchOverhangAtCollapse       float64 `json:"notchOverhangAtCollapse"`
	NotchBaseBelowStillWaterLevel float64 `json:"notchBaseBelowStillWaterLevel"`

	// talus geometry
	CliffDepositionA              float64 `json:"cliffDepositionA"`             // 0 = auto
	CliffDepositionPlanviewWidth  int     `json:"cliffDepositionPlanviewWidth"` // odd
	CliffDepositionPlanviewLength float64 `json:"cliffDepositionPlanviewLength"`
	CliffDepositionHeightFrac     float64 `json:"cliffDepositionHeightFrac"`

	// profile placement
	CoastNormalAvgSpacing    float64 `json:"coastNormalAvgSpacing"`
	CoastNormalLength        float64 `json:"coastNormalLength"`
	CoastNormalRandSpaceFact float64 `json:"coastNormalRandSpaceFact"`

	// geometry filters
	CoastSmooth            string  `json:"coastSmooth"` // "none" | "running-mean" | "savitzky-golay"
	CoastSmoothWindow      int     `json:"coastSmoothWindow"`
	SavGolCoastPoly        int     `json:"savGolCoastPoly"`
	ProfileSmoothWindow    int     `json:"profileSmoothWindow"`
	ProfileMaxSlope        float64 `json:"profileMaxSlope"`
	CoastCurvatureInterval int     `json:"coastCurvatureInterval"`

	// determinism vs symmetry
	RandomCoastEdgeSearch  bool `json:"randomCoastEdgeSearch"`
	ErodeCoastAlternateDir bool `json:"erodeCoastAlternateDir"`

	// enable flags
	DoAlongshoreTransport bool `json:"doAlongshoreTransport"`
	DoCliffCollapse       bool `json:"doCliffCollapse"`

	// fixed per-run
	Layers int `json:"layers"`

	// two seeds: coast-edge search order, profile-spacing perturbation
	RandomSeeds [2]int64 `json:"randomSeeds"`
}

// Read loads a Config from a JSON datafile, then validates it.
func Read(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.RunDataMalformed, err, "cannot open datafile %q", path)
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, errs.Wrap(errs.RunDataMalformed, err, "cannot parse datafile %q", path)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the driver relies on.
func (c *Config) Validate() error {
	if c.SimulationDuration <= 0 || c.TimeStep <= 0 {
		return errs.New(errs.BadParam, "simulationDuration and timeStep must be positive")
	}
	if c.WavePeriod <= 0 {
		return errs.New(errs.BadParam, "wavePeriod must be positive")
	}
	if c.Layers <= 0 {
		return errs.New(errs.BadParam, "layers must be positive")
	}
	if c.CoastNormalAvgSpacing <= 0 || c.CoastNormalLength <= 0 {
		return errs.New(errs.BadParam, "coastNormalAvgSpacing and coastNormalLength must be positive")
	}
	if c.CliffDepositionPlanviewWidth%2 == 0 {
		return errs.New(errs.BadParam, "cliffDepositionPlanviewWidth must be odd, got %d", c.CliffDepositionPlanviewWidth)
	}
	switch c.CoastSmooth {
	case "", "none":
	case "running-mean", "savitzky-golay":
		if c.CoastSmoothWindow < 1 || c.CoastSmoothWindow%2 == 0 {
			return errs.New(errs.BadParam, "coastSmoothWindow must be odd and positive, got %d", c.CoastSmoothWindow)
		}
	default:
		return errs.New(errs.BadParam, "unknown coastSmooth %q", c.CoastSmooth)
	}
	return nil
}

// NumSteps returns the total step count, duration / timeStep.
func (c *Config) NumSteps() int {
	return int(c.SimulationDuration / c.TimeStep)
}
