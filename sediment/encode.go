// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sediment

import "github.com/cpmech/gosl/utl"

// snapshot is the flat, gob-friendly shape of a Cell's persistent (non-
// transient) state, used for in-memory save-instant snapshots.
type snapshot struct {
	Basement     float64
	Layers       []CellLayer
	Landform     Landform
	Intervention Intervention
	Suspended    float64
	Totals       Totals
}

// Encode writes the cell's persistent state (everything but the per-step
// transient scratch fields) through the gosl Encoder interface, so a grid
// snapshot needs no bespoke binary format.
func (c *Cell) Encode(enc utl.Encoder) error {
	return enc.Encode(snapshot{
		Basement:     c.Basement,
		Layers:       c.Layers,
		Landform:     c.Landform,
		Intervention: c.Intervention,
		Suspended:    c.SuspendedSediment,
		Totals:       c.Totals,
	})
}

// Decode restores a cell's persistent state from a prior Encode call and
// recomputes derived layer elevations.
func (c *Cell) Decode(dec utl.Decoder) error {
	var s snapshot
	if err := dec.Decode(&s); err != nil {
		return err
	}
	c.Basement = s.Basement
	c.Layers = s.Layers
	c.Landform = s.Landform
	c.Intervention = s.Intervention
	c.SuspendedSediment = s.Suspended
	c.Totals = s.Totals
	c.CalcAllLayerElevs()
	return nil
}
