// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/ferid60433/coastalme-sub000/cliff"
	"github.com/ferid60433/coastalme-sub000/coast"
	"github.com/ferid60433/coastalme-sub000/diag"
	"github.com/ferid60433/coastalme-sub000/erosion"
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/profile"
	"github.com/ferid60433/coastalme-sub000/sediment"
	"github.com/ferid60433/coastalme-sub000/wave"
)

// coastState bundles one traced coastline with the profiles built on it and
// the per-coast-point cliff landform objects for the current step.
type coastState struct {
	c *coast.Coast

	// landforms[i] is the coast-landform object attached to coast point i;
	// updateGrid writes it back to the underlying cell at step end.
	landforms []sediment.CliffState
}

// smoothOptions translates the config's coastSmooth fields into
// coast.SmoothOptions.
func (d *Driver) smoothOptions() coast.SmoothOptions {
	opt := coast.SmoothOptions{
		RunningMeanW: d.Cfg.CoastSmoothWindow,
		SavGolW:      d.Cfg.CoastSmoothWindow,
		SavGolOrder:  d.Cfg.SavGolCoastPoly,
		CurvInterval: d.Cfg.CoastCurvatureInterval,
	}
	switch d.Cfg.CoastSmooth {
	case "running-mean":
		opt.Kind = coast.SmoothRunningMean
	case "savitzky-golay":
		opt.Kind = coast.SmoothSavitzkyGolay
	default:
		opt.Kind = coast.SmoothNone
	}
	return opt
}

// locateCoastsAndProfiles is phase (3): trace the coastline(s) at the
// current still-water level, smooth, then emit and rasterize the
// coast-normal profiles on each.
func (d *Driver) locateCoastsAndProfiles() error {
	reverse := d.Cfg.ErodeCoastAlternateDir && d.Step%2 == 1
	results, err := coast.Trace(d.Grid, d.StillWaterLevel, d.randEdge, d.Cfg.RandomCoastEdgeSearch, reverse)
	if err != nil {
		return err
	}

	opt := d.smoothOptions()
	profOpt := profile.Options{
		AvgSpacing:    d.Cfg.CoastNormalAvgSpacing,
		Length:        d.Cfg.CoastNormalLength,
		RandSpaceFact: d.Cfg.CoastNormalRandSpaceFact,
		CellSide:      d.Grid.Side,
	}

	d.coasts = d.coasts[:0]
	for _, tr := range results {
		c := coast.Build(d.Grid, tr, opt)

		tangent := func(i int) float64 { return c.FluxOrientation[i] }
		profiles, warnings := profile.Emit(d.Grid, c.Smoothed, c.Raw, c.Hand, tangent, profOpt, d.randSpace)
		for _, w := range warnings {
			diag.Warn("profile emission: %v", w)
		}

		var kept []*profile.Profile
		for _, p := range profiles {
			if verr := profile.ValidateAgainstGrid(d.Grid, p, d.StillWaterLevel); verr != nil {
				diag.Warn("profile at coast index %d rejected: %v", p.StartCoastIndex, verr)
				continue
			}
			kept = append(kept, p)
			cell := d.Grid.Cell(p.Cells[0].Col, p.Cells[0].Row)
			cell.IsNormalProfile = true
		}
		c.Profiles = kept

		if _, _, _, found := profile.Intersect(kept); found {
			diag.Warn("coast has intersecting profiles")
		}

		d.coasts = append(d.coasts, &coastState{c: c})
	}

	d.attachLandforms()
	return nil
}

// attachLandforms gives every coast point a cliff landform object, inherited
// from the underlying cell if it was Cliff last step and fresh otherwise.
// This runs every step, whether or not cliff collapse is enabled: the
// landform state must persist across steps regardless.
func (d *Driver) attachLandforms() {
	for ci, cs := range d.coasts {
		c := cs.c
		n := c.Len()
		cs.landforms = make([]sediment.CliffState, n)
		for i := 0; i < n; i++ {
			cp := c.Raw[i]
			cell := d.Grid.Cell(cp.Col, cp.Row)
			cs.landforms[i] = cliff.Attach(cell, ci, i, d.minStillWaterLevel(), d.Grid.Side)
			c.LandformRef[i] = i
		}
	}
}

// propagateWaves is phase (4): propagate Airy shoaling/refraction along
// every profile, freeze breaking-wave properties, interpolate them onto
// every coast point, then blend per-cell wave height/orientation onto the
// virtual profiles between the real ones.
func (d *Driver) propagateWaves() {
	dw := wave.DeepWater{H0: d.Cfg.OffshoreWaveHeight, T: d.Cfg.WavePeriod, Theta0: d.Cfg.OffshoreWaveOrientation}
	if d.Forcing != nil {
		dw.H0, dw.T, dw.Theta0 = d.Forcing.Deepwater(d.Step)
	}

	for _, cs := range d.coasts {
		c := cs.c
		var breaks []wave.ProfileBreak

		for _, p := range c.Profiles {
			points := make([]wave.ProfilePoint, len(p.Cells))
			for i, cp := range p.Cells {
				cell := d.Grid.Cell(cp.Col, cp.Row)
				points[i] = wave.ProfilePoint{Cell: cell, WaterDepth: cell.WaterDepth(d.StillWaterLevel)}
			}

			idx := p.StartCoastIndex
			coastTangent := c.FluxOrientation[idx]
			prevF, nextF := coastTangent, coastTangent
			havePrev, haveNext := idx > 0, idx < c.Len()-1
			if havePrev {
				prevF = c.FluxOrientation[idx-1]
			}
			if haveNext {
				nextF = c.FluxOrientation[idx+1]
			}
			alpha0 := wave.ResolveAlpha0(coastTangent, prevF, nextF, dw.Theta0, havePrev, haveNext)

			br := wave.Propagate(points, dw, coastTangent, alpha0)
			breaks = append(breaks, wave.ProfileBreak{CoastPointIndex: p.StartCoastIndex, Breaking: br})
		}

		coastValues := wave.InterpolateCoastline(c.Len(), breaks)
		dtSeconds := d.Cfg.TimeStep * 3600
		for i, v := range coastValues {
			c.BreakingHeight[i] = v.BreakingHeight
			c.BreakingAngle[i] = v.BreakingAngle
			c.DepthOfBreaking[i] = v.DepthOfBreaking
			c.BreakingDistance[i] = v.BreakingDistance
			c.WaveEnergy[i] = wave.Energy(v.BreakingHeight, dw.T, dtSeconds)
		}

		d.interpolateWaveCells(c)
	}
}

// interpolateWaveCells builds a virtual profile for every coast point that
// is not itself a profile origin, translating the cell offsets of the last
// real profile before it (of the first profile, for coast points before
// that one) to that coast point and blending in a convex combination of the
// two bracketing profiles' per-cell wave values, weighted by along-coast
// proximity. Coast points before the first or after the last profile take
// that profile's values unchanged. Repeating the sweep leaves the blended
// values unchanged, since the blend is an exact running mean.
func (d *Driver) interpolateWaveCells(c *coast.Coast) {
	profs := c.Profiles
	if len(profs) == 0 {
		return
	}

	for n := 0; n < c.Len(); n++ {
		// bracketing profiles: a is the last profile at or before n, b the
		// first at or after n
		var a, b *profile.Profile
		for _, p := range profs {
			if p.StartCoastIndex <= n {
				a = p
			}
			if b == nil && p.StartCoastIndex >= n {
				b = p
			}
		}
		if a != nil && a.StartCoastIndex == n {
			continue // a real profile already propagated here
		}

		ref := a
		if ref == nil {
			ref = b
		}
		var wB float64
		if a != nil && b != nil && b.StartCoastIndex > a.StartCoastIndex {
			wB = float64(n-a.StartCoastIndex) / float64(b.StartCoastIndex-a.StartCoastIndex)
		}

		refCoast := ref.Cells[0]
		coastCell := c.Raw[n]
		breakDist := int(math.Round(c.BreakingDistance[n]))
		inActive := false

		for i := len(ref.Cells) - 1; i >= 1; i-- {
			tgt := geom.Point2I{
				Col: coastCell.Col + ref.Cells[i].Col - refCoast.Col,
				Row: coastCell.Row + ref.Cells[i].Row - refCoast.Row,
			}
			if !d.Grid.IsWithinGrid(tgt) {
				continue
			}
			target := d.Grid.Cell(tgt.Col, tgt.Row)
			if target.WaterDepth(d.StillWaterLevel) <= 0 {
				continue
			}

			var h, o float64
			if a != nil && b != nil && i < len(a.Cells) && i < len(b.Cells) {
				ca := d.Grid.Cell(a.Cells[i].Col, a.Cells[i].Row)
				cb := d.Grid.Cell(b.Cells[i].Col, b.Cells[i].Row)
				h = (1-wB)*ca.WaveHeight + wB*cb.WaveHeight
				o = (1-wB)*ca.WaveOrientation + wB*cb.WaveOrientation
			} else {
				cr := d.Grid.Cell(ref.Cells[i].Col, ref.Cells[i].Row)
				h, o = cr.WaveHeight, cr.WaveOrientation
			}
			wave.BlendCellValue(target, h, o)

			if i == breakDist {
				inActive = true
			}
			if inActive {
				target.InActiveZone = true
			}
		}
	}
}

// erodeShorePlatform is phase (5): potential-then-actual shore-platform
// erosion.
func (d *Driver) erodeShorePlatform() {
	params := erosion.Params{
		R:                     d.Cfg.R,
		BeachProtectionFactor: d.Cfg.BeachProtectionFactor,
		SmoothWindow:          d.Cfg.ProfileSmoothWindow,
		FineErodibility:       d.Cfg.FineErodibility,
		SandErodibility:       d.Cfg.SandErodibility,
		CoarseErodibility:     d.Cfg.CoarseErodibility,
	}

	for _, cs := range d.coasts {
		c := cs.c
		wet := func(pt geom.Point2I) bool { return d.Grid.Cell(pt.Col, pt.Row).WaterDepth(d.StillWaterLevel) > 0 }

		origins := map[geom.Point2I]bool{}
		for _, p := range c.Profiles {
			origins[c.Raw[p.StartCoastIndex]] = true
		}

		for _, p := range c.Profiles {
			idx := p.StartCoastIndex
			f := erosion.ForcingAt{BreakingDepth: c.DepthOfBreaking[idx], WaveEnergy: c.WaveEnergy[idx]}
			if f.BreakingDepth <= 0 {
				continue
			}
			erosion.PotentialOnProfile(d.Grid, p, d.StillWaterLevel, f, d.ShapeFn, params)

			delete(origins, c.Raw[idx])
			erosion.InterProfilePotential(d.Grid, p, c.Raw, d.StillWaterLevel, f, d.ShapeFn, params, wet, origins)
			origins[c.Raw[idx]] = true
		}
	}

	d.Grid.Walk(func(col, row int, cell *sediment.Cell) {
		if cell.PotentialErosion <= 0 {
			return
		}
		d.Accum.ThisStepPotentialErosion += cell.PotentialErosion
		removed := erosion.Actual(cell, params)
		d.Accum.AddActualErosion(removed.Fine, removed.Sand, removed.Coarse)
	})
}

// collapseCliffs is phase (6): every coast point's notch deepens by this
// step's wave energy, and a notch that crosses the collapse trigger moves
// the material above it into the notch-lost ledger and redistributes the
// collapsed sand+coarse as talus. Landform attachment and persistence
// happen elsewhere (attachLandforms, updateGrid) and run even when this
// phase is disabled.
func (d *Driver) collapseCliffs() {
	for _, cs := range d.coasts {
		c := cs.c
		n := c.Len()
		for i := 0; i < n; i++ {
			cp := c.Raw[i]
			cell := d.Grid.Cell(cp.Col, cp.Row)

			state := &cs.landforms[i]
			deepen := cliff.Deepen(state, d.Grid.Side, d.Cfg.CliffErodibility, c.WaveEnergy[i])

			if cliff.ReadyToCollapse(*state, d.Cfg.NotchOverhangAtCollapse) {
				removed, err := cliff.AccountMass(cell, state, d.Cfg.NotchBaseBelowStillWaterLevel, d.Grid.Side, deepen)
				if err != nil {
					diag.Warn("cliff collapse skipped: %v", err)
					continue
				}
				d.Accum.AddCliffCollapse(removed.Fine, removed.Sand, removed.Coarse)
				cell.CollapsedDepth += removed.Fine + removed.Sand + removed.Coarse
				cell.TotCollapsedDepth += removed.Fine + removed.Sand + removed.Coarse

				if state.Remaining <= 0 {
					state.AllSedimentGone = true
					state.NotchBaseElev = state.NotchBaseElev - d.Cfg.NotchBaseBelowStillWaterLevel
				}

				if removed.Sand+removed.Coarse > 0 {
					notchElev := state.NotchBaseElev - d.Cfg.NotchBaseBelowStillWaterLevel
					talusTop := notchElev + (cell.SedimentTopElev()-notchElev)*d.Cfg.CliffDepositionHeightFrac
					ratio := cliff.FractionRatio{Sand: removed.Sand, Coarse: removed.Coarse}
					erod := [3]float64{d.Cfg.FineErodibility, d.Cfg.SandErodibility, d.Cfg.CoarseErodibility}
					params := cliff.DeanParams{
						DA:             d.Cfg.CliffDepositionA,
						PlanviewWidth:  d.Cfg.CliffDepositionPlanviewWidth,
						PlanviewLength: d.Cfg.CliffDepositionPlanviewLength,
						HeightFrac:     d.Cfg.CliffDepositionHeightFrac,
					}
					dep := cliff.Redistribute(d.Grid, d.Grid.GridToExternal(cp), c.FluxOrientation[i], c.Hand, talusTop, removed.Sand+removed.Coarse, ratio, erod, params)
					d.Accum.AddSedLost(dep.SedLost)
					d.Accum.AddActualErosion(dep.ErodedFine, dep.ErodedSand, dep.ErodedCoarse)
					cell.CollapsedDepositDepth += dep.Delivered
					cell.TotCollapsedDepositDepth += dep.Delivered
				}
			}
		}
	}
}

// updateGrid is phase (8): spread this step's fine erosion and cliff
// collapse conservatively across every sea cell as suspended sediment, then
// rewrite each coast cell's persistent landform from its coast-landform
// object so state persists to the next step.
func (d *Driver) updateGrid() {
	for _, cs := range d.coasts {
		for i, state := range cs.landforms {
			cp := cs.c.Raw[i]
			d.Grid.Cell(cp.Col, cp.Row).Landform = sediment.NewCliff(state)
		}
	}

	d.Grid.Walk(func(col, row int, cell *sediment.Cell) {
		if cell.Landform.Category == sediment.LandformCliff && cell.Landform.Cliff.AllSedimentGone {
			cliff.Settle(cell)
		}
	})

	d.Grid.RecalcStats(d.StillWaterLevel)
	fineTotal := d.Accum.ThisStepFineErosion + d.Accum.ThisStepCliffCollapseFine
	d.lastSuspendedAdded = 0
	if d.Grid.Stats.NSeaCells > 0 && fineTotal > 0 {
		perCell := fineTotal / float64(d.Grid.Stats.NSeaCells)
		d.Grid.Walk(func(col, row int, cell *sediment.Cell) {
			if cell.WaterDepth(d.StillWaterLevel) > 0 {
				cell.SuspendedSediment += perCell
				d.lastSuspendedAdded += perCell
			}
		})
	}

	for _, cs := range d.coasts {
		c := cs.c
		for _, cp := range c.Raw {
			d.Grid.Cell(cp.Col, cp.Row).IsCoastline = true
		}
	}
}
