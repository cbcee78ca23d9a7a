// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"github.com/ferid60433/coastalme-sub000/geom"
	"github.com/ferid60433/coastalme-sub000/grid"
)

// Translate builds a "virtual" parallel profile by offsetting every cell of
// an existing profile by the vector from its own coast cell to a new coast
// cell. Index 0 of the result is the translated coast cell; walking seaward
// from it, the result stops at the first cell that is out of the grid or,
// beyond index 0, for which wet reports false.
func Translate(g *grid.RasterGrid, cells []geom.Point2I, fromCoastCell, toCoastCell geom.Point2I, wet func(geom.Point2I) bool) []geom.Point2I {
	dc := toCoastCell.Col - fromCoastCell.Col
	dr := toCoastCell.Row - fromCoastCell.Row

	out := make([]geom.Point2I, 0, len(cells))
	for i, c := range cells {
		p := geom.Point2I{Col: c.Col + dc, Row: c.Row + dr}
		if !g.IsWithinGrid(p) {
			break
		}
		if i > 0 && !wet(p) {
			break
		}
		out = append(out, p)
	}
	return out
}
