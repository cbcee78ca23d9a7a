// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

import (
	"github.com/jonas-p/go-shp"

	"github.com/ferid60433/coastalme-sub000/errs"
)

// ShpVectorWriter implements VectorWriter by writing an ESRI shapefile of
// polylines with one integer or real attribute field, using the domain
// vector library the retrieval pack's geospatial sibling depends on.
type ShpVectorWriter struct {
	FieldName  string
	FieldIsInt bool
}

// WriteVector implements VectorWriter.
func (w ShpVectorWriter) WriteVector(path string, layer []Polyline) error {
	sw, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return errs.Wrap(errs.VectorFileWrite, err, "cannot create shapefile %q", path)
	}
	defer sw.Close()

	field := shp.NumberField(w.FieldName, 12)
	if !w.FieldIsInt {
		field = shp.FloatField(w.FieldName, 12, 6)
	}
	sw.SetFields([]shp.Field{field})

	for i, pl := range layer {
		pts := make([]shp.Point, len(pl.Points))
		for j, p := range pl.Points {
			pts[j] = shp.Point{X: p[0], Y: p[1]}
		}
		line := &shp.PolyLine{
			Box:       boundingBox(pts),
			NumParts:  1,
			NumPoints: int32(len(pts)),
			Parts:     []int32{0},
			Points:    pts,
		}
		idx := sw.Write(line)
		if werr := sw.WriteAttribute(int(idx), 0, pl.Attributes[w.FieldName]); werr != nil {
			return errs.Wrap(errs.VectorFileWrite, werr, "cannot write attribute for feature %d to %q", i, path)
		}
	}
	return nil
}

func boundingBox(pts []shp.Point) shp.Box {
	if len(pts) == 0 {
		return shp.Box{}
	}
	box := shp.Box{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}
	return box
}
