// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package external

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ferid60433/coastalme-sub000/erosion"
	"github.com/ferid60433/coastalme-sub000/errs"
)

// ReadShapeFunctionFile parses the erosion-potential control-point file:
// first token N, then N lines each of (d/Db, eps, eps'),
// monotone in d/Db. There is no third-party format here to reach for — it
// is a bespoke three-column table private to this core, so a small
// bufio.Scanner reader is the simplest faithful implementation.
func ReadShapeFunctionFile(path string) ([]erosion.ControlPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.ShapeFunctionFile, err, "cannot open shape function file %q", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return nil, errs.New(errs.ShapeFunctionFile, "empty shape function file %q", path)
	}
	var n int
	if _, err := fmt.Sscanf(sc.Text(), "%d", &n); err != nil {
		return nil, errs.Wrap(errs.ShapeFunctionFile, err, "cannot parse control point count")
	}

	points := make([]erosion.ControlPoint, 0, n)
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, errs.New(errs.ShapeFunctionFile, "expected %d control points, found %d", n, i)
		}
		var p erosion.ControlPoint
		if _, err := fmt.Sscanf(sc.Text(), "%g %g %g", &p.DOverDB, &p.Eps, &p.DEps); err != nil {
			return nil, errs.Wrap(errs.ShapeFunctionFile, err, "cannot parse control point %d", i)
		}
		if i > 0 && p.DOverDB <= points[i-1].DOverDB {
			return nil, errs.New(errs.ShapeFunctionFile, "control points not monotone in d/Db at row %d", i)
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ShapeFunctionFile, err, "error reading shape function file %q", path)
	}
	return points, nil
}
