// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements handling of MPAS sea-ice output for analyses and plotting
package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/rgknox/velcmp/inp"
)

// constants
var (
	TolC = 1e-8 // tolerance to compare x-y coordinates
)

// Locator defines interface for locating vertices
type Locator interface {
	Locate(m *inp.Output) (vids []int, err error)
}

// AlongX implements locator along a horizontal line with []float64{y_cte} or []float64{y_cte, y_tol}
//  Note: vertices are returned sorted by their x-coordinates
type AlongX []float64

// Locate finds vertices with |y - y_cte| < y_tol
func (o AlongX) Locate(m *inp.Output) (vids []int, err error) {
	if len(o) < 1 {
		return nil, chk.Err("AlongX locator needs the y-coordinate of the line")
	}
	yCte, yTol := o[0], TolC
	if len(o) > 1 {
		yTol = o[1]
	}
	if len(m.Xvert) != len(m.Yvert) {
		return nil, chk.Err("lengths of x and y coordinates of vertices are different. %d != %d", len(m.Xvert), len(m.Yvert))
	}
	var x []float64
	for vid, y := range m.Yvert {
		if math.Abs(y-yCte) < yTol {
			vids = append(vids, vid)
			x = append(x, m.Xvert[vid])
		}
	}
	if len(vids) < 1 {
		return nil, chk.Err("cannot find vertices along y = %v (tol = %g). vertices are within y ∈ [%v, %v]", yCte, yTol, m.Ymin, m.Ymax)
	}
	vids, _, _, _ = utl.SortQuadruples(vids, x, nil, nil, "x")
	return
}
