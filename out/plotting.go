// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias; used as label if Style.L is empty
	X     []float64 // x-values
	Y     []float64 // y-values
	Style plt.A     // style
}

// Figure stores all data for one set of axes
type Figure struct {
	Title string       // title of figure
	Xlbl  string       // x-axis label
	Ylbl  string       // y-axis label
	Data  []*PltEntity // data and styles to be plotted
}

// Plot adds a curve to figure
//  sty -- formatting codes; e.g. &plt.A{C: "r", Z: 2}. may be nil
func (o *Figure) Plot(x, y []float64, alias string, sty *plt.A) error {
	if len(x) != len(y) {
		return chk.Err("lengths of x- and y-series of %q are different. len(x)=%d, len(y)=%d", alias, len(x), len(y))
	}
	if len(x) < 1 {
		return chk.Err("cannot plot empty series %q", alias)
	}
	e := &PltEntity{Alias: alias, X: x, Y: y}
	if sty != nil {
		e.Style = *sty
	}
	if e.Style.L == "" {
		e.Style.L = alias
	}
	o.Data = append(o.Data, e)
	return nil
}

// Draw saves figure; any existing file is overwritten
//  dirout  -- directory to save figure
//  fname   -- file name; e.g. myplot.png
//  dpi     -- resolution
//  backend -- "chart" (pure Go; png only) or "plt" (matplotlib; requires python3)
func (o *Figure) Draw(dirout, fname string, dpi int, backend string) (fnpath string, err error) {
	if len(o.Data) < 1 {
		return "", chk.Err("there is no data to be drawn")
	}
	if dirout == "" {
		dirout = "."
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return "", chk.Err("cannot create directory for figure %q:\n%v", dirout, err)
	}
	fnpath = filepath.Join(dirout, fname)
	switch backend {
	case "chart":
		err = drawChart(o, fnpath, dpi)
	case "plt":
		err = drawPlt(o, dirout, fname, dpi)
	default:
		err = chk.Err("plotting backend %q is not available", backend)
	}
	return
}

// sorted returns entities sorted by z-order; entities with equal z-order keep their order
func (o *Figure) sorted() []*PltEntity {
	res := make([]*PltEntity, len(o.Data))
	copy(res, o.Data)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Style.Z < res[j].Style.Z })
	return res
}
