// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package post implements the comparison of operator methods against the analytic solution
package post

import (
	"path/filepath"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/rgknox/velcmp/ana"
	"github.com/rgknox/velcmp/inp"
	"github.com/rgknox/velcmp/out"
)

// Main holds all data for one comparison of operator methods
type Main struct {
	Case     *inp.Case         // test case
	Sol      ana.SeaIce1D      // analytic solution
	Profiles []*out.Profile    // [nmethods] profiles along line
	RefX     []float64         // x-coordinates of analytic solution
	RefU     []float64         // analytic velocities
	Terms    []ana.SeaIceTerms // intermediate quantities of analytic solution
	Fig      out.Figure        // figure
	FnFig    string            // path of saved figure
	FnTable  string            // path of saved table; "" if not saved
	ShowMsg  bool              // show messages
}

// NewMain returns a new Main structure
func NewMain(c *inp.Case, verbose bool) (o *Main, err error) {
	if c == nil {
		return nil, chk.Err("test case must be given")
	}
	err = c.PostProcess()
	if err != nil {
		return
	}
	o = &Main{Case: c, ShowMsg: verbose}
	err = o.Sol.Init(c.Prms)
	if err != nil {
		return nil, chk.Err("cannot initialise analytic solution:\n%v", err)
	}
	o.Fig.Title = c.Plot.Title
	o.Fig.Xlbl = c.Plot.Xlbl
	o.Fig.Ylbl = c.Plot.Ylbl
	if o.Fig.Ylbl == "" {
		o.Fig.Ylbl = out.GetLabel(c.Line.Key, "m/s")
	}
	return
}

// Run reads the results of all methods, computes the analytic solution and saves the figure
func (o *Main) Run() (err error) {

	// message
	cputime := time.Now()
	if o.ShowMsg {
		io.Pf("> %s\n", o.Case.Desc)
	}

	// methods
	o.Fig.Data = nil
	o.FnTable = ""
	err = o.readProfiles()
	if err != nil {
		return
	}

	// analytic solution
	err = o.reference()
	if err != nil {
		return
	}
	ana.PrintTerms(o.Terms)

	// figure
	sty := out.GetDefaultStyles(o.Profiles)
	for i, p := range o.Profiles {
		err = o.Fig.Plot(p.X, p.Last(), p.Method, sty[i])
		if err != nil {
			return
		}
	}
	err = o.Fig.Plot(o.RefX, o.RefU, "analytic", &plt.A{C: o.Case.Plot.RefColor, L: "analytic", Z: 2})
	if err != nil {
		return
	}
	o.FnFig, err = o.Fig.Draw(o.Case.Plot.DirOut, o.Case.Plot.Fname, o.Case.Plot.Dpi, o.Case.Plot.Backend)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pfyel("> figure saved in %q\n", o.FnFig)
	}

	// table
	if o.Case.Plot.Table {
		err = o.saveTable()
		if err != nil {
			return
		}
	}

	// message
	if o.ShowMsg {
		io.Pf("> Comparison completed. cpu time = %v\n", time.Now().Sub(cputime))
	}
	return
}

// readProfiles reads the output of each method, in order, and extracts the profile along line
func (o *Main) readProfiles() (err error) {
	c := o.Case
	loc := out.AlongX{c.Line.Y, c.Line.Tol}
	o.Profiles = make([]*out.Profile, 0, len(c.Methods))
	for _, method := range c.Methods {
		fnpath := c.ResultPath(method)
		m, e := inp.ReadOutput(fnpath)
		if e != nil {
			return chk.Err("cannot read results of method %q:\n%v", method, e)
		}
		p, e := out.Extract(method, c.Line.Key, m, loc)
		if e != nil {
			return chk.Err("cannot extract profile from %q:\n%v", fnpath, e)
		}
		o.Profiles = append(o.Profiles, p)
		if o.ShowMsg {
			xmin, xmax := p.Xrange()
			io.Pforan("%-12s: nverts=%d ntimes=%d npts=%d x ∈ [%g, %g]\n", method, m.Nverts, m.Ntimes, len(p.X), xmin, xmax)
			io.Pforan("%-12s: norms = %v\n", method, p.Norms)
		}
	}
	return
}

// reference computes the analytic solution at the x-coordinates of the reference method
func (o *Main) reference() (err error) {
	p := o.Profile(o.Case.RefMethod())
	if p == nil {
		return chk.Err("cannot find profile of reference method %q", o.Case.RefMethod())
	}
	if o.Case.Plot.RefNpts > 0 {
		xmin, xmax := p.Xrange()
		o.RefX = utl.LinSpace(xmin, xmax, o.Case.Plot.RefNpts)
	} else {
		o.RefX = make([]float64, len(p.X))
		copy(o.RefX, p.X)
	}
	o.RefU, o.Terms = o.Sol.Curve(o.RefX)
	return
}

// saveTable writes final-time velocities of all methods and the analytic solution
func (o *Main) saveTable() (err error) {
	keys := make([]string, 0, len(o.Profiles)+1)
	cols := make([][]float64, 0, len(o.Profiles)+1)
	for _, p := range o.Profiles {
		if !out.SameX(p.X, o.RefX) {
			return chk.Err("cannot write table because x-coordinates of method %q differ from the reference ones", p.Method)
		}
		keys = append(keys, p.Method)
		cols = append(cols, p.Last())
	}
	keys = append(keys, "analytic")
	cols = append(cols, o.RefU)
	o.FnTable = filepath.Join(o.Case.Plot.DirOut, io.FnKey(o.Case.Plot.Fname)+".dat")
	err = out.WriteTable(o.FnTable, o.RefX, keys, cols)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pfyel("> table saved in %q\n", o.FnTable)
	}
	return
}

// Profile returns the profile of a given method; nil if not found
func (o *Main) Profile(method string) *out.Profile {
	for _, p := range o.Profiles {
		if p.Method == method {
			return p
		}
	}
	return nil
}
