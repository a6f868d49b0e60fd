// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_case01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("case01. default test case")

	c := DefaultCase()
	err := c.PostProcess()
	if err != nil {
		tst.Errorf("default case is invalid:\n%v", err)
		return
	}
	chk.Strings(tst, "methods", c.Methods, []string{"wachspress", "pwl", "weak"})
	chk.Int(tst, "subcycle", c.Subcycle, 7680)
	chk.Float64(tst, "line y", 1e-17, c.Line.Y, 508068.236886871)
	chk.Float64(tst, "line tol", 1e-17, c.Line.Tol, 1e-8)
	chk.String(tst, c.Line.Key, KeyU)
	chk.String(tst, c.Plot.Fname, "1D_velocity_operator.png")
	chk.Int(tst, "dpi", c.Plot.Dpi, 300)
	chk.String(tst, c.RefMethod(), "weak")
	chk.String(tst, c.ResultPath("pwl"), filepath.Join("output_hex_pwl_7680", "output.2000.nc"))
}

func Test_case02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("case02. read case file")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "single.yaml")
	err := os.WriteFile(fn, []byte(`desc: single method
methods: [wachspress]
subcycle: 960
dirin: runs
line:
  tol: 1.0e-6
plot:
  fname: single.png
  dpi: 150
  table: true
prms:
  - {n: uair, v: 2.0}
  - {n: Lx, v: 640000}
`), 0644)
	if err != nil {
		tst.Errorf("cannot write case file:\n%v", err)
		return
	}

	c, err := ReadCase(fn)
	if err != nil {
		tst.Errorf("ReadCase failed:\n%v", err)
		return
	}
	io.Pforan("case = %+v\n", c)
	chk.String(tst, c.Key, "single")
	chk.Strings(tst, "methods", c.Methods, []string{"wachspress"})
	chk.Int(tst, "subcycle", c.Subcycle, 960)
	chk.Float64(tst, "line y (default)", 1e-17, c.Line.Y, 508068.236886871)
	chk.Float64(tst, "line tol", 1e-17, c.Line.Tol, 1e-6)
	chk.String(tst, c.Plot.Backend, "chart")
	chk.Int(tst, "dpi", c.Plot.Dpi, 150)
	if !c.Plot.Table {
		tst.Errorf("plot.table should be true")
	}
	chk.Int(tst, "number of parameters", len(c.Prms), 2)
	chk.String(tst, c.Prms[0].N, "uair")
	chk.Float64(tst, "uair", 1e-17, c.Prms[0].V, 2.0)
	chk.String(tst, c.Prms[1].N, "Lx")
	chk.Float64(tst, "Lx", 1e-17, c.Prms[1].V, 640000)
	chk.String(tst, c.RefMethod(), "wachspress")
	chk.String(tst, c.ResultPath("wachspress"), filepath.Join(dir, "runs", "output_hex_wachspress_960", "output.2000.nc"))
}

func Test_case03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("case03. invalid cases")

	for i, modify := range []func(c *Case){
		func(c *Case) { c.Methods = nil },
		func(c *Case) { c.Methods = []string{"pwl", "pwl"} },
		func(c *Case) { c.Methods = []string{"pwl", " "} },
		func(c *Case) { c.Subcycle = 0 },
		func(c *Case) { c.Line.Tol = 0 },
		func(c *Case) { c.Line.Key = "iceAreaCell" },
		func(c *Case) { c.Line.Ref = "fem" },
		func(c *Case) { c.Plot.Fname = "" },
		func(c *Case) { c.Plot.Dpi = 0 },
		func(c *Case) { c.Plot.Backend = "gnuplot" },
		func(c *Case) { c.Plot.RefNpts = 1 },
	} {
		c := DefaultCase()
		modify(c)
		err := c.PostProcess()
		if err == nil {
			tst.Errorf("case %d should have failed", i)
			continue
		}
		io.Pforan("%d: %v\n", i, err)
	}

	_, err := ReadCase(filepath.Join(tst.TempDir(), "missing.yaml"))
	if err == nil {
		tst.Errorf("ReadCase should have failed with missing file")
	}
}

func Test_case04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("case04. example case file")

	fn := filepath.Join("..", "examples", "velocity_hex", "operator.yaml")
	c, err := ReadCase(fn)
	if err != nil {
		tst.Errorf("ReadCase failed:\n%v", err)
		return
	}
	chk.String(tst, c.Key, "operator")
	d := DefaultCase()
	chk.Strings(tst, "methods", c.Methods, d.Methods)
	chk.Int(tst, "subcycle", c.Subcycle, d.Subcycle)
	chk.String(tst, c.ResultPath("weak"), filepath.Join("..", "examples", "velocity_hex", "output_hex_weak_7680", "output.2000.nc"))
	chk.Float64(tst, "line y", 1e-17, c.Line.Y, d.Line.Y)
	chk.Float64(tst, "line tol", 1e-17, c.Line.Tol, d.Line.Tol)
	chk.String(tst, c.Plot.Fname, d.Plot.Fname)
	chk.Int(tst, "dpi", c.Plot.Dpi, d.Plot.Dpi)
	chk.Int(tst, "number of parameters", len(c.Prms), 9)
	chk.String(tst, c.Prms[8].N, "Lx")
	chk.Float64(tst, "Lx", 1e-17, c.Prms[8].V, 1280000)
}
