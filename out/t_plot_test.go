// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
	"github.com/wcharczuk/go-chart/v2"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. figure with methods and reference")

	X := utl.LinSpace(0, 1, 11)
	Y1 := make([]float64, len(X))
	Y2 := make([]float64, len(X))
	for i, x := range X {
		Y1[i] = x * (1 - x)
		Y2[i] = 1.1 * x * (1 - x)
	}

	var fig Figure
	fig.Xlbl = "x"
	fig.Ylbl = GetLabel("uVelocity", "m/s")
	chk.String(tst, fig.Ylbl, "uVelocity [m/s]")
	err := fig.Plot(X, Y2, "analytic", &plt.A{C: "r", Z: 2})
	if err != nil {
		tst.Errorf("Plot failed:\n%v", err)
		return
	}
	if err = fig.Plot(X, Y1, "wachspress", nil); err != nil {
		tst.Errorf("Plot failed:\n%v", err)
		return
	}
	if err = fig.Plot(X, Y1[:3], "pwl", nil); err == nil {
		tst.Errorf("Plot should have failed with different lengths")
	}
	if err = fig.Plot(nil, nil, "weak", nil); err == nil {
		tst.Errorf("Plot should have failed with empty series")
	}

	// z-order
	sorted := fig.sorted()
	chk.String(tst, sorted[0].Style.L, "wachspress")
	chk.String(tst, sorted[1].Style.L, "analytic")

	// draw
	dir := tst.TempDir()
	fnpath, err := fig.Draw(dir, "fig.png", 100, "chart")
	if err != nil {
		tst.Errorf("Draw failed:\n%v", err)
		return
	}
	chk.String(tst, fnpath, filepath.Join(dir, "fig.png"))
	f, err := os.Open(fnpath)
	if err != nil {
		tst.Errorf("cannot open figure:\n%v", err)
		return
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		tst.Errorf("figure is not a png file:\n%v", err)
		return
	}
	chk.Int(tst, "width", cfg.Width, 640)
	chk.Int(tst, "height", cfg.Height, 480)

	// errors
	_, err = fig.Draw(dir, "fig.png", 100, "gnuplot")
	if err == nil {
		tst.Errorf("Draw should have failed with unknown backend")
	}
	var empty Figure
	_, err = empty.Draw(dir, "fig.png", 100, "chart")
	if err == nil {
		tst.Errorf("Draw should have failed without data")
	}

	// matplotlib
	if chk.Verbose {
		_, err = fig.Draw("/tmp/velcmp", "plot01.png", 150, "plt")
		if err != nil {
			tst.Errorf("Draw with matplotlib failed:\n%v", err)
		}
	}
}

func Test_plot02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot02. default styles")

	profiles := []*Profile{{Method: "wachspress"}, {Method: "pwl"}}
	sty := GetDefaultStyles(profiles)
	chk.Int(tst, "len(sty)", len(sty), 2)
	chk.String(tst, sty[0].L, "wachspress")
	chk.String(tst, sty[1].L, "pwl")
	chk.Int(tst, "z-order", sty[1].Z, 1)

	if chartColor("", 3) != chart.GetDefaultColor(3) {
		tst.Errorf("empty colour code should select default colour")
	}
	if chartColor("r", 0) != chart.ColorRed {
		tst.Errorf("colour code \"r\" should select red")
	}
}
