// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// drawPlt renders figure using matplotlib (through a python script generated by gosl/plt)
func drawPlt(fig *Figure, dirout, fname string, dpi int) (err error) {

	// plt panics on failures
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("matplotlib could not save figure %q:\n%v", fname, r)
		}
	}()

	ext := io.FnExt(fname)
	if ext != ".png" && ext != ".eps" {
		return chk.Err("matplotlib backend saves .png or .eps files only. fname = %q", fname)
	}
	plt.Reset(true, &plt.A{Dpi: dpi, Png: ext == ".png", Eps: ext == ".eps"})
	for _, d := range fig.sorted() {
		sty := d.Style
		sty.NoClip = true
		plt.Plot(d.X, d.Y, &sty)
	}
	if fig.Title != "" {
		plt.Title(fig.Title, nil)
	}
	plt.Gll(fig.Xlbl, fig.Ylbl, nil)
	plt.Save(dirout, io.FnKey(fname))
	return
}
