// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/rgknox/velcmp/ana"
	"github.com/rgknox/velcmp/inp"
	"github.com/spf13/cobra"
)

func newSynthCmd(verbose *bool) *cobra.Command {
	var caseFn, dirout string
	var noise float64
	var d inp.SynthData
	d.SetDefault()

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write synthetic MPAS-like outputs for each operator method",
		Long: `Write synthetic MPAS-like outputs for each operator method.

The velocity of method i is the analytic solution times (1 + noise・i・sin(2πx/Lx)).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := inp.DefaultCase()
			if caseFn != "" {
				var err error
				if c, err = inp.ReadCase(caseFn); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("dirout") {
				c.DirIn = dirout
			}
			return writeSynth(c, &d, noise, *verbose)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&caseFn, "case", "c", "", "test case file (.yaml) giving methods, subcycle and line")
	fl.StringVarP(&dirout, "dirout", "o", ".", "directory for the output_hex_<method>_<subcycle> directories")
	fl.Float64Var(&noise, "noise", 0.05, "relative perturbation between methods")
	fl.IntVar(&d.Nx, "nx", d.Nx, "number of vertices per row")
	fl.IntVar(&d.Ny, "ny", d.Ny, "number of rows")
	fl.IntVar(&d.Ntimes, "ntimes", d.Ntimes, "number of output times")
	return cmd
}

// writeSynth writes one output file per method of c
func writeSynth(c *inp.Case, d *inp.SynthData, noise float64, verbose bool) (err error) {
	var sol ana.SeaIce1D
	err = sol.Init(c.Prms)
	if err != nil {
		return chk.Err("cannot initialise analytic solution:\n%v", err)
	}
	d.Lx = sol.Lx
	d.Yline = c.Line.Y
	for i, method := range c.Methods {
		amp := noise * float64(i)
		o, e := inp.SynthOutput(d, func(x float64) float64 {
			return sol.Calc(x).U * (1.0 + amp*math.Sin(2.0*math.Pi*x/sol.Lx))
		})
		if e != nil {
			return e
		}
		fnpath := c.ResultPath(method)
		if e = os.MkdirAll(filepath.Dir(fnpath), 0777); e != nil {
			return chk.Err("cannot create directory for %q:\n%v", fnpath, e)
		}
		if e = inp.WriteOutput(fnpath, o); e != nil {
			return e
		}
		if verbose {
			io.Pfyel("> file <%s> written\n", fnpath)
		}
	}
	return
}
