// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/rgknox/velcmp/inp"
	"github.com/rgknox/velcmp/post"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		io.PfRed("\nERROR: %v\n", err)
		os.Exit(1)
	}
}

// runFlags holds command line options overriding the test case
type runFlags struct {
	caseFn   string
	dirin    string
	methods  []string
	subcycle int
	dirout   string
	dpi      int
	backend  string
	table    bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:           "velcmp",
		Short:         "Compare sea-ice velocities of operator methods against the 1D analytic solution",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.testCase(cmd)
			if err != nil {
				return err
			}
			if f.verbose {
				io.PfWhite("\nvelcmp -- 1D sea-ice velocity: comparison of operator methods\n")
				io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
					"case filename", "case", f.caseFn,
					"directory with results", "dirin", c.DirIn,
					"operator methods", "methods", io.Sf("%v", c.Methods),
					"number of subcycles", "subcycle", c.Subcycle,
					"directory for figure", "out", c.Plot.DirOut,
					"resolution", "dpi", c.Plot.Dpi,
					"plotting backend", "backend", c.Plot.Backend,
					"write data table", "table", c.Plot.Table,
				))
			}
			cmp, err := post.NewMain(c, f.verbose)
			if err != nil {
				return err
			}
			return cmp.Run()
		},
	}

	f.register(cmd.Flags())
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "show messages")

	cmd.AddCommand(newSynthCmd(&f.verbose))
	return cmd
}

// register adds the flags overriding the test case
func (o *runFlags) register(fl *pflag.FlagSet) {
	fl.StringVarP(&o.caseFn, "case", "c", "", "test case file (.yaml); defaults reproduce the 1D_velocity_hex comparison")
	fl.StringVar(&o.dirin, "dirin", "", "directory holding the output_hex_<method>_<subcycle> directories")
	fl.StringSliceVar(&o.methods, "methods", nil, "comma separated operator methods; e.g. wachspress,pwl,weak")
	fl.IntVar(&o.subcycle, "subcycle", 0, "number of subcycles identifying the runs")
	fl.StringVarP(&o.dirout, "out", "o", "", "directory for figure")
	fl.IntVar(&o.dpi, "dpi", 0, "resolution of figure")
	fl.StringVar(&o.backend, "backend", "", "plotting backend: chart or plt (matplotlib)")
	fl.BoolVar(&o.table, "table", false, "also write a data table next to the figure")
}

// testCase reads the case file, if any, and applies the flags set in the command line
func (o *runFlags) testCase(cmd *cobra.Command) (c *inp.Case, err error) {
	if o.caseFn != "" {
		c, err = inp.ReadCase(o.caseFn)
		if err != nil {
			return
		}
	} else {
		c = inp.DefaultCase()
	}
	fl := cmd.Flags()
	if fl.Changed("dirin") {
		c.DirIn = o.dirin
	}
	if fl.Changed("methods") {
		c.Methods = o.methods
	}
	if fl.Changed("subcycle") {
		c.Subcycle = o.subcycle
	}
	if fl.Changed("out") {
		c.Plot.DirOut = o.dirout
	}
	if fl.Changed("dpi") {
		c.Plot.Dpi = o.dpi
	}
	if fl.Changed("backend") {
		c.Plot.Backend = o.backend
	}
	if fl.Changed("table") {
		c.Plot.Table = o.table
	}
	err = c.PostProcess()
	return
}
