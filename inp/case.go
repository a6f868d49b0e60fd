// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data: test-case description (.yaml) and MPAS output files (.nc)
package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// velocity keys available in MPAS sea-ice output
const (
	KeyU = "uVelocity"
	KeyV = "vVelocity"
)

// LineData holds the definition of the horizontal cross-section
type LineData struct {
	Y   float64 `yaml:"y"`   // y-coordinate of line
	Tol float64 `yaml:"tol"` // tolerance to compare y-coordinates
	Key string  `yaml:"key"` // velocity component to extract; e.g. "uVelocity"
	Ref string  `yaml:"ref"` // method whose x-coordinates are used by the analytic solution; "" => last method
}

// PlotData holds plotting options
type PlotData struct {
	DirOut   string `yaml:"dirout"`   // directory for output figure
	Fname    string `yaml:"fname"`    // figure filename; e.g. 1D_velocity_operator.png
	Dpi      int    `yaml:"dpi"`      // resolution
	Backend  string `yaml:"backend"`  // "chart" (pure Go) or "plt" (matplotlib)
	Title    string `yaml:"title"`    // title of figure
	Xlbl     string `yaml:"xlbl"`     // x-axis label
	Ylbl     string `yaml:"ylbl"`     // y-axis label
	RefColor string `yaml:"refcolor"` // colour of analytic curve
	RefNpts  int    `yaml:"refnpts"`  // number of points of analytic curve; 0 => use x-coordinates of line
	Table    bool   `yaml:"table"`    // also write a data table next to the figure
}

// Case holds the data of one operator comparison test case
type Case struct {
	Desc     string     `yaml:"desc"`     // description of test case
	Methods  []string   `yaml:"methods"`  // operator methods; e.g. wachspress, pwl, weak
	Subcycle int        `yaml:"subcycle"` // number of subcycles identifying the run
	DirIn    string     `yaml:"dirin"`    // directory holding the output_hex_* directories
	DirFmt   string     `yaml:"dirfmt"`   // format of run directory with (method, subcycle)
	FnRes    string     `yaml:"fnres"`    // filename of results inside run directory
	Line     LineData   `yaml:"line"`     // cross-section
	Plot     PlotData   `yaml:"plot"`     // plotting
	Prms     dbf.Params `yaml:"prms"`     // parameters of analytic solution

	// derived
	Key string // filename key of case file; "" if defaults were used
}

// DefaultCase returns the 1D_velocity_hex operator comparison with default values
func DefaultCase() *Case {
	var o Case
	o.SetDefault()
	return &o
}

// ReadCase reads test case from a YAML file. Omitted keys keep the default values
func ReadCase(fnpath string) (o *Case, err error) {
	b, err := os.ReadFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read case file %q:\n%v", fnpath, err)
	}
	o = DefaultCase()
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal case file %q:\n%v", fnpath, err)
	}
	o.Key = io.FnKey(filepath.Base(fnpath))
	if o.DirIn != "" && !filepath.IsAbs(o.DirIn) {
		o.DirIn = filepath.Join(filepath.Dir(fnpath), os.ExpandEnv(o.DirIn))
	}
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("case file %q is invalid:\n%v", fnpath, err)
	}
	return
}

// SetDefault sets default values
func (o *Case) SetDefault() {
	o.Desc = "1D sea-ice velocity: comparison of operator methods"
	o.Methods = []string{"wachspress", "pwl", "weak"}
	o.Subcycle = 7680
	o.DirIn = "."
	o.DirFmt = "output_hex_%s_%d"
	o.FnRes = "output.2000.nc"
	o.Line.Y = 508068.236886871
	o.Line.Tol = 1e-8
	o.Line.Key = KeyU
	o.Plot.DirOut = "."
	o.Plot.Fname = "1D_velocity_operator.png"
	o.Plot.Dpi = 300
	o.Plot.Backend = "chart"
	o.Plot.Xlbl = "x"
	o.Plot.Ylbl = KeyU
	o.Plot.RefColor = "r"
}

// PostProcess checks consistency of input data
func (o *Case) PostProcess() (err error) {
	if len(o.Methods) < 1 {
		return chk.Err("at least one operator method must be given")
	}
	seen := make(map[string]bool)
	for _, m := range o.Methods {
		if strings.TrimSpace(m) == "" {
			return chk.Err("operator method names must not be empty. methods = %v", o.Methods)
		}
		if seen[m] {
			return chk.Err("operator method %q is repeated", m)
		}
		seen[m] = true
	}
	if o.Subcycle < 1 {
		return chk.Err("subcycle number must be positive. subcycle = %d", o.Subcycle)
	}
	if o.Line.Tol <= 0 {
		return chk.Err("tolerance to locate line must be positive. tol = %g", o.Line.Tol)
	}
	if o.Line.Key != KeyU && o.Line.Key != KeyV {
		return chk.Err("velocity key must be %q or %q. key = %q", KeyU, KeyV, o.Line.Key)
	}
	if o.Line.Ref != "" && !seen[o.Line.Ref] {
		return chk.Err("reference method %q is not among methods %v", o.Line.Ref, o.Methods)
	}
	if o.Plot.Fname == "" {
		return chk.Err("figure filename must be given")
	}
	if o.Plot.Dpi < 1 {
		return chk.Err("dpi must be positive. dpi = %d", o.Plot.Dpi)
	}
	if o.Plot.Backend != "chart" && o.Plot.Backend != "plt" {
		return chk.Err("plotting backend must be \"chart\" or \"plt\". backend = %q", o.Plot.Backend)
	}
	if o.Plot.RefNpts == 1 || o.Plot.RefNpts < 0 {
		return chk.Err("number of points of analytic curve must be 0 or greater than 1. refnpts = %d", o.Plot.RefNpts)
	}
	return
}

// RefMethod returns the method providing the x-coordinates of the analytic solution
func (o *Case) RefMethod() string {
	if o.Line.Ref != "" {
		return o.Line.Ref
	}
	return o.Methods[len(o.Methods)-1]
}

// ResultPath returns the path to the output file of a given operator method
func (o *Case) ResultPath(method string) string {
	return filepath.Join(o.DirIn, io.Sf(o.DirFmt, method, o.Subcycle), o.FnRes)
}
