// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/cdf"
	"github.com/batchatco/go-native-netcdf/netcdf/util"
	"github.com/cpmech/gosl/chk"
)

// dimension names in MPAS output files
const (
	DimCells  = "nCells"
	DimVerts  = "nVertices"
	DimDegree = "vertexDegree"
	DimTime   = "Time"
)

// Output holds the mesh and velocity results of one MPAS sea-ice run
//  Note: velocities are stored per vertex; geometry per vertex and cell
type Output struct {

	// input
	Fname string // path of file

	// dimensions
	Ncells  int // number of cells
	Nverts  int // number of vertices
	Ndegree int // number of cells around each vertex
	Ntimes  int // number of output times

	// geometry
	CellsOnVertex [][]int   // [nverts][ndegree] zero-based cell ids; -1 => no cell
	Xvert         []float64 // [nverts] x-coordinates of vertices
	Yvert         []float64 // [nverts] y-coordinates of vertices
	Xcell         []float64 // [ncells] x-coordinates of cells
	Ycell         []float64 // [ncells] y-coordinates of cells

	// results
	U [][]float64 // [ntimes][nverts] uVelocity
	V [][]float64 // [ntimes][nverts] vVelocity

	// derived
	Xmin, Xmax float64 // limits of vertex x-coordinates
	Ymin, Ymax float64 // limits of vertex y-coordinates
}

// ReadOutput reads an MPAS output file in NetCDF format (classic or 64-bit offset)
func ReadOutput(fnpath string) (o *Output, err error) {

	// open file
	nc, err := netcdf.Open(fnpath)
	if err != nil {
		return nil, chk.Err("cannot open NetCDF file %q:\n%v", fnpath, err)
	}
	defer nc.Close()

	// read data
	o = &Output{Fname: fnpath}
	r := ncReader{grp: nc, dims: make(map[string]int)}
	if o.CellsOnVertex, err = r.ints2("cellsOnVertex", DimVerts, DimDegree); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.Xvert, err = r.floats1("xVertex", DimVerts); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.Yvert, err = r.floats1("yVertex", DimVerts); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.Xcell, err = r.floats1("xCell", DimCells); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.Ycell, err = r.floats1("yCell", DimCells); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.U, err = r.floats2(KeyU, DimTime, DimVerts); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}
	if o.V, err = r.floats2(KeyV, DimTime, DimVerts); err != nil {
		return nil, chk.Err("%s: %v", fnpath, err)
	}

	// dimensions
	o.Ncells = r.dims[DimCells]
	o.Nverts = r.dims[DimVerts]
	o.Ndegree = r.dims[DimDegree]
	o.Ntimes = r.dims[DimTime]
	if o.Ntimes < 1 {
		return nil, chk.Err("%s: there are no output times", fnpath)
	}

	// one-based => zero-based
	for _, cells := range o.CellsOnVertex {
		for j := range cells {
			cells[j]--
		}
	}
	o.setLimits()
	return
}

// WriteOutput writes o into a NetCDF (classic) file. cellsOnVertex is saved one-based
func WriteOutput(fnpath string, o *Output) (err error) {

	// check
	if len(o.U) != len(o.V) {
		return chk.Err("uVelocity and vVelocity must have the same number of times. %d != %d", len(o.U), len(o.V))
	}

	// writer
	cw, err := cdf.OpenWriter(fnpath)
	if err != nil {
		return chk.Err("cannot create NetCDF file %q:\n%v", fnpath, err)
	}
	defer func() {
		if e := cw.Close(); e != nil && err == nil {
			err = chk.Err("cannot close NetCDF file %q:\n%v", fnpath, e)
		}
	}()

	// connectivity
	cov := make([][]int32, len(o.CellsOnVertex))
	for i, cells := range o.CellsOnVertex {
		cov[i] = make([]int32, len(cells))
		for j, c := range cells {
			cov[i][j] = int32(c + 1)
		}
	}

	// variables
	vars := []struct {
		name  string
		vals  interface{}
		units string
		dims  []string
	}{
		{"cellsOnVertex", cov, "unitless", []string{DimVerts, DimDegree}},
		{"xVertex", o.Xvert, "m", []string{DimVerts}},
		{"yVertex", o.Yvert, "m", []string{DimVerts}},
		{"xCell", o.Xcell, "m", []string{DimCells}},
		{"yCell", o.Ycell, "m", []string{DimCells}},
		{KeyU, o.U, "m s-1", []string{DimTime, DimVerts}},
		{KeyV, o.V, "m s-1", []string{DimTime, DimVerts}},
	}
	for _, v := range vars {
		attrs, e := util.NewOrderedMap([]string{"units"}, map[string]interface{}{"units": v.units})
		if e != nil {
			return chk.Err("cannot set attributes of %q:\n%v", v.name, e)
		}
		e = cw.AddVar(v.name, api.Variable{Values: v.vals, Dimensions: v.dims, Attributes: attrs})
		if e != nil {
			return chk.Err("cannot add variable %q to %q:\n%v", v.name, fnpath, e)
		}
	}
	return
}

// Series returns the time series [ntimes][nverts] of a velocity component
func (o *Output) Series(key string) ([][]float64, error) {
	switch key {
	case KeyU:
		return o.U, nil
	case KeyV:
		return o.V, nil
	}
	return nil, chk.Err("velocity component %q is not available. use %q or %q", key, KeyU, KeyV)
}

// setLimits computes the limits of vertex coordinates
func (o *Output) setLimits() {
	o.Xmin, o.Xmax = math.Inf(1), math.Inf(-1)
	o.Ymin, o.Ymax = math.Inf(1), math.Inf(-1)
	for i := range o.Xvert {
		o.Xmin = math.Min(o.Xmin, o.Xvert[i])
		o.Xmax = math.Max(o.Xmax, o.Xvert[i])
		o.Ymin = math.Min(o.Ymin, o.Yvert[i])
		o.Ymax = math.Max(o.Ymax, o.Yvert[i])
	}
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// ncReader reads variables and records the sizes of their dimensions
type ncReader struct {
	grp  api.Group      // NetCDF file (root group)
	dims map[string]int // dimension name => size
}

// get returns variable after checking its dimension names
func (o *ncReader) get(name string, dims ...string) (*api.Variable, error) {
	v, err := o.grp.GetVariable(name)
	if err != nil {
		return nil, chk.Err("cannot get variable %q: %v", name, err)
	}
	if len(v.Dimensions) != len(dims) {
		return nil, chk.Err("variable %q must have dimensions %v. found %v", name, dims, v.Dimensions)
	}
	for i, d := range dims {
		if v.Dimensions[i] != d {
			return nil, chk.Err("variable %q must have dimensions %v. found %v", name, dims, v.Dimensions)
		}
	}
	return v, nil
}

// setDim records size of dimension and checks consistency with previous variables
func (o *ncReader) setDim(varname, dim string, size int) error {
	if n, ok := o.dims[dim]; ok && n != size {
		return chk.Err("variable %q: size of dimension %q is %d, but %d was found before", varname, dim, size, n)
	}
	o.dims[dim] = size
	return nil
}

func (o *ncReader) floats1(name string, dim string) (res []float64, err error) {
	v, err := o.get(name, dim)
	if err != nil {
		return
	}
	switch vals := v.Values.(type) {
	case []float64:
		res = vals
	case []float32:
		res = make([]float64, len(vals))
		for i, x := range vals {
			res[i] = float64(x)
		}
	default:
		return nil, chk.Err("variable %q must be real. type = %T", name, v.Values)
	}
	err = o.setDim(name, dim, len(res))
	return
}

func (o *ncReader) floats2(name string, dim0, dim1 string) (res [][]float64, err error) {
	v, err := o.get(name, dim0, dim1)
	if err != nil {
		return
	}
	switch vals := v.Values.(type) {
	case [][]float64:
		res = vals
	case [][]float32:
		res = make([][]float64, len(vals))
		for i, row := range vals {
			res[i] = make([]float64, len(row))
			for j, x := range row {
				res[i][j] = float64(x)
			}
		}
	default:
		return nil, chk.Err("variable %q must be a real matrix. type = %T", name, v.Values)
	}
	err = o.setDims2(name, dim0, dim1, len(res), rowLens(res))
	return
}

func (o *ncReader) ints2(name string, dim0, dim1 string) (res [][]int, err error) {
	v, err := o.get(name, dim0, dim1)
	if err != nil {
		return
	}
	switch vals := v.Values.(type) {
	case [][]int32:
		res = make([][]int, len(vals))
		for i, row := range vals {
			res[i] = make([]int, len(row))
			for j, x := range row {
				res[i][j] = int(x)
			}
		}
	case [][]int16:
		res = make([][]int, len(vals))
		for i, row := range vals {
			res[i] = make([]int, len(row))
			for j, x := range row {
				res[i][j] = int(x)
			}
		}
	case [][]int64:
		res = make([][]int, len(vals))
		for i, row := range vals {
			res[i] = make([]int, len(row))
			for j, x := range row {
				res[i][j] = int(x)
			}
		}
	default:
		return nil, chk.Err("variable %q must be an integer matrix. type = %T", name, v.Values)
	}
	ncols := make([]int, len(res))
	for i, row := range res {
		ncols[i] = len(row)
	}
	err = o.setDims2(name, dim0, dim1, len(res), ncols)
	return
}

// setDims2 records the sizes of the dimensions of a matrix with nrows rows of lengths ncols
func (o *ncReader) setDims2(name, dim0, dim1 string, nrows int, ncols []int) error {
	if err := o.setDim(name, dim0, nrows); err != nil {
		return err
	}
	if nrows == 0 {
		return nil
	}
	for _, n := range ncols {
		if n != ncols[0] {
			return chk.Err("variable %q has rows with different lengths", name)
		}
	}
	return o.setDim(name, dim1, ncols[0])
}

func rowLens(m [][]float64) []int {
	res := make([]int, len(m))
	for i, row := range m {
		res[i] = len(row)
	}
	return res
}
