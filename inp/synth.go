// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SynthData holds the parameters of a synthetic hex-like mesh with results
//
//   row ny-1   o   o   o   o      rows at odd distance from jmid are shifted by dx/2.
//   ...          o   o   o   o    rows at even distance from jmid (the line included)
//   row jmid   o---o---o---o      are stored with decreasing x.
//   ...                           y(jmid) = Yline
//   row 0      o   o   o   o
//
type SynthData struct {
	Nx     int     // number of vertices per row
	Ny     int     // number of rows; row ny/2 is located at Yline
	Lx     float64 // length of rows
	Yline  float64 // y-coordinate of row ny/2
	Dy     float64 // distance between rows
	Ntimes int     // number of output times
}

// SetDefault sets default values
func (o *SynthData) SetDefault() {
	o.Nx = 41
	o.Ny = 5
	o.Lx = 1280000
	o.Yline = 508068.236886871
	o.Dy = 20000
	o.Ntimes = 3
}

// SynthOutput generates mesh and results. The velocity at the final time is ufcn(x)
// and earlier times are scaled by (tidx+1)/ntimes; the v component is zero
func SynthOutput(d *SynthData, ufcn func(x float64) float64) (o *Output, err error) {

	// check
	if d.Nx < 2 || d.Ny < 1 || d.Ntimes < 1 {
		return nil, chk.Err("synthetic mesh needs nx ≥ 2, ny ≥ 1 and ntimes ≥ 1. nx=%d ny=%d ntimes=%d", d.Nx, d.Ny, d.Ntimes)
	}
	if d.Lx <= 0 || d.Dy <= 0 {
		return nil, chk.Err("synthetic mesh needs positive lengths. lx=%g dy=%g", d.Lx, d.Dy)
	}

	// vertices
	o = new(Output)
	dx := d.Lx / float64(d.Nx-1)
	jmid := d.Ny / 2
	for j := 0; j < d.Ny; j++ {
		y := d.Yline + float64(j-jmid)*d.Dy
		for k := 0; k < d.Nx; k++ {
			i := synthCol(j, jmid, k, d.Nx)
			shift := 0.0
			if (j-jmid)%2 != 0 {
				shift = dx / 2
			}
			x := math.Min(float64(i)*dx+shift, d.Lx)
			o.Xvert = append(o.Xvert, x)
			o.Yvert = append(o.Yvert, y)
		}
	}
	o.Nverts = len(o.Xvert)

	// cells between consecutive rows
	for j := 0; j < d.Ny-1; j++ {
		y := d.Yline + (float64(j-jmid)+0.5)*d.Dy
		for i := 0; i < d.Nx-1; i++ {
			o.Xcell = append(o.Xcell, (float64(i)+0.5)*dx)
			o.Ycell = append(o.Ycell, y)
		}
	}
	o.Ncells = len(o.Xcell)

	// connectivity: cells below and above each vertex and its left neighbour; -1 => none
	o.Ndegree = 3
	ncx := d.Nx - 1
	o.CellsOnVertex = make([][]int, o.Nverts)
	for j := 0; j < d.Ny; j++ {
		for k := 0; k < d.Nx; k++ {
			i := synthCol(j, jmid, k, d.Nx)
			cid := func(row, col int) int {
				if row < 0 || row >= d.Ny-1 || col < 0 || col >= ncx {
					return -1
				}
				return row*ncx + col
			}
			o.CellsOnVertex[j*d.Nx+k] = []int{cid(j-1, i), cid(j, i), cid(j, i-1)}
		}
	}

	// results
	o.Ntimes = d.Ntimes
	o.U = make([][]float64, d.Ntimes)
	o.V = make([][]float64, d.Ntimes)
	for t := 0; t < d.Ntimes; t++ {
		scale := float64(t+1) / float64(d.Ntimes)
		o.U[t] = make([]float64, o.Nverts)
		o.V[t] = make([]float64, o.Nverts)
		for i, x := range o.Xvert {
			o.U[t][i] = scale * ufcn(x)
		}
	}
	o.setLimits()
	return
}

// synthCol returns the column of the k-th vertex stored in row j
func synthCol(j, jmid, k, nx int) int {
	if (j-jmid)%2 == 0 {
		return nx - 1 - k
	}
	return k
}
