// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/rgknox/velcmp/inp"
)

// Profile holds one velocity component along a line for all output times
type Profile struct {
	Method string      // operator method; e.g. "wachspress"
	Key    string      // velocity component; e.g. "uVelocity"
	Vids   []int       // [npts] vertices on line sorted by x
	X      []float64   // [npts] x-coordinates
	Vel    [][]float64 // [ntimes][npts] velocities
	Norms  []float64   // [ntimes] Euclidean norm of velocities along line
}

// Extract extracts the velocity component key along the line given by loc for all output times
func Extract(method, key string, m *inp.Output, loc Locator) (o *Profile, err error) {

	// results
	series, err := m.Series(key)
	if err != nil {
		return
	}
	if len(series) < 1 {
		return nil, chk.Err("%s: there are no output times in %q", method, m.Fname)
	}

	// vertices on line
	vids, err := loc.Locate(m)
	if err != nil {
		return nil, chk.Err("%s: %v", method, err)
	}

	// profile
	o = &Profile{Method: method, Key: key, Vids: vids}
	o.X = make([]float64, len(vids))
	for i, vid := range vids {
		o.X[i] = m.Xvert[vid]
	}
	o.Vel = make([][]float64, len(series))
	o.Norms = make([]float64, len(series))
	for tidx, vals := range series {
		if len(vals) != len(m.Xvert) {
			return nil, chk.Err("%s: %s at time index %d has %d values but there are %d vertices", method, key, tidx, len(vals), len(m.Xvert))
		}
		o.Vel[tidx] = make([]float64, len(vids))
		sum := 0.0
		for i, vid := range vids {
			o.Vel[tidx][i] = vals[vid]
			sum += vals[vid] * vals[vid]
		}
		o.Norms[tidx] = math.Sqrt(sum)
	}
	return
}

// Last returns the velocities at the final output time
func (o *Profile) Last() []float64 {
	return o.Vel[len(o.Vel)-1]
}

// Xrange returns the limits of x-coordinates
func (o *Profile) Xrange() (xmin, xmax float64) {
	return o.X[0], o.X[len(o.X)-1]
}
