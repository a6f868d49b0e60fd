// Copyright 2026 The Velcmp Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// SeaIce1D implements the steady 1D sea-ice velocity driven by a uniform wind over a
// domain where the ice concentration grows linearly from x=0 to x=Lx
//
//    a      = x / Lx                           concentration proxy
//    v      = 2・a                              ice volume proxy
//    P      = P*・v・exp(-C*・(1 - a))            ice strength
//    τair   = ρair・uair²・cair・a
//    τocn   = ρw・cocn・a・u
//
//    τair - ½(α + 1)・dP/dx = τocn   =>   u = max((τair - ½(α + 1)・dP/dx) / (ρw・cocn・a), 0)
//
//    with α = sqrt(1 + 1/e²)
//
type SeaIce1D struct {

	// input
	Uair   float64 // wind speed
	RhoAir float64 // air density
	RhoW   float64 // water density
	Cocn   float64 // ocean drag coefficient
	Cair   float64 // air drag coefficient
	Pstar  float64 // ice strength parameter P*
	Cstar  float64 // ice strength parameter C*
	E      float64 // ellipse aspect ratio
	Lx     float64 // domain length

	// derived
	Alpha float64 // sqrt(1 + 1/e²)
}

// SeaIceTerms holds the intermediate quantities of the analytic solution at x
type SeaIceTerms struct {
	X    float64 // coordinate
	A    float64 // normalised position (concentration proxy)
	Expo float64 // exponent argument: -C*・(1 - a)
	P    float64 // ice strength
	DPdx float64 // derivative of ice strength
	U    float64 // velocity
}

// Init initialises this structure
func (o *SeaIce1D) Init(prms dbf.Params) (err error) {

	// default values
	o.Uair = 1.0     // [m/s]
	o.RhoAir = 1.3   // [kg/m³]
	o.RhoW = 1026.0  // [kg/m³]
	o.Cocn = 0.00536 // [-]
	o.Cair = 0.0012  // [-]
	o.Pstar = 2.75e4 // [N/m²]
	o.Cstar = 20.0   // [-]
	o.E = 2          // [-]
	o.Lx = 1280000   // [m]

	// parameters
	for _, p := range prms {
		switch p.N {
		case "uair":
			o.Uair = p.V
		case "rhoair":
			o.RhoAir = p.V
		case "rhow":
			o.RhoW = p.V
		case "cocn":
			o.Cocn = p.V
		case "cair":
			o.Cair = p.V
		case "Pstar":
			o.Pstar = p.V
		case "Cstar":
			o.Cstar = p.V
		case "e":
			o.E = p.V
		case "Lx":
			o.Lx = p.V
		default:
			return chk.Err("parameter %q is not available in 1D sea-ice solution", p.N)
		}
	}

	// check
	if o.Lx <= 0 {
		return chk.Err("domain length must be positive. Lx = %g", o.Lx)
	}
	if o.E == 0 {
		return chk.Err("ellipse aspect ratio must not be zero")
	}

	// derived
	o.Alpha = math.Sqrt(1.0 + math.Pow(1.0/o.E, 2))
	return
}

// Calc computes the velocity and intermediate quantities at x
//  Note: at x=0 the ocean stress coefficient is zero and u is zero
func (o SeaIce1D) Calc(x float64) (res SeaIceTerms) {
	a := x / o.Lx
	v := 2.0 * a
	dadx := 1.0 / o.Lx
	dvdx := 2.0 * dadx
	oceanStressCoeff := o.RhoW * o.Cocn * a
	airStress := o.RhoAir * o.Uair * o.Uair * a * o.Cair
	expo := -o.Cstar * (1.0 - a)
	res.X = x
	res.A = a
	res.Expo = expo
	res.P = o.Pstar * v * math.Exp(expo)
	res.DPdx = o.Pstar * math.Exp(expo) * (dvdx + v*o.Cstar*dadx)
	if oceanStressCoeff == 0 {
		return
	}
	res.U = (airStress - 0.5*(o.Alpha+1.0)*res.DPdx) / oceanStressCoeff
	if !(res.U > 0) {
		res.U = 0
	}
	return
}

// Curve computes velocities and intermediate quantities for each X
func (o SeaIce1D) Curve(X []float64) (U []float64, T []SeaIceTerms) {
	U = make([]float64, len(X))
	T = make([]SeaIceTerms, len(X))
	for i, x := range X {
		T[i] = o.Calc(x)
		U[i] = T[i].U
	}
	return
}

// PrintTerms prints x, a, -C*・(1-a), P and dP/dx; one line per point
func PrintTerms(T []SeaIceTerms) {
	for _, t := range T {
		io.Pf("%v %v %v %v %v\n", t.X, t.A, t.Expo, t.P, t.DPdx)
	}
}
