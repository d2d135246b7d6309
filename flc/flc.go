// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package flc implements empirical prediction of forming limit curves
// for sheet metal, from total elongation, anisotropy coefficients and
// sheet thickness measured in tensile tests
package flc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Point holds one characteristic point of the forming limit curve in
// engineering strain space
type Point struct {
	Eps2 float64 // minor strain ε2
	Eps1 float64 // major strain ε1
}

// Labels lists the characteristic point names in curve order, left to right
var Labels = []string{"TE", "PS", "IM", "BI"}

// Model predicts the forming limit curve of a sheet metal. All derived
// values are computed once by Init and never change afterwards; a new
// parameter set requires a new Model.
type Model struct {

	// input
	A80    float64 // total elongation from tensile test [%]
	R0     float64 // anisotropy coefficient at 0° to rolling direction
	R45    float64 // anisotropy coefficient at 45°
	R90    float64 // anisotropy coefficient at 90°
	T      float64 // sheet thickness [mm]
	A80min float64 // minimum elongation over test directions [%]

	// derived
	R float64 // normal anisotropy coefficient

	// characteristic points, in curve order
	TE Point // uniaxial tension necking point
	PS Point // plane strain point
	IM Point // intermediate biaxial stretch point
	BI Point // biaxial stretch point
}

// Init initialises the model and computes all characteristic points.
// A80min is optional; if absent it defaults to A80. A zero A80min given
// explicitly is kept as-is.
func (o *Model) Init(prms dbf.Params) (err error) {

	// parameters
	hasA80min := false
	for _, p := range prms {
		switch p.N {
		case "A80":
			o.A80 = p.V
		case "r0":
			o.R0 = p.V
		case "r45":
			o.R45 = p.V
		case "r90":
			o.R90 = p.V
		case "t":
			o.T = p.V
		case "A80min":
			o.A80min = p.V
			hasA80min = true
		default:
			return chk.Err("flc: parameter named %q is incorrect", p.N)
		}
	}
	if !hasA80min {
		o.A80min = o.A80
	}

	// check input
	err = checkPositive("A80", o.A80)
	if err != nil {
		return
	}
	err = checkPositive("r0", o.R0)
	if err != nil {
		return
	}
	err = checkPositive("r45", o.R45)
	if err != nil {
		return
	}
	err = checkPositive("r90", o.R90)
	if err != nil {
		return
	}
	err = checkPositive("t", o.T)
	if err != nil {
		return
	}
	if o.A80min < 0 || math.IsNaN(o.A80min) || math.IsInf(o.A80min, 0) {
		return chk.Err("flc: parameter A80min=%v is invalid; must be non-negative and finite", o.A80min)
	}

	// normal anisotropy
	o.R = (o.R0 + 2.0*o.R45 + o.R90) / 4.0

	// characteristic points
	o.TE, _ = TePoint(o.A80, o.R, o.T)
	o.PS = PsPoint(o.A80, o.T)
	o.IM = ImPoint(o.A80, o.T)
	o.BI = BiPoint(o.A80min, o.T)
	return
}

// Points returns the minor and major strain coordinates of the four
// characteristic points, ordered as in Labels
func (o *Model) Points() (eps2, eps1 []float64) {
	pts := []Point{o.TE, o.PS, o.IM, o.BI}
	eps2 = make([]float64, len(pts))
	eps1 = make([]float64, len(pts))
	for i, p := range pts {
		eps2[i] = p.Eps2
		eps1[i] = p.Eps1
	}
	return
}

// checkPositive returns an error unless v is positive and finite
func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return chk.Err("flc: parameter %s=%v is invalid; must be positive and finite", name, v)
	}
	return nil
}
