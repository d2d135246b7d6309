// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flc

import "math"

// The formulas below are regression fits from forming limit literature.
// Strains are engineering strains; a80 values are percentages and t is
// the sheet thickness in millimetres.

// TePoint computes the uniaxial tension necking point. eps3 is the
// through-thickness strain; it does not lie on the curve but completes
// the strain state
func TePoint(a80, r, t float64) (pnt Point, eps3 float64) {
	svl := 0.0626*math.Pow(a80, 0.567) + (t-1.0)*(0.12-0.0024*a80)
	ratio := 0.797 * math.Pow(r, 0.701)
	den := math.Sqrt(1.0 + ratio*ratio)
	eps3 = -svl / den
	pnt.Eps2 = -svl * ratio / den
	pnt.Eps1 = (1.0 + ratio) * svl / den
	return
}

// PsPoint computes the plane strain point. The minor strain is zero by
// definition
func PsPoint(a80, t float64) (pnt Point) {
	pnt.Eps1 = 0.0084*a80 + 0.0017*a80*(t-1.0)
	return
}

// BiPoint computes the biaxial stretch point from the minimum elongation
// over test directions. Both strain components are equal by definition
func BiPoint(a80min, t float64) (pnt Point) {
	if t <= transThickness(a80min) {
		pnt.Eps1 = 0.00215*a80min + 0.25 + 0.00285*a80min*t
	} else {
		pnt.Eps1 = 0.005*a80min + 0.25
	}
	pnt.Eps2 = pnt.Eps1
	return
}

// ImPoint computes the intermediate biaxial stretch point
func ImPoint(a80, t float64) (pnt Point) {
	pnt.Eps1 = 0.0062*a80 + 0.18
	if t <= transThickness(a80) {
		pnt.Eps1 += 0.0027 * a80 * (t - 1.0)
	}
	pnt.Eps2 = 0.75 * pnt.Eps1
	return
}

// transThickness computes the thickness separating the thin and thick
// sheet regimes of the biaxial formulas. The thin branch applies for
// t <= transThickness
func transThickness(a80 float64) float64 {
	return 1.5 - 0.00215*a80/(0.6+0.00285*a80)
}
