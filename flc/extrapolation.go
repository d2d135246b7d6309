// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flc

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// Segment is a sampled straight line extending the forming limit curve
// beyond one of its end points
type Segment struct {
	X []float64 // minor strain samples
	Y []float64 // major strain samples
}

// Extrapolate extends the curve defined by the ordered point coordinates
// beyond its ends. The left segment continues the line through the first
// two points, from the first abscissa rounded down to the nearest 0.1
// minus 0.1 up to the first point. The right segment continues the line
// through the last two points, from the last point up to the last
// abscissa rounded up to the nearest 0.1 plus 0.1. Each segment carries
// npts samples
func Extrapolate(eps2, eps1 []float64, npts int) (left, right Segment) {

	// left: anchored at the first point
	slope, intercept := lineThrough(eps2[0], eps1[0], eps2[1], eps1[1])
	left.X = utl.LinSpace(roundDownTenth(eps2[0])-0.1, eps2[0], npts)
	left.Y = make([]float64, npts)
	for i, x := range left.X {
		left.Y[i] = slope*x + intercept
	}

	// right: anchored at the last point
	n := len(eps2)
	slope, intercept = lineThrough(eps2[n-1], eps1[n-1], eps2[n-2], eps1[n-2])
	right.X = utl.LinSpace(eps2[n-1], roundUpTenth(eps2[n-1])+0.1, npts)
	right.Y = make([]float64, npts)
	for i, x := range right.X {
		right.Y[i] = slope*x + intercept
	}
	return
}

// lineThrough computes slope and intercept of the straight line passing
// through (x0,y0) and (x1,y1). Coincident abscissae give the horizontal
// line through (x0,y0) instead of failing
func lineThrough(x0, y0, x1, y1 float64) (slope, intercept float64) {
	if x1 != x0 {
		slope = (y1 - y0) / (x1 - x0)
	}
	intercept = y0 - slope*x0
	return
}

// roundDownTenth rounds x down to the nearest 0.1
func roundDownTenth(x float64) float64 {
	return math.Floor(x*10.0) / 10.0
}

// roundUpTenth rounds x up to the nearest 0.1
func roundUpTenth(x float64) float64 {
	return math.Ceil(x*10.0) / 10.0
}
