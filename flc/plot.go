// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flc

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// number of samples per extrapolated segment
const extnpts = 50

// Plot draws the forming limit curve with the four characteristic points.
//  extLeft  -- draw the dashed extension beyond the TE point
//  extRight -- draw the dashed extension beyond the BI point
//  args     -- arguments for the curve; nil means default style
// Call plt.Reset before and plt.Save or plt.Show afterwards
func (o *Model) Plot(extLeft, extRight bool, args *plt.A) {

	// curve and markers
	if args == nil {
		args = &plt.A{C: "black", NoClip: true, L: "Forming Limit Curve"}
	}
	eps2, eps1 := o.Points()
	plt.Plot(eps2, eps1, args)
	for i, label := range Labels {
		plt.Plot([]float64{eps2[i]}, []float64{eps1[i]}, &plt.A{C: "black", M: "o", NoClip: true})
		plt.Text(eps2[i], eps1[i]+0.01, io.Sf("%s (%.3f, %.3f)", label, eps2[i], eps1[i]), &plt.A{Ha: "center", Fsz: 8})
	}

	// extrapolated extensions
	left, right := Extrapolate(eps2, eps1, extnpts)
	if extLeft {
		plt.Plot(left.X, left.Y, &plt.A{C: "black", Ls: "--", NoClip: true})
	}
	if extRight {
		plt.Plot(right.X, right.Y, &plt.A{C: "black", Ls: "--", NoClip: true})
	}

	// axes
	xmin, xmax := eps2[0], eps2[len(eps2)-1]
	if extLeft {
		xmin = left.X[0]
	}
	if extRight {
		xmax = right.X[len(right.X)-1]
	}
	ymax := eps1[0]
	for _, y := range eps1 {
		ymax = utl.Max(ymax, y)
	}
	plt.Cross(0, 0, &plt.A{C: "black", Lw: 0.5})
	plt.AxisLims([]float64{xmin - 0.05, xmax + 0.05, 0, ymax + 0.1})
	plt.Gll("$\\varepsilon_2$", "$\\varepsilon_1$", nil)
}
