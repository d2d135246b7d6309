// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"

	"github.com/AlexanderASidorov/FormingLimitDiagram/flc"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input parameters
	a80 := io.ArgToFloat(0, 40.8)
	r0 := io.ArgToFloat(1, 1.769)
	r45 := io.ArgToFloat(2, 1.661)
	r90 := io.ArgToFloat(3, 2.225)
	t := io.ArgToFloat(4, 1.2)
	extrapolate := io.ArgToBool(5, false)
	savePlot := io.ArgToBool(6, true)

	// message
	io.PfWhite("\nFLD -- Forming Limit Diagram prediction\n\n")
	io.Pf("%v\n", io.ArgsTable("input data",
		"total elongation [%]", "A80", a80,
		"anisotropy coefficient at 0°", "r0", r0,
		"anisotropy coefficient at 45°", "r45", r45,
		"anisotropy coefficient at 90°", "r90", r90,
		"sheet thickness [mm]", "t", t,
		"extrapolate curve ends", "extrapolate", extrapolate,
		"save diagram to /tmp/fld", "savePlot", savePlot,
	))

	// model
	var mdl flc.Model
	err := mdl.Init(dbf.Params{
		&dbf.P{N: "A80", V: a80},
		&dbf.P{N: "r0", V: r0},
		&dbf.P{N: "r45", V: r45},
		&dbf.P{N: "r90", V: r90},
		&dbf.P{N: "t", V: t},
	})
	if err != nil {
		chk.Panic("cannot initialise model:\n%v", err)
	}

	// results
	io.Pf("normal anisotropy: r = %.4f\n\n", mdl.R)
	io.Pf("predicted FLC points:\n")
	eps2, eps1 := mdl.Points()
	for i, label := range flc.Labels {
		io.Pf("  %s: eps2 = %8.4f  eps1 = %8.4f\n", label, eps2[i], eps1[i])
	}

	// diagram
	if savePlot {
		plt.Reset(true, nil)
		mdl.Plot(extrapolate, extrapolate, nil)
		plt.Save("/tmp/fld", io.Sf("fld_A80_%g_t_%g", a80, t))
	}
}
