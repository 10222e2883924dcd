// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/goki/mat32"
	"github.com/stretchr/testify/assert"
)

func TestLinear(t *testing.T) {
	gm := Linear(4)
	assert.Equal(t, 4, gm.NumChans())
	assert.Equal(t, mat32.Vec2{X: 1}, gm.Chan(0))
	assert.Equal(t, mat32.Vec2{X: 4}, gm.Chan(3))
}

func TestPlaceUnitsEndpoints(t *testing.T) {
	gm := Linear(4)
	locs := PlaceUnits(gm, 10)
	assert.Len(t, locs, 10)
	assert.InDelta(t, 1, float64(locs[0].X), 1e-6, "first unit sits on the first channel")
	assert.InDelta(t, 4, float64(locs[9].X), 1e-6, "last unit sits on the last channel")
	for i := 1; i < len(locs); i++ {
		assert.GreaterOrEqual(t, locs[i].X, locs[i-1].X, "units ordered along the probe")
	}
}

func TestPlaceUnitsInterp(t *testing.T) {
	gm := Linear(3)
	locs := PlaceUnits(gm, 5)
	// indices 1, 1.5, 2, 2.5, 3 -> x positions 1, 1.5, 2, 2.5, 3
	want := []float32{1, 1.5, 2, 2.5, 3}
	for i, w := range want {
		assert.InDelta(t, float64(w), float64(locs[i].X), 1e-6)
		assert.InDelta(t, 0, float64(locs[i].Y), 1e-6)
	}
}

func TestPlaceUnitsDegenerate(t *testing.T) {
	gm := Linear(4)
	locs := PlaceUnits(gm, 1)
	assert.Equal(t, gm.Chan(0), locs[0])

	gm1 := Linear(1)
	locs = PlaceUnits(gm1, 3)
	for _, lc := range locs {
		assert.Equal(t, gm1.Chan(0), lc)
	}
}
