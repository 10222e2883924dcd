// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package geom holds the probe channel geometry and places synthetic
neurons along it by linear interpolation between adjacent channels.
*/
package geom

import "github.com/goki/mat32"

// Geometry is an ordered, immutable sequence of channel positions in
// 2-D space.
type Geometry struct {
	Pos []mat32.Vec2 `desc:"channel positions, in channel order -- fixed for the run"`
}

// Linear returns the default probe geometry for m channels: a line of
// unit-spaced contacts at x = 1..m, y = 0.
func Linear(m int) *Geometry {
	gm := &Geometry{Pos: make([]mat32.Vec2, m)}
	for i := range gm.Pos {
		gm.Pos[i] = mat32.Vec2{X: float32(i + 1)}
	}
	return gm
}

// NumChans returns the number of channels.
func (gm *Geometry) NumChans() int {
	return len(gm.Pos)
}

// Chan returns the position of channel i.
func (gm *Geometry) Chan(i int) mat32.Vec2 {
	return gm.Pos[i]
}

// PlaceUnits returns k neuron locations interpolated along the channel
// sequence.  Unit j (1-indexed) gets the real-valued channel index
// (j-1)/(k-1)*(m-1)+1 and is linearly interpolated between the floor and
// ceil channels using the fractional part as weight.  A single unit or a
// single channel degenerates to the first channel position.
func PlaceUnits(gm *Geometry, k int) []mat32.Vec2 {
	m := gm.NumChans()
	locs := make([]mat32.Vec2, k)
	for j := range locs {
		if k <= 1 || m <= 1 {
			locs[j] = gm.Chan(0)
			continue
		}
		ind := float32(j)/float32(k-1)*float32(m-1) + 1
		i0 := int(ind)
		p := ind - float32(i0)
		if i0 == m {
			i0 = m - 1
			p = 1
		}
		a := gm.Chan(i0 - 1)
		b := gm.Chan(i0)
		locs[j] = a.MulScalar(1 - p).Add(b.MulScalar(p))
	}
	return locs
}
