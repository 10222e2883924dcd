// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package traces composites noisy multi-channel time series from a spike
train and a waveform template tensor.

Templates are stored at Upsample-times the output resolution; stamping a
spike reads back a strided slice starting at the phase offset given by
the fractional part of the spike time, which places the waveform with
sub-sample accuracy without any interpolation filtering.
*/
package traces

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
	"github.com/neuraldata/spikesynth/seeds"
)

// Params are the time-series compositing parameters.
type Params struct {
	NoiseLevel float32 `def:"10" min:"0" desc:"stdev of the independent Gaussian background noise on every channel and sample"`
	Upsample   int     `def:"13" min:"1" desc:"internal resolution of the template tensor relative to the output sampling rate -- must match the tensor"`
}

func (cp *Params) Defaults() {
	cp.NoiseLevel = 10
	cp.Upsample = 13
}

// Composite returns the (channel x sample) recording matrix for one
// segment: Gaussian background noise plus one template copy per spike.
// Spike times are real-valued sample positions whose fractional part
// selects the sub-sample phase; labels are unit ids matching units.
// Spikes whose stamping window would cross the recording bounds are
// silently dropped.
func (cp *Params) Composite(times []float64, labels []int, units []int, ww *etensor.Float32, rate, duration float32, seed int64) *etensor.Float32 {
	n := int(rate * duration)
	m := ww.Dim(0)
	tu := ww.Dim(1)
	k := ww.Dim(2)
	tt := tu / cp.Upsample
	tmid := int(math32.Ceil(float32(tt+1)/2 - 1))

	x := etensor.NewFloat32([]int{m, n}, nil, []string{"Chan", "Time"})
	rng := seeds.Stream(seed)
	for i := range x.Values {
		x.Values[i] = float32(rng.NormFloat64()) * cp.NoiseLevel
	}

	for _, unit := range units {
		for si, lb := range labels {
			if lb != unit {
				continue
			}
			t0 := times[si]
			ft := math.Floor(t0)
			off := int((t0 - ft) * float64(cp.Upsample))
			start := int(ft) - tmid
			if start < 0 || start+tt > n {
				continue // window crosses the recording bounds
			}
			for ch := 0; ch < m; ch++ {
				wbase := ch * tu * k
				xbase := ch*n + start
				for j := 0; j < tt; j++ {
					x.Values[xbase+j] += ww.Values[wbase+(off+j*cp.Upsample)*k+unit-1]
				}
			}
		}
	}
	return x
}
