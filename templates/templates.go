// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package templates builds the (channel x upsampled-time x unit) waveform
template tensor.

Each unit gets one randomized waveform (jittered segment durations and
amplitudes, random overall amplitude factor) drawn once from its own
random stream and reused across all channels.  Per channel, the waveform
is circularly shifted in proportion to the unit-channel distance (a crude
propagation delay) and attenuated by a distance-dependent spread factor.
The finished tensor is rescaled globally so the mean of per-unit peak
amplitudes matches the configured (signed) average peak amplitude.
*/
package templates

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
	"github.com/neuraldata/spikesynth/geom"
	"github.com/neuraldata/spikesynth/seeds"
	"github.com/neuraldata/spikesynth/wavegen"
)

// Params are the template synthesis parameters.
type Params struct {
	BaseLen       int            `def:"500" desc:"template duration T in output (non-upsampled) samples"`
	Upsample      int            `def:"13" min:"1" desc:"internal waveform resolution relative to the output sampling rate, for sub-sample placement"`
	PeakAmp       float32        `def:"-100" desc:"target mean of per-unit peak absolute amplitudes after global normalization -- sign flips the whole tensor"`
	TimeShiftFact float32        `def:"3" desc:"circular shift per unit of unit-channel distance, in (non-upsampled) samples -- models propagation delay across the probe"`
	SpreadBase    float32        `def:"0.2" min:"0" desc:"additive constant in the spatial attenuation divisor -- keeps the nearest channel finite"`
	SpreadCoef    float32        `def:"1" desc:"distance coefficient in the spatial attenuation divisor"`
	DurStd        [4]float32     `def:"{10,4,6,20}" desc:"per-unit Gaussian jitter stdev of the four segment durations, in (non-upsampled) samples, floored at 1 sample"`
	AmpStd        [4]float32     `def:"{0.2,3,0.5,0}" desc:"per-unit Gaussian jitter stdev of the four segment amplitudes"`
	AmpFactMin    float32        `def:"0.5" desc:"lower bound of the uniform per-unit overall amplitude factor"`
	AmpFactMax    float32        `def:"1" desc:"upper bound of the uniform per-unit overall amplitude factor"`
	Wave          wavegen.Params `view:"inline" desc:"base waveform segment durations and amplitudes"`
}

func (tp *Params) Defaults() {
	tp.BaseLen = 500
	tp.Upsample = 13
	tp.PeakAmp = -100
	tp.TimeShiftFact = 3
	tp.SpreadBase = 0.2
	tp.SpreadCoef = 1
	tp.DurStd = [4]float32{10, 4, 6, 20}
	tp.AmpStd = [4]float32{0.2, 3, 0.5, 0}
	tp.AmpFactMin = 0.5
	tp.AmpFactMax = 1
	tp.Wave.Defaults()
}

// Synthesize builds the template tensor for k units on the given
// geometry, shaped [chans, BaseLen*Upsample, units].  Unit randomization
// comes from per-unit streams derived from seed.  The result is
// normalized to PeakAmp (see Normalize).
func (tp *Params) Synthesize(gm *geom.Geometry, k int, seed int64) *etensor.Float32 {
	m := gm.NumChans()
	tu := tp.BaseLen * tp.Upsample
	ww := etensor.NewFloat32([]int{m, tu, k}, nil, []string{"Chan", "Time", "Unit"})
	if m == 0 || k == 0 {
		return ww
	}

	locs := geom.PlaceUnits(gm, k)
	rngs := seeds.Derive(seed, k)

	for unit := 0; unit < k; unit++ {
		rng := rngs[unit]

		// jitter is drawn once per unit and reused on every channel
		var durs, amps [4]float32
		for j := 0; j < 4; j++ {
			d := tp.Wave.Durations[j] + float32(rng.NormFloat64())*tp.DurStd[j]
			if d < 1 {
				d = 1
			}
			durs[j] = d * float32(tp.Upsample)
		}
		for j := 0; j < 4; j++ {
			amps[j] = tp.Wave.Amps[j] + float32(rng.NormFloat64())*tp.AmpStd[j]
		}
		ampFact := tp.AmpFactMin + float32(rng.Float64())*(tp.AmpFactMax-tp.AmpFactMin)

		wave := wavegen.Synthesize(tu, durs, amps)

		for ch := 0; ch < m; ch++ {
			dist := locs[unit].Sub(gm.Chan(ch)).Length()
			shift := int(tp.TimeShiftFact * dist * float32(tp.Upsample))
			gain := ampFact / (tp.SpreadBase + dist*tp.SpreadCoef)
			stamp(ww, ch, unit, wave, shift, gain)
		}
	}

	tp.Normalize(ww)
	return ww
}

// stamp writes wave, circularly shifted right by shift samples and
// scaled by gain, into the (ch, :, unit) lane of ww.
func stamp(ww *etensor.Float32, ch, unit int, wave []float32, shift int, gain float32) {
	tu := ww.Dim(1)
	k := ww.Dim(2)
	shift = ((shift % tu) + tu) % tu
	base := ch * tu * k
	for t := 0; t < tu; t++ {
		src := t - shift
		if src < 0 {
			src += tu
		}
		ww.Values[base+t*k+unit] = wave[src] * gain
	}
}

// Normalize rescales the whole tensor so the mean over units of each
// unit's peak absolute amplitude (max over channels and time) equals
// PeakAmp.  The scale is shared by all units, preserving their relative
// amplitudes; a negative PeakAmp flips the tensor sign.
func (tp *Params) Normalize(ww *etensor.Float32) {
	m, tu, k := ww.Dim(0), ww.Dim(1), ww.Dim(2)
	if m == 0 || tu == 0 || k == 0 {
		return
	}
	peaks := make([]float32, k)
	for i, v := range ww.Values {
		unit := i % k
		if av := math32.Abs(v); av > peaks[unit] {
			peaks[unit] = av
		}
	}
	mean := float32(0)
	for _, p := range peaks {
		mean += p
	}
	mean /= float32(k)
	if mean == 0 {
		return
	}
	scl := tp.PeakAmp / mean
	for i := range ww.Values {
		ww.Values[i] *= scl
	}
}
