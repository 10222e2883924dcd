// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package templates

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/neuraldata/spikesynth/geom"
	"github.com/stretchr/testify/assert"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-3)

func TestSynthesizeShape(t *testing.T) {
	tp := Params{}
	tp.Defaults()
	ww := tp.Synthesize(geom.Linear(4), 10, 42)
	assert.Equal(t, 4, ww.Dim(0))
	assert.Equal(t, 500*13, ww.Dim(1))
	assert.Equal(t, 10, ww.Dim(2))
	assert.Equal(t, 4*500*13*10, ww.Len())
}

func TestNormalizeMeanPeak(t *testing.T) {
	tp := Params{}
	tp.Defaults()
	ww := tp.Synthesize(geom.Linear(4), 10, 42)
	m, tu, k := ww.Dim(0), ww.Dim(1), ww.Dim(2)
	peaks := make([]float32, k)
	for ch := 0; ch < m; ch++ {
		for ti := 0; ti < tu; ti++ {
			for u := 0; u < k; u++ {
				v := math32.Abs(ww.Values[(ch*tu+ti)*k+u])
				if v > peaks[u] {
					peaks[u] = v
				}
			}
		}
	}
	mean := float32(0)
	for _, p := range peaks {
		mean += p
	}
	mean /= float32(k)
	if d := math32.Abs(mean - 100); d > difTol {
		t.Errorf("mean unit peak: got %v, want 100 (dif %v)", mean, d)
	}
}

func TestNormalizeCouplesUnits(t *testing.T) {
	// normalization is global: individual unit peaks spread around the
	// configured mean rather than all pinning to it
	tp := Params{}
	tp.Defaults()
	ww := tp.Synthesize(geom.Linear(4), 10, 42)
	k := ww.Dim(2)
	peaks := make([]float32, k)
	for i, v := range ww.Values {
		u := i % k
		if av := math32.Abs(v); av > peaks[u] {
			peaks[u] = av
		}
	}
	allEqual := true
	for _, p := range peaks[1:] {
		if math32.Abs(p-peaks[0]) > difTol {
			allEqual = false
		}
	}
	assert.False(t, allEqual, "per-unit peaks must differ under global normalization")
}

func TestSynthesizeDeterministic(t *testing.T) {
	tp := Params{}
	tp.Defaults()
	a := tp.Synthesize(geom.Linear(4), 10, 42)
	b := tp.Synthesize(geom.Linear(4), 10, 42)
	assert.Equal(t, a.Values, b.Values)

	c := tp.Synthesize(geom.Linear(4), 10, 7)
	assert.NotEqual(t, a.Values, c.Values)
}

func TestSynthesizeAttenuation(t *testing.T) {
	// a unit placed on channel 1 must be strongest there and weakest on
	// the far channel
	tp := Params{}
	tp.Defaults()
	ww := tp.Synthesize(geom.Linear(4), 2, 42)
	tu, k := ww.Dim(1), ww.Dim(2)
	peak := func(ch, unit int) float32 {
		pk := float32(0)
		for ti := 0; ti < tu; ti++ {
			if v := math32.Abs(ww.Values[(ch*tu+ti)*k+unit]); v > pk {
				pk = v
			}
		}
		return pk
	}
	assert.Greater(t, peak(0, 0), peak(3, 0), "unit 1 attenuates toward channel 4")
	assert.Greater(t, peak(3, 1), peak(0, 1), "unit 2 attenuates toward channel 1")
}

func TestSynthesizeDegenerate(t *testing.T) {
	tp := Params{}
	tp.Defaults()
	ww := tp.Synthesize(geom.Linear(0), 0, 42)
	assert.Equal(t, 0, ww.Len())
}
