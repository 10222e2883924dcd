// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Config is the full configuration surface of the generator.
type Config struct {
	Durations   []float32 `def:"{10}" desc:"segment durations in seconds -- a single value is broadcast to every segment, otherwise the list length must equal NumSegments"`
	NumChans    int       `def:"4" min:"1" desc:"number of recording channels"`
	NumUnits    int       `def:"10" min:"0" desc:"number of synthetic units (neurons)"`
	Rate        float32   `def:"30000" min:"1" desc:"sampling frequency in Hz"`
	NumSegments int       `def:"2" min:"1" desc:"number of independent recording segments"`
	PeakAmp     float32   `def:"-100" desc:"signed target mean of per-unit peak template amplitudes"`
	Upsample    int       `def:"13" min:"1" desc:"waveform upsample factor for sub-sample spike placement"`
	NoiseLevel  float32   `def:"10" min:"0" desc:"stdev of the Gaussian background noise"`
	Seed        int64     `desc:"random seed -- 0 draws a fresh seed from the global source, making the run non-reproducible"`
}

func (cf *Config) Defaults() {
	cf.Durations = []float32{10}
	cf.NumChans = 4
	cf.NumUnits = 10
	cf.Rate = 30000
	cf.NumSegments = 2
	cf.PeakAmp = -100
	cf.Upsample = 13
	cf.NoiseLevel = 10
	cf.Seed = 0
}

// Validate reports configuration errors.  The per-segment duration list
// is the one strictly checked surface; degenerate values elsewhere (zero
// units, one channel) are deliberately tolerated.
func (cf *Config) Validate() error {
	_, err := cf.SegDurations()
	return err
}

// SegDurations returns the per-segment duration list: a single duration
// is broadcast to all NumSegments, an explicit list must match the
// segment count exactly and contain only finite values.
func (cf *Config) SegDurations() ([]float32, error) {
	if len(cf.Durations) == 0 {
		return nil, fmt.Errorf("synth.Config: no durations given")
	}
	for _, d := range cf.Durations {
		if math32.IsNaN(d) || math32.IsInf(d, 0) {
			return nil, fmt.Errorf("synth.Config: duration %v is not a finite value", d)
		}
	}
	if len(cf.Durations) == 1 {
		ds := make([]float32, cf.NumSegments)
		for i := range ds {
			ds[i] = cf.Durations[0]
		}
		return ds, nil
	}
	if len(cf.Durations) != cf.NumSegments {
		return nil, fmt.Errorf("synth.Config: %d durations given for %d segments", len(cf.Durations), cf.NumSegments)
	}
	return cf.Durations, nil
}
