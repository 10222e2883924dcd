// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package synth is the top-level synthetic recording generator: it
validates the configuration, builds the probe geometry and the waveform
template tensor once, and loops over segments generating spike trains and
compositing time series, handing the results to Recording and Sorting
containers.
*/
package synth

import (
	"math/rand"

	"github.com/emer/etable/etensor"
	"github.com/neuraldata/spikesynth/firing"
	"github.com/neuraldata/spikesynth/geom"
	"github.com/neuraldata/spikesynth/seeds"
	"github.com/neuraldata/spikesynth/templates"
	"github.com/neuraldata/spikesynth/traces"
)

// Generator couples the configuration with the shared per-run state: the
// probe geometry and the template tensor, both built once by Run and
// shared read-only across segments.
type Generator struct {
	Config    Config           `view:"inline" desc:"top-level configuration"`
	Firing    firing.Params    `view:"inline" desc:"spike-train generation parameters"`
	Templates templates.Params `view:"inline" desc:"template synthesis parameters"`
	Traces    traces.Params    `view:"inline" desc:"time-series compositing parameters"`

	Geom *geom.Geometry   `desc:"probe geometry, built by Run"`
	Tmpl *etensor.Float32 `desc:"template tensor (chan x time x unit), built by Run"`
}

// New returns a Generator with all defaults applied and the given
// configuration installed (nil cfg keeps the defaults).
func New(cfg *Config) *Generator {
	gn := &Generator{}
	gn.Config.Defaults()
	gn.Firing.Defaults()
	gn.Templates.Defaults()
	gn.Traces.Defaults()
	if cfg != nil {
		gn.Config = *cfg
	}
	return gn
}

// Run validates the configuration and produces the recording and ground
// truth sorting.  On a validation error no partial output is returned.
func (gn *Generator) Run() (*Recording, *Sorting, error) {
	cfg := &gn.Config
	durs, err := cfg.SegDurations()
	if err != nil {
		return nil, nil, err
	}

	// shared knobs flow from the config into the component params
	gn.Templates.Upsample = cfg.Upsample
	gn.Templates.PeakAmp = cfg.PeakAmp
	gn.Traces.Upsample = cfg.Upsample
	gn.Traces.NoiseLevel = cfg.NoiseLevel

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	// all sub-seeds are drawn up front so segments could run in parallel
	top := seeds.Stream(seed)
	tmplSeed := top.Int63()
	segSeeds := seeds.Subs(top, cfg.NumSegments)

	gn.Geom = geom.Linear(cfg.NumChans)
	gn.Tmpl = gn.Templates.Synthesize(gn.Geom, cfg.NumUnits, tmplSeed)

	units := make([]int, cfg.NumUnits)
	for i := range units {
		units[i] = i + 1
	}

	rec := &Recording{Rate: cfg.Rate, Annotations: map[string]string{}}
	srt := &Sorting{UnitIDs: units, Rate: cfg.Rate}

	for si := 0; si < cfg.NumSegments; si++ {
		seg := seeds.Stream(segSeeds[si])
		fireSeed := seg.Int63()
		noiseSeed := seg.Int63()

		trn := gn.Firing.Gen(cfg.NumUnits, durs[si], cfg.Rate, fireSeed)
		times := make([]float64, trn.Len())
		for i, tm := range trn.Times {
			times[i] = float64(tm)
		}
		x := gn.Traces.Composite(times, trn.Labels, units, gn.Tmpl, cfg.Rate, durs[si], noiseSeed)

		srt.Trains = append(srt.Trains, trn)
		rec.Segments = append(rec.Segments, x)
	}

	// the synthesized traces have no offset or drift to filter out
	rec.Annotate("is_filtered", "true")
	return rec, srt, nil
}

// Generate is the one-call entry point: generate a recording and sorting
// from the given configuration (nil for all defaults).
func Generate(cfg *Config) (*Recording, *Sorting, error) {
	return New(cfg).Run()
}
