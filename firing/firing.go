// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package firing generates stochastic spike-time sequences with a target
mean rate and a structured (non-Poisson) short-lag correlation shape.

Per unit, a pool of uniform candidate times is doubled by burst copies at
a right-skewed random lag just above the refractory period, half of the
pool is kept (without replacement), and the survivors are run through
refractory repair.  The skewed lag concentrates spike pairs just outside
the refractory floor, giving the autocorrelogram a realistic shoulder.
*/
package firing

import (
	"math/rand"
	"sort"

	"github.com/chewxy/math32"
	"github.com/neuraldata/spikesynth/refract"
	"github.com/neuraldata/spikesynth/seeds"
)

// Params are the spike-train generation parameters, shared by all units.
type Params struct {
	Rate         float32 `def:"3" min:"0" desc:"target mean firing rate per unit in Hz -- sets the candidate pool size before burst injection and subsampling"`
	RefracMs     float32 `def:"4" min:"0" desc:"refractory floor in msec -- no unit fires twice within this interval"`
	BurstMaxFact float32 `def:"20" min:"1" desc:"upper bound of the burst lag range, in multiples of the refractory interval -- burst copies land between 1 and this many refractory periods after their parent spike"`
}

func (fp *Params) Defaults() {
	fp.Rate = 3
	fp.RefracMs = 4
	fp.BurstMaxFact = 20
}

// Train is one segment's ground-truth spike train: ascending sample
// times with parallel unit labels (ids 1..K).  Equal times across
// different units are permitted and kept in unit order.
type Train struct {
	Times  []int `desc:"spike times as integer sample indices, ascending"`
	Labels []int `desc:"unit id (1..K) of each spike"`
}

// UnitTimes returns the times of the given unit id, in order.
func (tr *Train) UnitTimes(unit int) []int {
	var ts []int
	for i, lb := range tr.Labels {
		if lb == unit {
			ts = append(ts, tr.Times[i])
		}
	}
	return ts
}

// Gen generates one segment's spike train for k units over the given
// duration (sec) at the given sampling rate (Hz).  All randomness comes
// from per-unit streams derived from seed, so unit i's spikes do not
// depend on how many other units exist or in what order they are built.
// Degenerate configurations (zero units, zero duration) yield an empty
// train.
func (fp *Params) Gen(k int, duration, rate float32, seed int64) *Train {
	tr := &Train{}
	n := int(duration * rate)
	if k <= 0 || n <= 1 {
		return tr
	}
	refr := float64(refract.IntervalSamples(fp.RefracMs, rate))
	rp := refract.Params{Interval: int(refr)}
	pop := int(math32.Ceil(fp.Rate / rate * float32(n))) // events/sec * sec
	rngs := seeds.Derive(seed, k)

	for unit := 1; unit <= k; unit++ {
		times := fp.genUnit(n, pop, refr, &rp, rngs[unit-1])
		for _, tm := range times {
			tr.Times = append(tr.Times, tm)
			tr.Labels = append(tr.Labels, unit)
		}
	}

	sort.Stable(tr)
	return tr
}

// genUnit generates the repaired spike times of one unit from its own
// random stream.
func (fp *Params) genUnit(n, pop int, refr float64, rp *refract.Params, rng *rand.Rand) []int {
	cands := make([]float64, 0, 2*pop)
	for i := 0; i < pop; i++ {
		cands = append(cands, rng.Float64()*float64(n-1)+1)
	}
	// burst copies at a right-skewed lag in [refr, BurstMaxFact*refr]:
	// squaring the uniform variate biases toward the refractory floor
	burstMax := float64(fp.BurstMaxFact) * refr
	for i := 0; i < pop; i++ {
		u := rng.Float64()
		cands = append(cands, cands[i]+refr+(burstMax-refr)*u*u)
	}
	// keep a random half of the pool, without replacement, to restore
	// the target rate after burst injection
	ord := rng.Perm(len(cands))[:len(cands)/2]
	times := make([]int, 0, len(ord))
	for _, ci := range ord {
		t := cands[ci]
		if t >= 0 && t < float64(n) {
			times = append(times, int(t))
		}
	}
	return rp.Repair(times)
}

// sort.Interface over (Times, Labels) pairs, ordered by time; the stable
// sort keeps equal times in unit order.
func (tr *Train) Len() int           { return len(tr.Times) }
func (tr *Train) Less(i, j int) bool { return tr.Times[i] < tr.Times[j] }
func (tr *Train) Swap(i, j int) {
	tr.Times[i], tr.Times[j] = tr.Times[j], tr.Times[i]
	tr.Labels[i], tr.Labels[j] = tr.Labels[j], tr.Labels[i]
}
