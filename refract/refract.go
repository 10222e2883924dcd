// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package refract enforces a minimum inter-spike interval on candidate
spike time sequences.

Violations are removed by a fixed-point iteration: in each pass, only the
last offender of every consecutive violating run is dropped, and the run
head is re-examined against the survivor on the next pass.  The iteration
terminates because every non-final pass strictly shrinks the sequence.
*/
package refract

import (
	"sort"

	"github.com/chewxy/math32"
)

// Params specifies the refractory constraint in samples.
type Params struct {
	Interval int `min:"0" def:"120" desc:"minimum allowed gap between consecutive spikes of one unit, in samples -- adjacent times with a difference <= this value violate the constraint"`
}

func (rp *Params) Defaults() {
	rp.Interval = IntervalSamples(4, 30000)
}

// IntervalSamples returns the refractory interval in samples for the
// given refractory period in msec and sampling frequency in Hz.
func IntervalSamples(refracMs, rateHz float32) int {
	return int(math32.Round(refracMs / 1000 * rateHz))
}

// Repair returns the subset of times, sorted ascending, such that no two
// returned times are closer than Interval samples.  The input slice is
// not modified; empty input returns an empty result.
func (rp *Params) Repair(times []int) []int {
	if len(times) == 0 {
		return nil
	}
	ts := make([]int, len(times))
	copy(ts, times)
	sort.Ints(ts)

	keep := make([]bool, len(ts))
	for {
		n := len(ts)
		for i := range keep[:n] {
			keep[i] = true
		}
		removed := 0
		for i := 0; i < n-1; i++ {
			if ts[i+1]-ts[i] > rp.Interval {
				continue
			}
			// only the last violating pair of a consecutive run is
			// resolved per pass -- the run head is re-examined on the
			// next pass against the survivor
			if i+2 < n && ts[i+2]-ts[i+1] < rp.Interval {
				continue
			}
			keep[i] = false
			removed++
		}
		if removed == 0 {
			return ts
		}
		out := ts[:0]
		for i := 0; i < n; i++ {
			if keep[i] {
				out = append(out, ts[i])
			}
		}
		ts = out
	}
}
