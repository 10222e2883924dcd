// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package wavegen constructs a single stereotyped action-potential waveform
from four piecewise exponential segments: a slow rise toward threshold, a
fast depolarization, a fast repolarization undershoot, and a slow return
to baseline.

The curve is smoothed with a symmetric moving sum (half-width 3, gain not
renormalized -- callers account for the resulting amplitude scale), has a
linear first-to-last-sample baseline subtracted, and is circularly
shifted so that its extremal sample sits at the waveform midpoint.
*/
package wavegen

import "github.com/chewxy/math32"

// Params are the base segment durations and amplitudes of the waveform,
// prior to per-unit randomization and upsampling.
type Params struct {
	Durations [4]float32 `def:"{200,10,30,200}" desc:"durations of the rise, depolarization, repolarization, and return segments, in (non-upsampled) samples"`
	Amps      [4]float32 `def:"{0.5,10,-1,0}" desc:"target amplitudes at the end of each segment, in arbitrary units prior to global normalization"`
}

func (wp *Params) Defaults() {
	wp.Durations = [4]float32{200, 10, 30, 200}
	wp.Amps = [4]float32{0.5, 10, -1, 0}
}

// Synthesize builds a length-n waveform from the given segment durations
// and amplitudes (durations in the same sample units as n, typically
// already upsampled).  The result is zero-padded to n and circularly
// shifted so the maximum-absolute-value sample is at index n/2.
func Synthesize(n int, durs, amps [4]float32) []float32 {
	total := durs[0] + durs[1] + durs[2] + durs[3]
	if total >= float32(n-2) {
		durs[3] = float32(n-2) - (durs[0] + durs[1] + durs[2])
		total = float32(n - 2)
	}

	// breakpoints: cumulative duration sums, rounded, endpoint-inclusive
	var tp [5]int
	sum := float32(0)
	for j := 0; j < 4; j++ {
		sum += durs[j]
		tp[j+1] = int(math32.Round(sum - 1))
	}
	ln := int(total) + 1

	y := make([]float32, ln)
	fill(y, tp[0], tp[1], expGrowth(0, amps[0], tp[1]+1-tp[0], durs[0]/4))
	fill(y, tp[1], tp[2], expGrowth(amps[0], amps[1], tp[2]+1-tp[1], durs[1]))
	fill(y, tp[2], tp[3], expDecay(amps[1], amps[2], tp[3]+1-tp[2], durs[2]/4))
	fill(y, tp[3], tp[4], expDecay(amps[2], amps[3], tp[4]+1-tp[3], durs[3]/5))

	y = smooth(y, 3)

	// remove the linear baseline connecting the first and last sample
	y0, y1 := y[0], y[ln-1]
	for i := range y {
		frac := float32(0)
		if ln > 1 {
			frac = float32(i) / float32(ln-1)
		}
		y[i] -= y0 + frac*(y1-y0)
	}

	out := make([]float32, n)
	copy(out, y)

	peak := 0
	for i, v := range out {
		if math32.Abs(v) > math32.Abs(out[peak]) {
			peak = i
		}
	}
	return roll(out, n/2-peak)
}

// fill writes seg into y over the inclusive index range [st, ed],
// overwriting the boundary sample shared with the previous segment.
func fill(y []float32, st, ed int, seg []float32) {
	for i := st; i <= ed && i < len(y); i++ {
		y[i] = seg[i-st]
	}
}

// expGrowth evaluates exp(t/tau) over n samples, affinely rescaled so the
// first sample equals amp1 and the last equals amp2.
func expGrowth(amp1, amp2 float32, n int, tau float32) []float32 {
	y := make([]float32, n)
	for i := range y {
		y[i] = math32.Exp(float32(i) / tau)
	}
	scl := (amp2 - amp1) / (y[n-1] - y[0])
	y0 := y[0]
	for i := range y {
		y[i] = (y[i]-y0)*scl + amp1
	}
	return y
}

// expDecay is the growth primitive evaluated with swapped endpoints and
// reversed in time.
func expDecay(amp1, amp2 float32, n int, tau float32) []float32 {
	y := expGrowth(amp2, amp1, n, tau)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		y[i], y[j] = y[j], y[i]
	}
	return y
}

// smooth returns the circular moving sum of y with half-width hw:
// the sum of 2*hw+1 shifted copies, with no gain normalization.
func smooth(y []float32, hw int) []float32 {
	n := len(y)
	z := make([]float32, n)
	for j := -hw; j <= hw; j++ {
		for i := range z {
			z[i] += y[((i-j)%n+n)%n]
		}
	}
	return z
}

// roll circularly shifts y right by k samples (k may be negative).
func roll(y []float32, k int) []float32 {
	n := len(y)
	if n == 0 {
		return y
	}
	k = ((k % n) + n) % n
	if k == 0 {
		return y
	}
	z := make([]float32, n)
	copy(z, y[n-k:])
	copy(z[k:], y[:n-k])
	return z
}
