// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package seeds derives independent random streams from a single top-level
seed.  One sub-seed per consumer (unit, segment) is drawn from the seeded
top-level stream before any per-consumer work begins, so that runs are
reproducible regardless of the order (or parallelism) in which the
consumers are later processed.
*/
package seeds

import "math/rand"

// Stream returns a new random stream seeded with the given seed.
func Stream(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Subs draws n sub-seeds from the given stream, one per consumer index.
func Subs(rng *rand.Rand, n int) []int64 {
	ss := make([]int64, n)
	for i := range ss {
		ss[i] = rng.Int63()
	}
	return ss
}

// Derive returns n independent streams for the given top-level seed, one
// per consumer index.  Sub-seeds are all drawn before any stream is used.
func Derive(seed int64, n int) []*rand.Rand {
	ss := Subs(Stream(seed), n)
	rs := make([]*rand.Rand, n)
	for i, s := range ss {
		rs[i] = Stream(s)
	}
	return rs
}
