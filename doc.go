// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikesynth is the overall repository for the spikesynth synthetic
extracellular recording generator, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* refract: fixed-point removal of refractory-period violations from
candidate spike time sequences.

* wavegen: construction of a single stereotyped action-potential waveform
from four piecewise exponential segments, with smoothing, baseline
removal, and peak centering.

* geom: probe channel geometry and interpolated placement of synthetic
neurons along it.

* firing: stochastic spike-train generation with a structured short-lag
autocorrelation shape and refractory enforcement.

* templates: the (channel x time x unit) waveform template tensor, with
per-unit jitter, distance-dependent attenuation and propagation delay,
and global peak normalization.

* traces: compositing of noisy multi-channel time series with sub-sample
accurate template stamping.

* seeds: derivation of independent per-unit and per-segment random
streams from a single top-level seed.

* synth: the top-level generator driving all of the above, producing
Recording and Sorting containers.

* cmd/spikesynth: command-line program that generates a recording and
exports ground truth tables and plots.
*/
package spikesynth
