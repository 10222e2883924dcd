// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package synth

import (
	"github.com/emer/etable/etensor"
	"github.com/neuraldata/spikesynth/firing"
)

// Recording is a plain multi-segment container for the generated time
// series.  Segments are (channel x sample) matrices owned exclusively by
// the caller; nothing is mutated after Run returns.
type Recording struct {
	Segments    []*etensor.Float32 `desc:"per-segment (chan x sample) traces"`
	Rate        float32            `desc:"sampling frequency in Hz"`
	Annotations map[string]string  `desc:"free-form metadata consumed by downstream tools, e.g. is_filtered"`
}

// NumSegments returns the number of recording segments.
func (rc *Recording) NumSegments() int {
	return len(rc.Segments)
}

// Annotate sets a metadata key on the recording.
func (rc *Recording) Annotate(key, val string) {
	if rc.Annotations == nil {
		rc.Annotations = map[string]string{}
	}
	rc.Annotations[key] = val
}

// Sorting is the matching ground-truth container: one spike train per
// segment plus the unit id list.
type Sorting struct {
	Trains  []*firing.Train `desc:"per-segment ground-truth spike trains"`
	UnitIDs []int           `desc:"unit ids, 1..NumUnits"`
	Rate    float32         `desc:"sampling frequency in Hz"`
}

// NumSegments returns the number of spike-train segments.
func (st *Sorting) NumSegments() int {
	return len(st.Trains)
}

// NumSpikes returns the total spike count in the given segment.
func (st *Sorting) NumSpikes(seg int) int {
	return st.Trains[seg].Len()
}
