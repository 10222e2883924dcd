// Copyright (c) 2024, The Spikesynth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seeds

import "testing"

func TestDeriveDeterministic(t *testing.T) {
	a := Derive(42, 10)
	b := Derive(42, 10)
	for i := range a {
		for j := 0; j < 100; j++ {
			av, bv := a[i].Float64(), b[i].Float64()
			if av != bv {
				t.Fatalf("stream %d draw %d: %v != %v", i, j, av, bv)
			}
		}
	}
}

func TestDeriveIndependent(t *testing.T) {
	rs := Derive(42, 2)
	same := 0
	for j := 0; j < 100; j++ {
		if rs[0].Float64() == rs[1].Float64() {
			same++
		}
	}
	if same == 100 {
		t.Errorf("streams 0 and 1 are identical")
	}
}

func TestDerivePrefixStable(t *testing.T) {
	// adding consumers must not perturb the streams of existing ones
	a := Subs(Stream(42), 5)
	b := Subs(Stream(42), 10)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("sub-seed %d changed with consumer count: %v vs %v", i, a[i], b[i])
		}
	}
}
