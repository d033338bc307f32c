// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package noise

import (
	"math"
	"testing"
)

var cfg = Config{BaseWavelength: 1, BaseFrequency: 1, Persistence: 0.5}

func TestSample2Determinism(t *testing.T) {
	p := [2]float64{1.234, -5.678}
	a := Sample2(p, 4, cfg)
	b := Sample2(p, 4, cfg)
	if a != b {
		t.Fatalf("Sample2 not deterministic: %v != %v", a, b)
	}
}

func TestSample3Determinism(t *testing.T) {
	p := [3]float64{0.1, 0.2, 0.3}
	a := Sample3(p, 5, cfg)
	b := Sample3(p, 5, cfg)
	if a != b {
		t.Fatalf("Sample3 not deterministic: %v != %v", a, b)
	}
}

// TestSample2AtOrigin checks the concrete scenario: with the origin as the
// sample point every fractional part is zero, so interpolation picks the
// (0,0) lattice corner exactly, and sin(0)=0 makes that corner -1.
func TestSample2AtOrigin(t *testing.T) {
	got := Sample2([2]float64{0, 0}, 1, cfg)
	if got != -1 {
		t.Errorf("Sample2(origin, 1 octave) = %v, want -1", got)
	}
}

func TestEaseEndpoints(t *testing.T) {
	if ease(0) != 0 {
		t.Errorf("ease(0) = %v, want 0", ease(0))
	}
	if !almostEqual(ease(1), 1) {
		t.Errorf("ease(1) = %v, want 1", ease(1))
	}
}

func TestHashRange(t *testing.T) {
	for _, dot := range []float64{0, 1, -1, 100, -3.7, 1e6} {
		v := hash(dot)
		if v < -1 || v >= 1 {
			t.Errorf("hash(%v) = %v, out of [-1,1)", dot, v)
		}
	}
}

func TestMagnitudeBound(t *testing.T) {
	octaves := 6
	p := [2]float64{3.3, -9.9}
	got := Sample2(p, octaves, cfg)
	bound := 0.0
	amp := 1.0
	for k := 0; k < octaves; k++ {
		bound += amp
		amp *= cfg.Persistence
	}
	if math.Abs(got) > bound+1e-9 {
		t.Errorf("Sample2 magnitude %v exceeds bound %v", got, bound)
	}
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func BenchmarkSample3(b *testing.B) {
	p := [3]float64{0.42, 0.17, 0.9}
	for i := 0; i < b.N; i++ {
		Sample3(p, 8, cfg)
	}
}
