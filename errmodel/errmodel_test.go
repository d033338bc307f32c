// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package errmodel

import (
	"math"
	"testing"

	"github.com/tilecraft/terra3d/quadtree"
)

const eps = 1e-9

func aeq(a, b float64) bool { return math.Abs(a-b) < eps }

// S5: persistence=0.5, maximumDisplacement=1.
func TestLevelDisplacementAndRemainingError(t *testing.T) {
	m := New(1, 0.5, 1)
	if !aeq(m.LevelDisplacement, 1.4426950408889634) {
		t.Errorf("LevelDisplacement = %v, want ~1.4426950408889634", m.LevelDisplacement)
	}
	got := m.RemainingError(0)
	want := 1.0 / (math.Log(0.5) * math.Log(0.5))
	if !aeq(got, want) {
		t.Errorf("RemainingError(0) = %v, want %v", got, want)
	}
}

// Property 9: error monotonicity.
func TestErrorMonotonicity(t *testing.T) {
	m := New(1000, 0.5, 1)
	if m.ErrorDifference(0, 3) <= 0 {
		t.Errorf("ErrorDifference should be positive for b > a, got %v", m.ErrorDifference(0, 3))
	}
	prev := m.RemainingError(0)
	for level := 1; level < 10; level++ {
		cur := m.RemainingError(level)
		if cur >= prev {
			t.Errorf("RemainingError(%d) = %v should be < RemainingError(%d) = %v", level, cur, level-1, prev)
		}
		prev = cur
	}
}

func TestRegionError(t *testing.T) {
	m := New(1000, 0.5, 1)
	rect := quadtree.Rect{West: -math.Pi, South: -math.Pi / 2, East: 0, North: math.Pi / 2}
	lengths := [4]float64{1, 1, 1, 1}
	got := m.RegionError(rect, lengths)
	theta := math.Pi / 2
	want := 1 * (1 - math.Cos(theta/2))
	if !aeq(got, want) {
		t.Errorf("RegionError = %v, want %v", got, want)
	}
}
