// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package region

import (
	"testing"

	"github.com/tilecraft/terra3d/errmodel"
	"github.com/tilecraft/terra3d/height"
	"github.com/tilecraft/terra3d/quadtree"
)

func TestGenerateHeightBound(t *testing.T) {
	model := errmodel.New(1000, 0.5, 1)
	oracle := height.NewOracle(model.LevelDisplacement, model.Persistence)
	addr := quadtree.Address{Hemisphere: quadtree.West, Index: 3}

	r, depth := Generate(addr, oracle, model)
	rect, wantDepth := quadtree.BoundingTile(addr.Hemisphere, addr.Index)
	if depth != wantDepth {
		t.Fatalf("depth = %d, want %d", depth, wantDepth)
	}
	if r.West != rect.West || r.East != rect.East || r.South != rect.South || r.North != rect.North {
		t.Fatalf("region rect %+v does not match quadtree rect %+v", r, rect)
	}

	corners := []float64{
		oracle.Sample(rect.West, rect.South, depth),
		oracle.Sample(rect.East, rect.South, depth),
		oracle.Sample(rect.East, rect.North, depth),
		oracle.Sample(rect.West, rect.North, depth),
	}
	for _, h := range corners {
		if h < r.MinHeight || h > r.MaxHeight {
			t.Errorf("corner height %v outside bound [%v,%v]", h, r.MinHeight, r.MaxHeight)
		}
	}
	if r.MinHeight > r.MaxHeight {
		t.Errorf("MinHeight %v > MaxHeight %v", r.MinHeight, r.MaxHeight)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	model := errmodel.New(500, 0.6, 2)
	oracle := height.NewOracle(model.LevelDisplacement, model.Persistence)
	addr := quadtree.Address{Hemisphere: quadtree.East, Index: 17}
	a, da := Generate(addr, oracle, model)
	b, db := Generate(addr, oracle, model)
	if a != b || da != db {
		t.Fatalf("Generate is not deterministic: %+v/%d vs %+v/%d", a, da, b, db)
	}
}
