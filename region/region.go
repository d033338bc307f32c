// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package region builds the bounding volume — geographic rectangle plus a
// padded height interval — reported for a tile address.
package region

import (
	"math"

	"github.com/tilecraft/terra3d/errmodel"
	"github.com/tilecraft/terra3d/height"
	"github.com/tilecraft/terra3d/quadtree"
)

// Region is a (west, south, east, north, minHeight, maxHeight) box in
// geodetic coordinates.
type Region struct {
	West, South, East, North float64
	MinHeight, MaxHeight     float64
}

// Generate produces the bounding region for a tile address: the quadtree
// rectangle padded with a height interval wide enough to bound every
// descendant down to contentGenerationDepth octaves past the tile's own
// depth.
func Generate(addr quadtree.Address, oracle height.Oracle, model errmodel.Model) (Region, int) {
	rect, depth := quadtree.BoundingTile(addr.Hemisphere, addr.Index)

	corners := [4]float64{
		oracle.Sample(rect.West, rect.South, depth),
		oracle.Sample(rect.East, rect.South, depth),
		oracle.Sample(rect.East, rect.North, depth),
		oracle.Sample(rect.West, rect.North, depth),
	}
	hMin, hMax := corners[0], corners[0]
	for _, h := range corners[1:] {
		hMin = math.Min(hMin, h)
		hMax = math.Max(hMax, h)
	}

	pad := model.ErrorDifference(depth, depth+model.ContentGenerationDepth)
	return Region{
		West: rect.West, South: rect.South, East: rect.East, North: rect.North,
		MinHeight: hMin - pad,
		MaxHeight: hMax + pad,
	}, depth
}

// Rect strips the height interval off r, for callers that need only the
// geographic rectangle (e.g. the error model's chord-vs-arc computation).
func (r Region) Rect() quadtree.Rect {
	return quadtree.Rect{West: r.West, South: r.South, East: r.East, North: r.North}
}
