// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package quadtree addresses tiles on two hemispherical root regions. Every
// tile is identified by a (Hemisphere, index) pair; children of index i are
// the four indices 4i+1..4i+4, and the quadrant each child slot occupies
// (SW, SE, NE, NW) bisects the parent's own longitude/latitude endpoints,
// so sibling tiles share an exact boundary with no floating-point drift.
package quadtree

import "math"

// Hemisphere is a 2-valued tag for one of the two tileset roots.
type Hemisphere int

const (
	West Hemisphere = iota
	East
)

// Address identifies a single tile: its hemisphere and linear index.
// Index 0 is the hemispherical root; children of index i are
// {4i+1, 4i+2, 4i+3, 4i+4}.
type Address struct {
	Hemisphere Hemisphere
	Index      uint64
}

// Rect is a geographic (longitude, latitude) rectangle with no height
// component; see region.Region for the height-padded bounding volume built
// on top of a Rect.
type Rect struct {
	West, South, East, North float64
}

// rootRect is the root region for hemisphere h.
func rootRect(h Hemisphere) Rect {
	if h == East {
		return Rect{West: 0, South: -math.Pi / 2, East: math.Pi, North: math.Pi / 2}
	}
	return Rect{West: -math.Pi, South: -math.Pi / 2, East: 0, North: math.Pi / 2}
}

// quadrants maps a child slot (0=SW, 1=SE, 2=NE, 3=NW) to which side of
// the parent's longitude and latitude span survives the bisection.
var quadrants = [4]struct{ clipWest, clipSouth bool }{
	{clipWest: false, clipSouth: false}, // SW: keep west & south halves
	{clipWest: true, clipSouth: false},  // SE: keep east & south halves
	{clipWest: true, clipSouth: true},   // NE: keep east & north halves
	{clipWest: false, clipSouth: true},  // NW: keep west & north halves
}

// bisect halves rect per the given child slot.
func bisect(r Rect, slot int) Rect {
	midLon := (r.West + r.East) / 2
	midLat := (r.South + r.North) / 2
	q := quadrants[slot]
	if q.clipWest {
		r.West = midLon
	} else {
		r.East = midLon
	}
	if q.clipSouth {
		r.South = midLat
	} else {
		r.North = midLat
	}
	return r
}

// ParentIndex returns the index of i's parent. i must be > 0.
func ParentIndex(i uint64) uint64 { return (i - 1) / 4 }

// ChildSlot returns i's position among its siblings, in {0,1,2,3} mapping
// in order to SW, SE, NE, NW. i must be > 0.
func ChildSlot(i uint64) int { return int(i - 4*ParentIndex(i) - 1) }

// Children returns the four child indices of i, in SW, SE, NE, NW order.
func Children(i uint64) [4]uint64 {
	return [4]uint64{4*i + 1, 4*i + 2, 4*i + 3, 4*i + 4}
}

// Depth returns the number of refinement steps from the hemispherical root
// to reach index i. The root has depth 0.
func Depth(index uint64) int {
	i := index
	depth := 0
	for i > 0 {
		i = (i+3)/4 - 1
		depth++
	}
	return depth
}

// BoundingTile returns the geographic rectangle addressed by (h, index)
// and its depth. The same address always yields a byte-identical
// rectangle: every bisection is derived from the parent's own endpoints,
// so sibling tiles meet at an exact shared boundary.
func BoundingTile(h Hemisphere, index uint64) (Rect, int) {
	root := rootRect(h)
	if index == 0 {
		return root, 0
	}

	// Unwind the index to the root, recording the child slot at each step.
	var slots []int
	for i := index; i > 0; i = ParentIndex(i) {
		slots = append(slots, ChildSlot(i))
	}

	// Replay root-to-leaf.
	rect := root
	for k := len(slots) - 1; k >= 0; k-- {
		rect = bisect(rect, slots[k])
	}
	return rect, Depth(index)
}
