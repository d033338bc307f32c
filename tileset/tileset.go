// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package tileset produces the recursive 3D Tiles tileset JSON nodes that
// reference b3dm content and child tilesets.
package tileset

import (
	"fmt"
	"math"

	"github.com/tilecraft/terra3d/ellipsoid"
	"github.com/tilecraft/terra3d/errmodel"
	"github.com/tilecraft/terra3d/height"
	"github.com/tilecraft/terra3d/quadtree"
	"github.com/tilecraft/terra3d/region"
)

// rootGeometricError is a deliberately enormous bound so clients always
// refine past the top-level root node on the first pass.
const rootGeometricError = 1e8

// BoundingVolume is either a sphere (the top-level root node) or a region
// (every other node); exactly one of the two fields is populated.
type BoundingVolume struct {
	Sphere []float64 `json:"sphere,omitempty"`
	Region []float64 `json:"region,omitempty"`
}

// Content points a node at its payload: a b3dm tile, or a child tileset
// JSON for further refinement.
type Content struct {
	URL string `json:"url"`
}

// Node is one entry in the recursive tileset tree.
type Node struct {
	BoundingVolume BoundingVolume `json:"boundingVolume"`
	GeometricError float64        `json:"geometricError"`
	Refine         string         `json:"refine,omitempty"`
	Content        *Content       `json:"content,omitempty"`
	Children       []*Node        `json:"children,omitempty"`
}

// Builder carries the configuration needed to emit nodes: the error model
// for geometric error, the height oracle for region heights, and the
// ellipsoid radii for the root bounding sphere.
type Builder struct {
	Ellipsoid              ellipsoid.Ellipsoid
	ErrorModel             errmodel.Model
	HeightOracle           height.Oracle
	MaximumDisplacement    float64
	ContentGenerationDepth int
}

// GetRoot returns the tileset's top-level node: a bounding sphere large
// enough to contain both hemispheres plus the maximum possible
// displacement, with the eight depth-1 tiles (four per hemisphere) as
// children.
func (b Builder) GetRoot(generationDepth int) *Node {
	maxRadius := math.Max(b.Ellipsoid.RX, math.Max(b.Ellipsoid.RY, b.Ellipsoid.RZ))
	root := &Node{
		BoundingVolume: BoundingVolume{Sphere: []float64{0, 0, 0, maxRadius + b.MaximumDisplacement}},
		GeometricError: rootGeometricError,
		Refine:         "replace",
	}
	for _, h := range []quadtree.Hemisphere{quadtree.West, quadtree.East} {
		for _, idx := range quadtree.Children(0) {
			root.Children = append(root.Children, b.GenerateNode(quadtree.Address{Hemisphere: h, Index: idx}, generationDepth))
		}
	}
	return root
}

// GenerateNode builds the tileset node for addr. Non-leaf nodes
// (depth < generationDepth) reference a b3dm and recurse into their four
// children; leaf nodes (depth >= generationDepth) reference a child
// tileset JSON and have no children, deferring further refinement to that
// file.
func (b Builder) GenerateNode(addr quadtree.Address, generationDepth int) *Node {
	reg, depth := region.Generate(addr, b.HeightOracle, b.ErrorModel)

	cornerLengths := [4]float64{
		cornerLength(reg.West, reg.South, b.Ellipsoid),
		cornerLength(reg.East, reg.South, b.Ellipsoid),
		cornerLength(reg.East, reg.North, b.Ellipsoid),
		cornerLength(reg.West, reg.North, b.Ellipsoid),
	}
	geometricError := b.ErrorModel.RegionError(reg.Rect(), cornerLengths) +
		b.ErrorModel.RemainingError(depth+b.ContentGenerationDepth)

	node := &Node{
		BoundingVolume: BoundingVolume{Region: []float64{reg.West, reg.South, reg.East, reg.North, reg.MinHeight, reg.MaxHeight}},
		GeometricError: geometricError,
		Refine:         "replace",
	}

	if depth >= generationDepth {
		node.Content = &Content{URL: contentName(addr, "json")}
		return node
	}
	node.Content = &Content{URL: contentName(addr, "b3dm")}
	for _, child := range quadtree.Children(addr.Index) {
		node.Children = append(node.Children, b.GenerateNode(quadtree.Address{Hemisphere: addr.Hemisphere, Index: child}, generationDepth))
	}
	return node
}

func cornerLength(lon, lat float64, e ellipsoid.Ellipsoid) float64 {
	pos, _ := ellipsoid.ToCartesian(lon, lat, 0, e)
	return pos.Len()
}

// contentName follows the "<hemisphere>_<index>.<ext>" convention, with
// hemisphere rendered as the integer 0 (west) or 1 (east).
func contentName(addr quadtree.Address, ext string) string {
	hemi := 0
	if addr.Hemisphere == quadtree.East {
		hemi = 1
	}
	return fmt.Sprintf("%d_%d.%s", hemi, addr.Index, ext)
}
