// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tileset

import (
	"testing"

	"github.com/tilecraft/terra3d/ellipsoid"
	"github.com/tilecraft/terra3d/errmodel"
	"github.com/tilecraft/terra3d/height"
)

func newBuilder() Builder {
	model := errmodel.New(1000, 0.5, 1)
	oracle := height.NewOracle(model.LevelDisplacement, model.Persistence)
	return Builder{
		Ellipsoid:              ellipsoid.Ellipsoid{RX: 1, RY: 1, RZ: 1},
		ErrorModel:             model,
		HeightOracle:           oracle,
		MaximumDisplacement:    1000,
		ContentGenerationDepth: 1,
	}
}

func TestGetRoot(t *testing.T) {
	b := newBuilder()
	root := b.GetRoot(2)
	if root.GeometricError != rootGeometricError {
		t.Errorf("root geometricError = %v, want %v", root.GeometricError, rootGeometricError)
	}
	if root.BoundingVolume.Sphere == nil {
		t.Fatal("root should have a sphere bounding volume")
	}
	if len(root.Children) != 8 {
		t.Fatalf("root should have 8 children (4 per hemisphere), got %d", len(root.Children))
	}
}

func TestGenerateNodeLeafVsInterior(t *testing.T) {
	b := newBuilder()
	root := b.GetRoot(1)
	if err := Validate(root); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, child := range root.Children {
		if len(child.Children) != 0 {
			t.Errorf("generationDepth=1 child at depth 1 should be a leaf with no children")
		}
		if child.Content == nil {
			t.Fatal("leaf node missing content")
		}
	}
}

func TestGenerateNodeRecursesToGenerationDepth(t *testing.T) {
	b := newBuilder()
	root := b.GetRoot(2)
	if err := Validate(root); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	for _, child := range root.Children {
		if len(child.Children) != 4 {
			t.Fatalf("depth-1 node with generationDepth=2 should have 4 children, got %d", len(child.Children))
		}
		for _, grandchild := range child.Children {
			if len(grandchild.Children) != 0 {
				t.Errorf("depth-2 node should be a leaf")
			}
		}
	}
}
