// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terra3d

import (
	"errors"
	"testing"

	"github.com/tilecraft/terra3d/quadtree"
)

func TestNewGeneratorDefaults(t *testing.T) {
	gen, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	if gen == nil {
		t.Fatal("NewGenerator returned nil generator with nil error")
	}
}

func TestNewGeneratorRejectsBadPersistence(t *testing.T) {
	for _, p := range []float64{0, 1, -0.5, 1.5} {
		if _, err := NewGenerator(Persistence(p)); !errors.Is(err, ErrInvalidPersistence) {
			t.Errorf("persistence=%v: got err %v, want ErrInvalidPersistence", p, err)
		}
	}
}

func TestNewGeneratorRejectsBadDisplacement(t *testing.T) {
	if _, err := NewGenerator(MaximumDisplacement(0)); !errors.Is(err, ErrInvalidMaximumDisplacement) {
		t.Errorf("got err %v, want ErrInvalidMaximumDisplacement", err)
	}
}

func TestNewGeneratorRejectsBadEllipsoid(t *testing.T) {
	if _, err := NewGenerator(EllipsoidRadii(0, 1, 1)); !errors.Is(err, ErrInvalidEllipsoid) {
		t.Errorf("got err %v, want ErrInvalidEllipsoid", err)
	}
}

func TestGetRoot(t *testing.T) {
	gen, err := NewGenerator(GenerationDepth(2), ContentGenerationDepth(1))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	root := gen.GetRoot()
	if len(root.Children) != 8 {
		t.Fatalf("expected 8 children at root, got %d", len(root.Children))
	}
}

func TestGenerateBoundingRegionHeightBound(t *testing.T) {
	gen, err := NewGenerator(GenerationDepth(2), ContentGenerationDepth(1))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	addr := quadtree.Address{Hemisphere: quadtree.West, Index: 2}
	reg, err := gen.GenerateBoundingRegion(addr)
	if err != nil {
		t.Fatalf("GenerateBoundingRegion: %v", err)
	}
	if reg.MinHeight > reg.MaxHeight {
		t.Errorf("MinHeight %v > MaxHeight %v", reg.MinHeight, reg.MaxHeight)
	}
}

func TestGenerateTerrainProducesValidB3DM(t *testing.T) {
	gen, err := NewGenerator(GenerationDepth(2), ContentGenerationDepth(1), EllipsoidRadii(1, 1, 1))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	addr := quadtree.Address{Hemisphere: quadtree.East, Index: 0}
	payload, err := gen.GenerateTerrain(addr)
	if err != nil {
		t.Fatalf("GenerateTerrain: %v", err)
	}
	if string(payload[0:4]) != "b3dm" {
		t.Errorf("payload does not start with b3dm magic: %q", payload[0:4])
	}
}

func TestGenerateTerrainOverflowsToIndexError(t *testing.T) {
	gen, err := NewGenerator(ContentGenerationDepth(9))
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	addr := quadtree.Address{Hemisphere: quadtree.West, Index: 0}
	if _, err := gen.GenerateTerrain(addr); !errors.Is(err, ErrIndexOverflow) {
		t.Errorf("got err %v, want ErrIndexOverflow", err)
	}
}
