// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package terra3d generates an out-of-core, hierarchically refined
// procedural planetary terrain exposed as a 3D Tiles tileset. Given a
// quadtree tile address on one of two hemispherical root regions, it
// deterministically synthesizes a tile's geographic bounding region, a
// conservative geometric error estimate, and a watertight mesh serialized
// as a Batched 3D Model (b3dm) containing embedded binary glTF (glTF 1.0,
// binary form).
package terra3d

import (
	"fmt"
	"log/slog"

	"github.com/tilecraft/terra3d/errmodel"
	"github.com/tilecraft/terra3d/gltf"
	"github.com/tilecraft/terra3d/height"
	"github.com/tilecraft/terra3d/mesh"
	"github.com/tilecraft/terra3d/quadtree"
	"github.com/tilecraft/terra3d/region"
	"github.com/tilecraft/terra3d/tileset"
)

// Generator is the entry point for tile generation. Every method is a
// pure function of (Generator, inputs): there is no shared mutable state,
// no background work, and no suspension, so any number of generation
// operations may run in parallel on distinct goroutines.
type Generator struct {
	cfg       Config
	errModel  errmodel.Model
	oracle    height.Oracle
	template  *gltf.Template
	tilesetFn tileset.Builder
}

// NewGenerator builds a Generator from the given options layered over
// configDefaults. Configuration errors (out-of-range persistence, a
// non-positive displacement or ellipsoid radius, or an unrepresentable
// depth) and template parse errors are fatal: the returned error means
// the Generator must not be used.
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := configDefaults
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Persistence <= 0 || cfg.Persistence >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPersistence, cfg.Persistence)
	}
	if cfg.MaximumDisplacement <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaximumDisplacement, cfg.MaximumDisplacement)
	}
	if cfg.GenerationDepth < 0 || cfg.GenerationDepth > maxRepresentableDepth {
		return nil, fmt.Errorf("%w: generationDepth=%d", ErrInvalidDepth, cfg.GenerationDepth)
	}
	if cfg.ContentGenerationDepth < 0 || cfg.ContentGenerationDepth > maxRepresentableDepth {
		return nil, fmt.Errorf("%w: contentGenerationDepth=%d", ErrInvalidDepth, cfg.ContentGenerationDepth)
	}
	if err := cfg.Ellipsoid.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEllipsoid, err)
	}

	tpl, err := gltf.ParseTemplate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}

	model := errmodel.New(cfg.MaximumDisplacement, cfg.Persistence, cfg.ContentGenerationDepth)
	oracle := height.NewOracle(model.LevelDisplacement, cfg.Persistence)

	slog.Debug("terra3d: generator constructed",
		"persistence", cfg.Persistence,
		"maximumDisplacement", cfg.MaximumDisplacement,
		"generationDepth", cfg.GenerationDepth,
		"contentGenerationDepth", cfg.ContentGenerationDepth,
	)

	return &Generator{
		cfg:      cfg,
		errModel: model,
		oracle:   oracle,
		template: tpl,
		tilesetFn: tileset.Builder{
			Ellipsoid:              cfg.Ellipsoid,
			ErrorModel:             model,
			HeightOracle:           oracle,
			MaximumDisplacement:    cfg.MaximumDisplacement,
			ContentGenerationDepth: cfg.ContentGenerationDepth,
		},
	}, nil
}

// GetRoot returns the tileset's top-level node.
func (g *Generator) GetRoot() *tileset.Node {
	return g.tilesetFn.GetRoot(g.cfg.GenerationDepth)
}

// GenerateNode returns the tileset node for addr, recursing until nodes
// reach generationDepth, where they become leaves.
func (g *Generator) GenerateNode(addr quadtree.Address, generationDepth int) *tileset.Node {
	return g.tilesetFn.GenerateNode(addr, generationDepth)
}

// SampleHeight exposes the underlying height oracle for debug tooling
// (see internal/debugviz); it is not part of the tile generation
// operations themselves.
func (g *Generator) SampleHeight(lon, lat float64, level int) float64 {
	return g.oracle.Sample(lon, lat, level)
}

// Seed returns the configured debug-visualization seed (see
// internal/debugviz); it does not affect generated geometry.
func (g *Generator) Seed() int64 {
	return g.cfg.Seed
}

// GenerateBoundingRegion returns the geodetic bounding region for addr,
// padded so every descendant down to ContentGenerationDepth octaves
// past addr's own depth has heights within [MinHeight, MaxHeight].
func (g *Generator) GenerateBoundingRegion(addr quadtree.Address) (region.Region, error) {
	reg, _ := region.Generate(addr, g.oracle, g.errModel)
	slog.Debug("terra3d: generated bounding region", "hemisphere", addr.Hemisphere, "index", addr.Index)
	return reg, nil
}

// GenerateTerrain returns the b3dm payload for addr: a watertight
// triangle mesh on the configured ellipsoid, embedded as glTF 1.0 binary.
// It returns ErrIndexOverflow if the tile's mesh grid would need more
// vertices than a 16-bit index can address.
func (g *Generator) GenerateTerrain(addr quadtree.Address) ([]byte, error) {
	m, err := mesh.Build(addr, g.oracle, g.cfg.Ellipsoid, g.cfg.ContentGenerationDepth)
	if err != nil {
		slog.Warn("terra3d: mesh build failed", "hemisphere", addr.Hemisphere, "index", addr.Index, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrIndexOverflow, err)
	}

	body := gltf.PackMesh(m)
	json, err := g.template.Patch(gltf.MeshCounts{
		IndexCount:  uint32(len(m.Indices)),
		VertexCount: uint32(m.VertexCount()),
		PosMin:      [3]float32{float32(m.Min.X), float32(m.Min.Y), float32(m.Min.Z)},
		PosMax:      [3]float32{float32(m.Max.X), float32(m.Max.Y), float32(m.Max.Z)},
	})
	if err != nil {
		return nil, fmt.Errorf("terra3d: patch glTF template: %w", err)
	}

	glb := gltf.EncodeGLB(json, body)
	b3dm := gltf.EncodeB3DM(glb)
	slog.Debug("terra3d: generated terrain",
		"hemisphere", addr.Hemisphere, "index", addr.Index,
		"vertices", m.VertexCount(), "bytes", len(b3dm),
	)
	return b3dm, nil
}
