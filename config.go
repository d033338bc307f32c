// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terra3d

// config.go reduces the NewGenerator API footprint using functional
// options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

import "github.com/tilecraft/terra3d/ellipsoid"

// Config holds the immutable parameters a Generator is built from. A
// derived levelDisplacement is computed from MaximumDisplacement and
// Persistence at construction time; see NewGenerator.
type Config struct {
	Persistence            float64
	MaximumDisplacement    float64
	GenerationDepth        int
	ContentGenerationDepth int
	Ellipsoid              ellipsoid.Ellipsoid

	// Seed perturbs only the debug-visualization color ramp (see
	// internal/debugviz); it has no effect on generated geometry, which
	// is a pure function of Config's other fields and a tile address.
	Seed int64
}

// configDefaults provides reasonable defaults for an Earth-scale WGS84-like
// ellipsoid so the generator runs even if no options are set.
var configDefaults = Config{
	Persistence:            0.5,
	MaximumDisplacement:    1000,
	GenerationDepth:        4,
	ContentGenerationDepth: 2,
	Ellipsoid:              ellipsoid.Ellipsoid{RX: 6378137, RY: 6378137, RZ: 6356752.3142},
	Seed:                   1,
}

// Option defines optional generator attributes that can be used to
// configure the terrain generator.
//
//	gen, err := terra3d.NewGenerator(
//	    terra3d.Persistence(0.5),
//	    terra3d.MaximumDisplacement(1000),
//	    terra3d.GenerationDepth(4),
//	    terra3d.ContentGenerationDepth(2),
//	)
type Option func(*Config)

// Persistence sets the per-octave amplitude ratio, in (0, 1).
func Persistence(p float64) Option {
	return func(c *Config) { c.Persistence = p }
}

// MaximumDisplacement sets the total noise amplitude, in ellipsoid length
// units.
func MaximumDisplacement(d float64) Option {
	return func(c *Config) { c.MaximumDisplacement = d }
}

// GenerationDepth sets how many tileset levels are generated before a
// node becomes a leaf referencing a child tileset JSON.
func GenerationDepth(depth int) Option {
	return func(c *Config) { c.GenerationDepth = depth }
}

// ContentGenerationDepth sets how many octaves (and mesh grid
// subdivisions) past a tile's own depth are baked into its mesh and
// height bounds.
func ContentGenerationDepth(depth int) Option {
	return func(c *Config) { c.ContentGenerationDepth = depth }
}

// EllipsoidRadii sets the reference ellipsoid's three radii.
func EllipsoidRadii(rx, ry, rz float64) Option {
	return func(c *Config) { c.Ellipsoid = ellipsoid.Ellipsoid{RX: rx, RY: ry, RZ: rz} }
}

// Seed sets the debug-visualization color ramp seed. It does not affect
// generated geometry.
func Seed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}
