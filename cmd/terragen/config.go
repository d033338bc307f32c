// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

// config.go reads a declarative yaml configuration for the terrain
// generator CLI, the way gazed-vu's load.Shd reads shader descriptions
// from yaml.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tilecraft/terra3d"
)

// fileConfig is the on-disk shape of a terragen configuration file.
type fileConfig struct {
	Persistence            float64   `yaml:"persistence"`
	MaximumDisplacement    float64   `yaml:"maximumDisplacement"`
	GenerationDepth        int       `yaml:"generationDepth"`
	ContentGenerationDepth int       `yaml:"contentGenerationDepth"`
	Ellipsoid              []float64 `yaml:"ellipsoid"` // [rx, ry, rz]
	Seed                   int64     `yaml:"seed"`
}

// loadConfig reads a yaml file and returns the terra3d options it
// describes.
func loadConfig(path string) ([]terra3d.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("terragen: read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("terragen: parse config %s: %w", path, err)
	}

	var opts []terra3d.Option
	if fc.Persistence != 0 {
		opts = append(opts, terra3d.Persistence(fc.Persistence))
	}
	if fc.MaximumDisplacement != 0 {
		opts = append(opts, terra3d.MaximumDisplacement(fc.MaximumDisplacement))
	}
	if fc.GenerationDepth != 0 {
		opts = append(opts, terra3d.GenerationDepth(fc.GenerationDepth))
	}
	if fc.ContentGenerationDepth != 0 {
		opts = append(opts, terra3d.ContentGenerationDepth(fc.ContentGenerationDepth))
	}
	if len(fc.Ellipsoid) == 3 {
		opts = append(opts, terra3d.EllipsoidRadii(fc.Ellipsoid[0], fc.Ellipsoid[1], fc.Ellipsoid[2]))
	}
	if fc.Seed != 0 {
		opts = append(opts, terra3d.Seed(fc.Seed))
	}
	return opts, nil
}
