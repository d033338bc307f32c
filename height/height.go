// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package height composes the ellipsoid map and the noise field into a
// scalar height oracle over the sphere.
package height

import (
	"github.com/tilecraft/terra3d/ellipsoid"
	"github.com/tilecraft/terra3d/noise"
)

// samplingEllipsoid is fixed at (0.5, 0.5, 0.5) rather than the configured
// ellipsoid. This is intentional for sampling-space stability: it gives a
// stable 3D point for every (lon, lat), with neighboring lon/lat corners
// mapping to neighboring Cartesian points, avoiding seam discontinuities
// at +/-pi longitude and at the poles. Any change here would change every
// generated height.
var samplingEllipsoid = ellipsoid.Ellipsoid{RX: 0.5, RY: 0.5, RZ: 0.5}

// Oracle evaluates terrain height at a given refinement level.
type Oracle struct {
	LevelDisplacement float64
	Persistence       float64
}

// NewOracle builds a height oracle from the derived level displacement and
// the configured persistence.
func NewOracle(levelDisplacement, persistence float64) Oracle {
	return Oracle{LevelDisplacement: levelDisplacement, Persistence: persistence}
}

// Sample returns the terrain height at (lon, lat) using `level` octaves of
// the noise field. level is typically a tile's depth, or depth plus the
// content generation depth when sampling mesh vertices.
func (o Oracle) Sample(lon, lat float64, level int) float64 {
	pos, _ := ellipsoid.ToCartesian(lon, lat, 0, samplingEllipsoid)
	n := noise.Sample3([3]float64{pos.X, pos.Y, pos.Z}, level, noise.Config{
		BaseWavelength: 1,
		BaseFrequency:  1,
		Persistence:    o.Persistence,
	})
	return o.LevelDisplacement * n
}
