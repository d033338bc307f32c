// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package errmodel computes the geometric error bounds used by a 3D Tiles
// client's screen-space-error refinement: how much a tile's approximation
// may still deviate from the true surface, both from geometric
// tesselation (chord vs arc) and from noise octaves not yet added.
package errmodel

import (
	"math"

	"github.com/tilecraft/terra3d/quadtree"
)

// Model holds the persistence-derived constants needed to bound error
// between refinement levels.
type Model struct {
	Persistence            float64
	LevelDisplacement       float64 // L = -maximumDisplacement / ln(persistence)
	ContentGenerationDepth int
}

// New derives a Model's levelDisplacement from maximumDisplacement and
// persistence. persistence must be in (0, 1); callers validate this at
// construction (see the root package's configuration error handling).
func New(maximumDisplacement, persistence float64, contentGenerationDepth int) Model {
	l := -maximumDisplacement / math.Log(persistence)
	return Model{
		Persistence:            persistence,
		LevelDisplacement:      l,
		ContentGenerationDepth: contentGenerationDepth,
	}
}

// ErrorDifference is the closed-form sum of octave amplitudes strictly
// between level a and level b (b > a): positive because persistence < 1
// makes ln(persistence) < 0 and p^b < p^a.
func (m Model) ErrorDifference(a, b int) float64 {
	lnP := math.Log(m.Persistence)
	return m.LevelDisplacement * (math.Pow(m.Persistence, float64(b)) - math.Pow(m.Persistence, float64(a))) / lnP
}

// RemainingError is a positive upper bound on the tail of the octave
// amplitude series beyond the given level.
func (m Model) RemainingError(level int) float64 {
	lnP := math.Log(m.Persistence)
	return -m.LevelDisplacement * math.Pow(m.Persistence, float64(level)) / lnP
}

// RegionError is the sagitta (chord-to-arc deviation) across the finest
// subdivision of rect, using the mean Cartesian corner length (at h=0, on
// the given ellipsoid radii) as an effective radius. Per the design this
// ignores latitude and uses only the longitudinal arc span; that is an
// intentional approximation for non-square tiles, preserved as-is.
func (m Model) RegionError(rect quadtree.Rect, cornerLengths [4]float64) float64 {
	r := (cornerLengths[0] + cornerLengths[1] + cornerLengths[2] + cornerLengths[3]) / 4
	theta := (rect.East - rect.West) / math.Exp2(float64(m.ContentGenerationDepth))
	return r * (1 - math.Cos(theta/2))
}
