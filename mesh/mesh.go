// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package mesh tesselates a tile's geographic rectangle into a regular
// vertex grid on the ellipsoid, evaluating the height oracle at every
// vertex and producing the packed buffer consumed by the glTF/b3dm
// container emitter.
package mesh

import (
	"fmt"

	"github.com/tilecraft/terra3d/ellipsoid"
	"github.com/tilecraft/terra3d/height"
	"github.com/tilecraft/terra3d/math/lin"
	"github.com/tilecraft/terra3d/quadtree"
)

// maxIndex is the largest vertex count addressable by a 16-bit index.
const maxIndex = 65535

// Mesh is the tesselated tile surface: a regular (steps+1)^2 vertex grid
// triangulated into 2*steps^2 triangles, plus the componentwise min/max of
// the emitted positions.
type Mesh struct {
	Steps     int
	Indices   []uint16
	Positions []float32 // 3 components per vertex
	Normals   []float32 // 3 components per vertex
	UVs       []float32 // 2 components per vertex
	Min, Max  lin.V3
}

// VertexCount is the number of vertices in the grid.
func (m Mesh) VertexCount() int { return (m.Steps + 1) * (m.Steps + 1) }

// TriangleCount is the number of triangles in the grid.
func (m Mesh) TriangleCount() int { return 2 * m.Steps * m.Steps }

// Build tesselates the tile addressed by addr into a regular grid mesh.
// contentGenerationDepth controls the grid resolution: steps =
// 2^contentGenerationDepth along each axis. Heights are sampled at octave
// count depth+contentGenerationDepth, the tile's own refinement depth plus
// the octaves this mesh's grid resolution adds.
func Build(addr quadtree.Address, oracle height.Oracle, ellip ellipsoid.Ellipsoid, contentGenerationDepth int) (Mesh, error) {
	rect, depth := quadtree.BoundingTile(addr.Hemisphere, addr.Index)
	steps := 1 << contentGenerationDepth
	vertexCount := (steps + 1) * (steps + 1)
	if vertexCount > maxIndex {
		return Mesh{}, fmt.Errorf("mesh: %d vertices exceeds the 16-bit index limit of %d", vertexCount, maxIndex)
	}

	m := Mesh{
		Steps:     steps,
		Indices:   make([]uint16, 0, 6*steps*steps),
		Positions: make([]float32, 0, 3*vertexCount),
		Normals:   make([]float32, 0, 3*vertexCount),
		UVs:       make([]float32, 0, 2*vertexCount),
	}

	step := 1.0 / float64(steps)
	level := depth + contentGenerationDepth
	first := true
	for j := 0; j <= steps; j++ {
		lat := rect.South + float64(j)*step*(rect.North-rect.South)
		for i := 0; i <= steps; i++ {
			lon := rect.West + float64(i)*step*(rect.East-rect.West)
			h := oracle.Sample(lon, lat, level)
			pos, nrm := ellipsoid.ToCartesian(lon, lat, h, ellip)

			m.Positions = append(m.Positions, float32(pos.X), float32(pos.Y), float32(pos.Z))
			m.Normals = append(m.Normals, float32(nrm.X), float32(nrm.Y), float32(nrm.Z))
			m.UVs = append(m.UVs, float32(i)/float32(steps), float32(j)/float32(steps))

			if first {
				m.Min, m.Max = pos, pos
				first = false
			} else {
				m.Min.Min(&m.Min, &pos)
				m.Max.Max(&m.Max, &pos)
			}
		}
	}

	stride := steps + 1
	for j := 0; j < steps; j++ {
		for i := 0; i < steps; i++ {
			v00 := uint16(j*stride + i)
			v10 := uint16(j*stride + i + 1)
			v11 := uint16((j+1)*stride + i + 1)
			v01 := uint16((j+1)*stride + i)
			m.Indices = append(m.Indices, v00, v10, v11, v00, v11, v01)
		}
	}

	return m, nil
}
