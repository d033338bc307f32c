// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gltf

import (
	"bytes"
	"encoding/binary"

	"github.com/tilecraft/terra3d/mesh"
)

// PackMesh serializes a tesselated mesh into the contiguous binary buffer
// layout this package's glb accessors describe: indices, then positions,
// then normals, then uvs, each a run of little-endian values. This uses
// encoding/binary's typed slice writes rather than reinterpreting a slice
// header's backing array as raw bytes, so it has no dependency on the
// host's struct layout or endianness matching the wire format by
// coincidence.
func PackMesh(m mesh.Mesh) []byte {
	if len(m.Indices) != 3*m.TriangleCount() {
		panic("gltf: mesh index count does not match its triangle count")
	}
	size := len(m.Indices)*2 + (len(m.Positions)+len(m.Normals)+len(m.UVs))*4
	buf := bytes.NewBuffer(make([]byte, 0, size))
	binary.Write(buf, binary.LittleEndian, m.Indices)
	binary.Write(buf, binary.LittleEndian, m.Positions)
	binary.Write(buf, binary.LittleEndian, m.Normals)
	binary.Write(buf, binary.LittleEndian, m.UVs)
	return buf.Bytes()
}
