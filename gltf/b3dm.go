// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gltf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	b3dmHeaderSize = 28
	b3dmMagic      = "b3dm"
	b3dmVersion    = 1
	tablePadding   = 8
)

// EncodeB3DM wraps a glb document in a b3dm v1 container. This emitter
// never produces feature or batch table data, so all four table lengths
// are zero; they are still present in the header and still conceptually
// padded to a multiple of 8, which for zero-length tables is a no-op.
func EncodeB3DM(glb []byte) []byte {
	const ftJSON, ftBin, btJSON, btBin = 0, 0, 0, 0
	total := b3dmHeaderSize + ftJSON + ftBin + btJSON + btBin + len(glb)

	buf := bytes.NewBuffer(make([]byte, 0, total))
	buf.WriteString(b3dmMagic)
	writeU32(buf, b3dmVersion)
	writeU32(buf, uint32(total))
	writeU32(buf, ftJSON)
	writeU32(buf, ftBin)
	writeU32(buf, btJSON)
	writeU32(buf, btBin)
	buf.Write(glb)
	return buf.Bytes()
}

// B3DMDocument is the decoded form of a b3dm container.
type B3DMDocument struct {
	FeatureTableJSON []byte
	FeatureTableBin  []byte
	BatchTableJSON   []byte
	BatchTableBin    []byte
	GLB              []byte
}

// DecodeB3DM parses a b3dm container back into its tables and embedded
// glb. It is the inverse of EncodeB3DM.
func DecodeB3DM(data []byte) (B3DMDocument, error) {
	if len(data) < b3dmHeaderSize {
		return B3DMDocument{}, fmt.Errorf("gltf: b3dm too short for header: %d bytes", len(data))
	}
	if string(data[0:4]) != b3dmMagic {
		return B3DMDocument{}, fmt.Errorf("gltf: bad b3dm magic %q", data[0:4])
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != b3dmVersion {
		return B3DMDocument{}, fmt.Errorf("gltf: unsupported b3dm version %d, want %d", version, b3dmVersion)
	}
	byteLength := binary.LittleEndian.Uint32(data[8:12])
	if int(byteLength) != len(data) {
		return B3DMDocument{}, fmt.Errorf("gltf: b3dm byteLength %d does not match actual size %d", byteLength, len(data))
	}
	ftJSON := binary.LittleEndian.Uint32(data[12:16])
	ftBin := binary.LittleEndian.Uint32(data[16:20])
	btJSON := binary.LittleEndian.Uint32(data[20:24])
	btBin := binary.LittleEndian.Uint32(data[24:28])

	tablesLength := int(ftJSON) + int(ftBin) + int(btJSON) + int(btBin)
	if b3dmHeaderSize+tablesLength > len(data) {
		return B3DMDocument{}, fmt.Errorf("gltf: b3dm table lengths overrun buffer")
	}

	offset := b3dmHeaderSize
	doc := B3DMDocument{}
	doc.FeatureTableJSON, offset = data[offset:offset+int(ftJSON)], offset+int(ftJSON)
	doc.FeatureTableBin, offset = data[offset:offset+int(ftBin)], offset+int(ftBin)
	doc.BatchTableJSON, offset = data[offset:offset+int(btJSON)], offset+int(btJSON)
	doc.BatchTableBin, offset = data[offset:offset+int(btBin)], offset+int(btBin)
	doc.GLB = data[offset:]
	return doc, nil
}
