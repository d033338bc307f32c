// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package gltf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	glbHeaderSize    = 20
	glbMagic         = "glTF"
	glbVersion       = 1
	glbFormatJSON    = 0
	jsonPadAlignment = 4
)

// EncodeGLB assembles a glTF 1.0 binary document: a 20-byte header, the
// patched JSON chunk padded with ASCII spaces to a multiple of 4 bytes,
// then the raw binary body (this emitter's packed mesh buffer). All
// multi-byte header fields are little-endian.
func EncodeGLB(json, body []byte) []byte {
	contentLength := padLen(len(json), jsonPadAlignment)
	total := glbHeaderSize + contentLength + len(body)

	buf := bytes.NewBuffer(make([]byte, 0, total))
	buf.WriteString(glbMagic)
	writeU32(buf, glbVersion)
	writeU32(buf, uint32(total))
	writeU32(buf, uint32(contentLength))
	writeU32(buf, glbFormatJSON)

	buf.Write(json)
	for i := len(json); i < contentLength; i++ {
		buf.WriteByte(' ')
	}
	buf.Write(body)
	return buf.Bytes()
}

// GLBDocument is the decoded form of a glb container: its JSON chunk
// (with trailing space padding trimmed) and its raw binary body.
type GLBDocument struct {
	JSON []byte
	Body []byte
}

// DecodeGLB parses a glb container back into its JSON and binary parts.
// It is the inverse of EncodeGLB, scoped to exactly the header shape this
// package writes.
func DecodeGLB(data []byte) (GLBDocument, error) {
	if len(data) < glbHeaderSize {
		return GLBDocument{}, fmt.Errorf("gltf: glb too short for header: %d bytes", len(data))
	}
	if string(data[0:4]) != glbMagic {
		return GLBDocument{}, fmt.Errorf("gltf: bad glb magic %q", data[0:4])
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != glbVersion {
		return GLBDocument{}, fmt.Errorf("gltf: unsupported glb version %d, want %d", version, glbVersion)
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	contentLength := binary.LittleEndian.Uint32(data[12:16])
	format := binary.LittleEndian.Uint32(data[16:20])
	if format != glbFormatJSON {
		return GLBDocument{}, fmt.Errorf("gltf: unsupported glb content format %d", format)
	}
	if int(total) != len(data) {
		return GLBDocument{}, fmt.Errorf("gltf: glb length %d does not match actual size %d", total, len(data))
	}
	jsonStart, jsonEnd := glbHeaderSize, glbHeaderSize+int(contentLength)
	if jsonEnd > len(data) {
		return GLBDocument{}, fmt.Errorf("gltf: glb content length %d overruns buffer", contentLength)
	}
	jsonChunk := bytes.TrimRight(data[jsonStart:jsonEnd], " ")
	return GLBDocument{JSON: jsonChunk, Body: data[jsonEnd:]}, nil
}

func padLen(n, align int) int {
	rem := n % align
	if rem == 0 {
		return n
	}
	return n + (align - rem)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}
