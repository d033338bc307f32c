// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package gltf emits the nested binary containers a tile's mesh is shipped
// in: a glTF 1.0 binary (glb) document wrapped in a Batched 3D Model
// (b3dm) payload. This deliberately targets glTF 1.0, not glTF 2.0 — 3D
// Tiles b3dm v1 clients expect the older, JSON-named-object accessor
// layout, and upgrading the format silently would break them.
package gltf

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed template.json
var templateJSON []byte

// accessorComponentFloat and accessorComponentUshort are the glTF 1.0
// componentType constants used by this emitter's accessors.
const (
	accessorComponentUshort = 5123
	accessorComponentFloat  = 5126
)

// accessor mirrors the fields of a glTF 1.0 accessor object that this
// emitter patches per tile. Fields the template sets but this emitter
// never changes (componentType, type, bufferView) are decoded into and
// re-encoded from this struct's own fields unchanged.
type accessor struct {
	BufferView    string    `json:"bufferView"`
	ByteOffset    uint32    `json:"byteOffset"`
	ComponentType int       `json:"componentType"`
	Count         uint32    `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

// bufferView mirrors a glTF 1.0 bufferView object.
type bufferView struct {
	Buffer     string `json:"buffer"`
	ByteOffset uint32 `json:"byteOffset"`
	ByteLength uint32 `json:"byteLength"`
	Target     int    `json:"target,omitempty"`
}

// bufferInfo mirrors a glTF 1.0 buffer object.
type bufferInfo struct {
	ByteLength uint32 `json:"byteLength"`
	Type       string `json:"type,omitempty"`
	URI        string `json:"uri,omitempty"`
}

// Template holds the parsed base glTF document. It is immutable after
// construction and safe for concurrent use: Patch never mutates it, it
// only reads the unpatched top-level fields and overlays the per-tile
// accessor/bufferView/buffer values.
type Template struct {
	fields map[string]json.RawMessage
}

// ParseTemplate parses the embedded base glTF 1.0 JSON document. An error
// here is a construction-time, fatal configuration error: the template is
// expected to always parse, so a failure means the embedded asset itself
// is broken.
func ParseTemplate() (*Template, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(templateJSON, &fields); err != nil {
		return nil, fmt.Errorf("gltf: parse base template: %w", err)
	}
	for _, key := range []string{"accessors", "bufferViews", "buffers"} {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("gltf: base template missing %q", key)
		}
	}
	return &Template{fields: fields}, nil
}

// MeshCounts describes the tile-specific values that Patch overlays onto
// the base template.
type MeshCounts struct {
	IndexCount  uint32
	VertexCount uint32
	PosMin      [3]float32
	PosMax      [3]float32
}

// Patch clones the base template's JSON, overlaying the accessor counts,
// bounds, and buffer-view offsets computed for one tile's mesh. All fields
// the template sets but this function does not mention are inherited
// unchanged.
func (t *Template) Patch(c MeshCounts) ([]byte, error) {
	var accessors map[string]*accessor
	if err := json.Unmarshal(t.fields["accessors"], &accessors); err != nil {
		return nil, fmt.Errorf("gltf: decode accessors: %w", err)
	}
	var views map[string]*bufferView
	if err := json.Unmarshal(t.fields["bufferViews"], &views); err != nil {
		return nil, fmt.Errorf("gltf: decode bufferViews: %w", err)
	}
	var buffers map[string]*bufferInfo
	if err := json.Unmarshal(t.fields["buffers"], &buffers); err != nil {
		return nil, fmt.Errorf("gltf: decode buffers: %w", err)
	}

	ind, ok := accessors["accessor_ind"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing accessor_ind")
	}
	pos, ok := accessors["accessor_pos"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing accessor_pos")
	}
	nor, ok := accessors["accessor_nor"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing accessor_nor")
	}
	uv, ok := accessors["accessor_uv"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing accessor_uv")
	}
	indView, ok := views["bufferView_ind"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing bufferView_ind")
	}
	attrView, ok := views["bufferViews_attr"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing bufferViews_attr")
	}
	buf, ok := buffers["binary_glTF"]
	if !ok {
		return nil, fmt.Errorf("gltf: template missing buffer binary_glTF")
	}

	v := c.VertexCount
	ind.Count = c.IndexCount
	pos.Count, nor.Count, uv.Count = v, v, v
	pos.Min = append([]float32{}, c.PosMin[:]...)
	pos.Max = append([]float32{}, c.PosMax[:]...)
	pos.ByteOffset = 0
	nor.ByteOffset = 3 * 4 * v
	uv.ByteOffset = 6 * 4 * v

	indView.ByteOffset = 0
	indView.ByteLength = c.IndexCount * 2
	attrView.ByteOffset = c.IndexCount * 2
	attrView.ByteLength = (3*4 + 3*4 + 2*4) * v

	buf.ByteLength = attrView.ByteOffset + attrView.ByteLength

	accessorsJSON, err := json.Marshal(accessors)
	if err != nil {
		return nil, fmt.Errorf("gltf: encode accessors: %w", err)
	}
	viewsJSON, err := json.Marshal(views)
	if err != nil {
		return nil, fmt.Errorf("gltf: encode bufferViews: %w", err)
	}
	buffersJSON, err := json.Marshal(buffers)
	if err != nil {
		return nil, fmt.Errorf("gltf: encode buffers: %w", err)
	}

	patched := make(map[string]json.RawMessage, len(t.fields))
	for k, v := range t.fields {
		patched[k] = v
	}
	patched["accessors"] = accessorsJSON
	patched["bufferViews"] = viewsJSON
	patched["buffers"] = buffersJSON

	out, err := json.Marshal(patched)
	if err != nil {
		return nil, fmt.Errorf("gltf: encode patched document: %w", err)
	}
	return out, nil
}
