// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package terra3d

import "errors"

// Construction errors. These are fatal: a Generator that fails to
// construct must not be used.
var (
	// ErrInvalidPersistence reports persistence <= 0 or >= 1.
	ErrInvalidPersistence = errors.New("terra3d: persistence must be in the open interval (0,1)")
	// ErrInvalidMaximumDisplacement reports a non-positive displacement.
	ErrInvalidMaximumDisplacement = errors.New("terra3d: maximumDisplacement must be > 0")
	// ErrInvalidDepth reports a generation or content generation depth
	// too large to be safely used as a shift/exponent or too small
	// (negative) to be meaningful.
	ErrInvalidDepth = errors.New("terra3d: depth out of representable range")
	// ErrInvalidEllipsoid reports a non-positive ellipsoid radius.
	ErrInvalidEllipsoid = errors.New("terra3d: ellipsoid radii must be strictly positive")
	// ErrTemplateParse reports a failure to parse the embedded base
	// glTF template; this should never happen with an unmodified build.
	ErrTemplateParse = errors.New("terra3d: base glTF template failed to parse")
)

// ErrIndexOverflow is a domain error on inputs: the requested tile's mesh
// grid would need more than 65535 vertices to represent with a 16-bit
// index, so generateTerrain cannot produce it.
var ErrIndexOverflow = errors.New("terra3d: mesh grid exceeds the 16-bit vertex index limit")

// maxRepresentableDepth bounds GenerationDepth and ContentGenerationDepth
// to values that cannot overflow the int-based shifts and uint64 tile
// indices used throughout this package.
const maxRepresentableDepth = 30
