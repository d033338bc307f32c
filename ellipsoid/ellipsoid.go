// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package ellipsoid maps geodetic coordinates (longitude, latitude, height)
// onto a triaxial ellipsoid's Cartesian surface, the way a globe's lon/lat
// grid is projected onto a rendered mesh.
package ellipsoid

import (
	"fmt"
	"math"

	"github.com/tilecraft/terra3d/math/lin"
)

// Ellipsoid is a triaxial reference surface. A unit sphere is the special
// case RX=RY=RZ=1.
type Ellipsoid struct {
	RX, RY, RZ float64
}

// Validate reports a configuration error if any radius is not strictly
// positive.
func (e Ellipsoid) Validate() error {
	if e.RX <= 0 || e.RY <= 0 || e.RZ <= 0 {
		return fmt.Errorf("ellipsoid: radii must be strictly positive, got (%v,%v,%v)", e.RX, e.RY, e.RZ)
	}
	return nil
}

// ToCartesian converts a geodetic point (lon, lat, h) on ellipsoid e to a
// Cartesian position and outward surface normal. Height is measured along
// the ellipsoid normal from the surface.
func ToCartesian(lon, lat, h float64, e Ellipsoid) (pos, normal lin.V3) {
	cosLat, sinLat := math.Cos(lat), math.Sin(lat)
	cosLon, sinLon := math.Cos(lon), math.Sin(lon)

	n := lin.NewV3S(cosLat*cosLon, cosLat*sinLon, sinLat)
	n.Unit()

	k := lin.NewV3S(n.X*e.RX*e.RX, n.Y*e.RY*e.RY, n.Z*e.RZ*e.RZ)
	gamma := math.Sqrt(n.Dot(k))
	if gamma <= 0 {
		panic("ellipsoid: non-positive gamma under square root; invalid surface normal")
	}
	kept := lin.NewV3S(k.X/gamma, k.Y/gamma, k.Z/gamma)

	position := lin.NewV3S(n.X*h+kept.X, n.Y*h+kept.Y, n.Z*h+kept.Z)
	return *position, *n
}
