// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package noise is a deterministic multi-octave lattice value-noise
// generator. It is used by height fields that need a parent tile and its
// children to agree on heights at shared boundary points: the same point
// evaluated with the same octave count always returns the same value, on
// any machine, on any call.
//
// This is lattice value noise, not simplex or Perlin gradient noise: every
// integer lattice point gets a pseudo-random scalar from a hash of its
// coordinates, and intermediate points are found by cosine-eased
// interpolation between the surrounding lattice values.
package noise

import "math"

// seeds are the per-dimension multipliers used by the lattice hash. Only
// the first D entries are used for a D-dimensional sample.
var seeds = [9]float64{
	12.989, 78.2342, 352.5345, 8448.56, 389.335,
	5232.545, 23.43243, 234.4347, 84.435,
}

// Config holds the per-octave shape of the noise field: how fast the
// lattice is traversed (baseFrequency/baseWavelength) and how quickly
// higher octaves are attenuated (persistence).
type Config struct {
	BaseWavelength float64
	BaseFrequency  float64
	Persistence    float64
}

// hash maps a lattice point to a pseudo-random value in [-1, 1]. The dot
// product of the point with the seed vector is fed through sin and scaled
// by a large irrational-looking constant so the fractional part is
// effectively random.
func hash(dot float64) float64 {
	h := math.Sin(dot) * 43758.5453
	v := h - math.Floor(h)
	return 2*v - 1
}

// ease applies cosine interpolation easing to a linear parameter t in
// [0, 1], giving a smooth zero-derivative-at-the-endpoints blend.
func ease(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lattice2 hashes a 2D integer lattice point.
func lattice2(ix, iy int) float64 {
	return hash(float64(ix)*seeds[0] + float64(iy)*seeds[1])
}

// lattice3 hashes a 3D integer lattice point.
func lattice3(ix, iy, iz int) float64 {
	return hash(float64(ix)*seeds[0] + float64(iy)*seeds[1] + float64(iz)*seeds[2])
}

// Sample2 evaluates the D=2 noise field at point p, summing the given
// number of octaves per cfg. The scratch buffer is the four lattice
// corners surrounding p at each octave; it never escapes the stack.
func Sample2(p [2]float64, octaves int, cfg Config) float64 {
	total := 0.0
	amplitude := 1.0
	for k := 0; k < octaves; k++ {
		freq := cfg.BaseFrequency * math.Exp2(float64(k)) / cfg.BaseWavelength
		sx := p[0] * freq
		sy := p[1] * freq
		ix, iy := math.Floor(sx), math.Floor(sy)
		fx, fy := sx-ix, sy-iy

		var corners [4]float64 // (0,0) (1,0) (0,1) (1,1)
		corners[0] = lattice2(int(ix), int(iy))
		corners[1] = lattice2(int(ix)+1, int(iy))
		corners[2] = lattice2(int(ix), int(iy)+1)
		corners[3] = lattice2(int(ix)+1, int(iy)+1)

		tx, ty := ease(fx), ease(fy)
		a := lerp(corners[0], corners[1], tx)
		b := lerp(corners[2], corners[3], tx)
		total += lerp(a, b, ty) * amplitude
		amplitude *= cfg.Persistence
	}
	return total
}

// Sample3 evaluates the D=3 noise field at point p, summing the given
// number of octaves per cfg. The scratch buffer is the eight lattice
// corners surrounding p at each octave.
func Sample3(p [3]float64, octaves int, cfg Config) float64 {
	total := 0.0
	amplitude := 1.0
	for k := 0; k < octaves; k++ {
		freq := cfg.BaseFrequency * math.Exp2(float64(k)) / cfg.BaseWavelength
		sx := p[0] * freq
		sy := p[1] * freq
		sz := p[2] * freq
		ix, iy, iz := math.Floor(sx), math.Floor(sy), math.Floor(sz)
		fx, fy, fz := sx-ix, sy-iy, sz-iz

		var corners [8]float64 // x fastest, then y, then z
		xi, yi, zi := int(ix), int(iy), int(iz)
		corners[0] = lattice3(xi, yi, zi)
		corners[1] = lattice3(xi+1, yi, zi)
		corners[2] = lattice3(xi, yi+1, zi)
		corners[3] = lattice3(xi+1, yi+1, zi)
		corners[4] = lattice3(xi, yi, zi+1)
		corners[5] = lattice3(xi+1, yi, zi+1)
		corners[6] = lattice3(xi, yi+1, zi+1)
		corners[7] = lattice3(xi+1, yi+1, zi+1)

		tx, ty, tz := ease(fx), ease(fy), ease(fz)
		// interpolate along x, then y, then z.
		a0 := lerp(corners[0], corners[1], tx)
		a1 := lerp(corners[2], corners[3], tx)
		a2 := lerp(corners[4], corners[5], tx)
		a3 := lerp(corners[6], corners[7], tx)
		b0 := lerp(a0, a1, ty)
		b1 := lerp(a2, a3, ty)
		total += lerp(b0, b1, tz) * amplitude
		amplitude *= cfg.Persistence
	}
	return total
}
