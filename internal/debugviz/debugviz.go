// Copyright © 2024 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package debugviz renders a height grid as a colour image for visual
// sanity-checking a generated tile. This is for debugging only; colour is
// based on height, not on any land classification.
package debugviz

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// huePhase turns a seed into a hue rotation in turns [0, 1), so distinct
// seeds give visibly distinct color ramps without changing what the ramp
// represents (height above or below split).
func huePhase(seed int64) float64 {
	const golden = 0.6180339887498949
	f := math.Mod(float64(seed)*golden, 1)
	if f < 0 {
		f++
	}
	return f
}

// hsv converts a hue (in turns, wrapping), saturation and value in [0,1]
// to an opaque NRGBA color.
func hsv(hue, s, v float64) color.NRGBA {
	hue -= math.Floor(hue)
	h6 := hue * 6
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h6, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h6 < 1:
		r, g, b = c, x, 0
	case h6 < 2:
		r, g, b = x, c, 0
	case h6 < 3:
		r, g, b = 0, c, x
	case h6 < 4:
		r, g, b = 0, x, c
	case h6 < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255), 255}
}

// paint separates "underwater" (darker blue) from "land" (green)
// shading; heights are expected in the same noise-normalized range the
// height oracle produces (roughly [-maximumDisplacement, maximumDisplacement]).
// phase rotates both base hues by the same amount, so a config's Seed
// changes the ramp's palette without changing which pixels read as land
// vs. water.
func paint(h, split, phase float64) color.NRGBA {
	switch {
	case h > split:
		return hsv(1.0/3+phase, 1, 1) // land: green, hue-rotated by phase
	default:
		level := 1 / (1 + math.Exp(-(h-split)/10)) // smooth falloff near the shoreline
		return hsv(0.6+phase, 1, level)            // water: blue, hue-rotated by phase
	}
}

// Render builds a grid-resolution colour image from heights, then scales
// it up to width x height pixels with a nearest-neighbour scaler so each
// source cell stays a crisp block. seed perturbs only the color ramp's hue
// (see huePhase); it has no effect on which heights count as land or water.
func Render(heights [][]float64, split float64, seed int64, width, height int) *image.NRGBA {
	gw, gh := len(heights), 0
	if gw > 0 {
		gh = len(heights[0])
	}
	phase := huePhase(seed)
	small := image.NewNRGBA(image.Rect(0, 0, max(gw, 1), max(gh, 1)))
	for x := 0; x < gw; x++ {
		for y := 0; y < gh; y++ {
			small.SetNRGBA(x, y, paint(heights[x][y], split, phase))
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Over, nil)
	return out
}
