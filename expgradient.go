// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expgradient approximates exponential color interpolation
// between gradient stops. Ordinary gradient rendering blends each
// segment linearly; [Subdivide] splits every segment into many
// sub-stops whose colors follow a power-law curve, so that rendering
// the result with a plain linear-gradient primitive looks exponential.
//
// All functions are pure: they hold no state, never modify their
// inputs, and are safe to call concurrently.
package expgradient

import "image/color"

// Default curve parameters.
const (
	// DefaultExponent is the default power applied to the linear
	// fraction within a segment. 1 is linear; higher values start
	// slow and finish fast, lower values the reverse.
	DefaultExponent float32 = 2

	// DefaultSubdivisions is the default number of sub-stops
	// generated per original segment.
	DefaultSubdivisions = 32
)

// Stop is a single color anchor in a gradient.
type Stop struct {

	// the color of the stop
	Color color.Color

	// the position of the stop, conventionally between 0 and 1.
	// Positions are never clamped or sorted; stops are assumed to
	// already be ordered by ascending position.
	Pos float32
}

// EvenStops returns stops for the given colors, evenly spaced from
// position 0 to 1. A single color is placed at position 0.
func EvenStops(cs ...color.Color) []Stop {
	stops := make([]Stop, len(cs))
	for i, c := range cs {
		var pos float32
		if len(cs) > 1 {
			pos = float32(i) / float32(len(cs)-1)
		}
		stops[i] = Stop{c, pos}
	}
	return stops
}
