// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expgradient

import "fmt"

// Subdivide is [SubdivideWith] with the default [SRGBConverter].
func Subdivide(stops []Stop, exponent float32, subdivisions int) ([]Stop, error) {
	return SubdivideWith(SRGBConverter{}, stops, exponent, subdivisions)
}

// SubdivideWith splits the segment between each pair of consecutive
// stops into subdivisions sub-stops whose colors follow the
// pow(t, exponent) curve given by [LerpWith], so that the result
// rendered with plain linear blending approximates an exponential
// gradient over the original stops. Positions are interpolated
// linearly: sub-stops stay evenly spaced within their segment and
// only the colors bend.
//
// The exponent must be positive and subdivisions at least 1;
// otherwise an error wrapping [ErrInvalidParameter] is returned.
// Gradients with fewer than two stops are returned unchanged. The
// final stop of the result is the original final stop value. The
// input slice is never modified; for inputs with at least two stops
// the result has (len(stops)-1)*subdivisions + 1 stops.
func SubdivideWith(cv ChannelConverter, stops []Stop, exponent float32, subdivisions int) ([]Stop, error) {
	if exponent <= 0 {
		return nil, fmt.Errorf("%w: exponent must be positive, got %g", ErrInvalidParameter, exponent)
	}
	if subdivisions < 1 {
		return nil, fmt.Errorf("%w: subdivisions must be at least 1, got %d", ErrInvalidParameter, subdivisions)
	}
	if len(stops) <= 1 {
		return stops, nil
	}
	for _, s := range stops {
		if _, _, _, _, err := cv.ToChannels(s.Color); err != nil {
			return nil, err
		}
	}
	res := make([]Stop, 0, (len(stops)-1)*subdivisions+1)
	for i := 0; i < len(stops)-1; i++ {
		cur, next := stops[i], stops[i+1]
		for step := 0; step < subdivisions; step++ {
			// t stays below 1: each segment's end stop is emitted
			// by the next segment, or as the final trailing stop.
			t := float32(step) / float32(subdivisions)
			c, err := LerpWith(cv, cur.Color, next.Color, t, exponent)
			if err != nil {
				return nil, err
			}
			res = append(res, Stop{c, cur.Pos + (next.Pos-cur.Pos)*t})
		}
	}
	// the trailing stop is the original value, not a reconstruction
	return append(res, stops[len(stops)-1]), nil
}
