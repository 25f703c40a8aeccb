// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expgradient

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/gradient"
)

// NewLinear subdivides the given stops with [Subdivide] and returns a
// new left-to-right [gradient.Linear] holding the result, ready for
// any renderer that understands image.Image gradients. Anchor points,
// units, spread, and transforms are left at the primitive's defaults;
// use its setters to change them.
func NewLinear(stops []Stop, exponent float32, subdivisions int) (*gradient.Linear, error) {
	sub, err := Subdivide(stops, exponent, subdivisions)
	if err != nil {
		return nil, err
	}
	g := gradient.NewLinear()
	for _, s := range sub {
		g.AddStop(colors.AsRGBA(s.Color), s.Pos)
	}
	return g, nil
}
