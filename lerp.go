// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expgradient

import (
	"errors"
	"fmt"
	"image/color"

	"cogentcore.org/core/math32"
)

var (
	// ErrInvalidParameter indicates a curve parameter outside its
	// valid range: a non-positive exponent, or fewer than one
	// subdivision. Parameters are rejected, never clamped.
	ErrInvalidParameter = errors.New("expgradient: invalid parameter")

	// ErrUnsupportedColor indicates a color whose channels cannot
	// be extracted, such as a nil color or one rejected by the
	// [ChannelConverter] in use.
	ErrUnsupportedColor = errors.New("expgradient: unsupported color")
)

// ChannelConverter converts between opaque color values and four
// normalized (0 to 1) RGBA channels. It is the boundary to whatever
// color representation the caller renders with; [SRGBConverter]
// covers everything implementing [color.Color].
type ChannelConverter interface {

	// ToChannels extracts the normalized red, green, blue, and
	// alpha channels of the given color. It returns an error
	// wrapping [ErrUnsupportedColor] if the color cannot provide
	// channel data.
	ToChannels(c color.Color) (r, g, b, a float32, err error)

	// FromChannels composes a color from normalized channels.
	FromChannels(r, g, b, a float32) color.Color
}

// SRGBConverter is the default [ChannelConverter]. It extracts
// straight (non-alpha-premultiplied) channels through
// [color.NRGBA64Model] and composes interpolated colors as
// [color.NRGBA64].
type SRGBConverter struct{}

func (SRGBConverter) ToChannels(c color.Color) (r, g, b, a float32, err error) {
	if c == nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: nil color", ErrUnsupportedColor)
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	const max = 0xffff
	return float32(n.R) / max, float32(n.G) / max, float32(n.B) / max, float32(n.A) / max, nil
}

func (SRGBConverter) FromChannels(r, g, b, a float32) color.Color {
	const max = 0xffff
	return color.NRGBA64{
		R: uint16(math32.Clamp(r, 0, 1)*max + 0.5),
		G: uint16(math32.Clamp(g, 0, 1)*max + 0.5),
		B: uint16(math32.Clamp(b, 0, 1)*max + 0.5),
		A: uint16(math32.Clamp(a, 0, 1)*max + 0.5),
	}
}

// Lerp is [LerpWith] with the default [SRGBConverter].
func Lerp(a, b color.Color, t, exponent float32) (color.Color, error) {
	return LerpWith(SRGBConverter{}, a, b, t, exponent)
}

// LerpWith returns the exponential interpolation between the two
// colors at the linear fraction t, which the caller must keep between
// 0 and 1. The fraction is warped to pow(t, exponent) and all four
// channels, alpha included, are blended by the warped fraction. The
// exponent must be positive; an exponent of 1 is standard linear
// interpolation. A t of exactly 0 or 1 returns the corresponding
// input color value itself.
func LerpWith(cv ChannelConverter, a, b color.Color, t, exponent float32) (color.Color, error) {
	if exponent <= 0 {
		return nil, fmt.Errorf("%w: exponent must be positive, got %g", ErrInvalidParameter, exponent)
	}
	switch t {
	case 0:
		return a, nil
	case 1:
		return b, nil
	}
	ar, ag, ab, aa, err := cv.ToChannels(a)
	if err != nil {
		return nil, err
	}
	br, bg, bb, ba, err := cv.ToChannels(b)
	if err != nil {
		return nil, err
	}
	f := math32.Pow(t, exponent)
	return cv.FromChannels(
		ar+(br-ar)*f,
		ag+(bg-ag)*f,
		ab+(bb-ab)*f,
		aa+(ba-aa)*f,
	), nil
}
