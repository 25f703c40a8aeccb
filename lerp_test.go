// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expgradient

import (
	"fmt"
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestLerpEndpoints(t *testing.T) {
	for _, e := range []float32{0.5, 1, 2, 7.3} {
		c, err := Lerp(colors.Red, colors.Blue, 0, e)
		assert.NoError(t, err)
		assert.Equal(t, colors.Red, c)

		c, err = Lerp(colors.Red, colors.Blue, 1, e)
		assert.NoError(t, err)
		assert.Equal(t, colors.Blue, c)
	}
}

func TestLerpExponent(t *testing.T) {
	a := color.NRGBA{R: 255, A: 255}
	b := color.NRGBA{B: 255, A: 255}

	c, err := Lerp(a, b, 0.5, 2)
	assert.NoError(t, err)
	r, g, bl, al, err := SRGBConverter{}.ToChannels(c)
	assert.NoError(t, err)
	// f = 0.5^2 = 0.25
	tolassert.Equal(t, 0.75, r)
	tolassert.Equal(t, 0, g)
	tolassert.Equal(t, 0.25, bl)
	tolassert.Equal(t, 1, al)

	c, err = Lerp(a, b, 0.5, 0.5)
	assert.NoError(t, err)
	r, _, bl, _, err = SRGBConverter{}.ToChannels(c)
	assert.NoError(t, err)
	// f = 0.5^0.5 ~ 0.7071
	tolassert.Equal(t, 1-math32.Sqrt(0.5), r)
	tolassert.Equal(t, math32.Sqrt(0.5), bl)
}

func TestLerpLinearExponent(t *testing.T) {
	a := color.NRGBA{R: 200, G: 40, B: 10, A: 255}
	b := color.NRGBA{R: 20, G: 240, B: 110, A: 51}
	ar, ag, ab, aa, err := SRGBConverter{}.ToChannels(a)
	assert.NoError(t, err)
	br, bg, bb, ba, err := SRGBConverter{}.ToChannels(b)
	assert.NoError(t, err)

	for _, tf := range []float32{0.1, 0.25, 0.5, 0.9} {
		c, err := Lerp(a, b, tf, 1)
		assert.NoError(t, err)
		r, g, bl, al, err := SRGBConverter{}.ToChannels(c)
		assert.NoError(t, err)
		tolassert.Equal(t, ar+(br-ar)*tf, r)
		tolassert.Equal(t, ag+(bg-ag)*tf, g)
		tolassert.Equal(t, ab+(bb-ab)*tf, bl)
		tolassert.Equal(t, aa+(ba-aa)*tf, al)
	}
}

func TestLerpInvalidExponent(t *testing.T) {
	_, err := Lerp(colors.Red, colors.Blue, 0.5, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Lerp(colors.Red, colors.Blue, 0.5, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestLerpNilColor(t *testing.T) {
	_, err := Lerp(nil, colors.Blue, 0.5, 2)
	assert.ErrorIs(t, err, ErrUnsupportedColor)

	_, err = Lerp(colors.Red, nil, 0.5, 2)
	assert.ErrorIs(t, err, ErrUnsupportedColor)
}

// grayOnly is a converter that only understands [color.Gray],
// for testing converter injection and rejection.
type grayOnly struct{}

func (grayOnly) ToChannels(c color.Color) (r, g, b, a float32, err error) {
	gc, ok := c.(color.Gray)
	if !ok {
		return 0, 0, 0, 0, fmt.Errorf("%w: %T has no gray channel", ErrUnsupportedColor, c)
	}
	v := float32(gc.Y) / 255
	return v, v, v, 1, nil
}

func (grayOnly) FromChannels(r, g, b, a float32) color.Color {
	return color.Gray{Y: uint8(math32.Clamp(r, 0, 1)*255 + 0.5)}
}

func TestLerpWithConverter(t *testing.T) {
	c, err := LerpWith(grayOnly{}, color.Gray{Y: 0}, color.Gray{Y: 255}, 0.5, 1)
	assert.NoError(t, err)
	assert.Equal(t, color.Gray{Y: 128}, c)

	_, err = LerpWith(grayOnly{}, colors.Red, color.Gray{Y: 255}, 0.5, 1)
	assert.ErrorIs(t, err, ErrUnsupportedColor)
}
