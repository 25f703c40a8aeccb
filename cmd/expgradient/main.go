// Copyright (c) 2026, The Expgradient Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command expgradient prints a terminal preview of a gradient before
// and after exponential subdivision. Stops are given as positional
// arguments, either CSS color names or #rrggbb hex values, and are
// spaced evenly.
//
//	expgradient -exponent 3 -subdivisions 32 black '#4287f5'
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
	"github.com/blsage/expgradient"
	"github.com/muesli/termenv"
)

func main() {
	exponent := flag.Float64("exponent", float64(expgradient.DefaultExponent), "power applied to the blend fraction within each segment")
	subdivisions := flag.Int("subdivisions", expgradient.DefaultSubdivisions, "sub-stops generated per segment")
	width := flag.Int("width", 64, "preview width in terminal cells")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"black", "white"}
	}
	cs := make([]color.Color, len(args))
	for i, a := range args {
		c, err := parseColor(a)
		if err != nil {
			slog.Error("invalid color", "arg", a, "err", err)
			os.Exit(1)
		}
		cs[i] = c
	}
	stops := expgradient.EvenStops(cs...)

	linear := gradient.NewLinear()
	for _, s := range stops {
		linear.AddStop(colors.AsRGBA(s.Color), s.Pos)
	}
	exp, err := expgradient.NewLinear(stops, float32(*exponent), *subdivisions)
	if err != nil {
		slog.Error("subdivision failed", "err", err)
		os.Exit(1)
	}

	fmt.Println("linear:")
	printRow(linear, *width)
	fmt.Printf("exponential (exponent=%g, subdivisions=%d):\n", *exponent, *subdivisions)
	printRow(exp, *width)
}

func parseColor(s string) (color.RGBA, error) {
	if strings.HasPrefix(s, "#") {
		return colors.FromHex(s)
	}
	return colors.FromName(s)
}

// printRow paints one row of background-colored cells sampling the
// gradient across the given width.
func printRow(g gradient.Gradient, width int) {
	g.Update(1, math32.B2(0, 0, float32(width), 1), math32.Identity2())
	var b strings.Builder
	for x := 0; x < width; x++ {
		c := colors.AsRGBA(g.At(x, 0))
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		b.WriteString(termenv.String(" ").Background(termenv.RGBColor(hex)).String())
	}
	fmt.Println(b.String())
}
