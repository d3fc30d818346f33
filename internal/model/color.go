package model

import "math/rand"

// Color is an RGB triple assigned to a node at construction
type Color struct {
	R, G, B uint8
}

// ColorProvider returns the color for a newly constructed node
type ColorProvider func() Color

// colorProvider is consulted by New; replaceable so tests get
// deterministic colors instead of random ones
var colorProvider ColorProvider = RandomColor

// SetColorProvider installs p as the color source for New and returns
// the previous provider so callers can restore it
func SetColorProvider(p ColorProvider) ColorProvider {
	prev := colorProvider
	colorProvider = p
	return prev
}

// RandomColor samples each channel uniformly from [0,255]
func RandomColor() Color {
	return Color{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
	}
}
