// Package svg is a small typed tree of SVG shapes (Circle, Polyline, Text,
// Document) with optional path-style attributes, serialised to the exact
// indented document shape the renderer needs.
//
// Grounded in original_source/transport-catalogue/svg.h: the Color variant
// (Rgb/Rgba/named string), the PathProps CRTP template (ported here as
// plain optional *Color/*float64 pointer fields and empty-means-unset
// string fields instead of a generic mixin, since
// Go has no CRTP equivalent), and Object/ObjectContainer's owning-container
// shape, generalised to Go's interface-based polymorphism.
package svg

import (
	"fmt"
	"strconv"
)

// Color is an SVG paint value: a bare string (named colour or "none"), an
// RGB triple, or an RGBA quadruple.
type Color struct {
	value string
}

// NoneColor renders as the literal "none".
var NoneColor = Color{value: "none"}

// Named wraps an arbitrary SVG colour keyword or string, used as-is.
func Named(name string) Color {
	return Color{value: name}
}

// RGB builds an "rgb(r,g,b)" colour.
func RGB(r, g, b int) Color {
	return Color{value: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)}
}

// RGBA builds an "rgba(r,g,b,a)" colour; a is in [0,1].
func RGBA(r, g, b int, a float64) Color {
	return Color{value: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, formatAlpha(a))}
}

// String returns the colour's SVG attribute value.
func (c Color) String() string { return c.value }

// IsZero reports whether c is the unset zero value, distinct from an
// explicitly set NoneColor.
func (c Color) IsZero() bool { return c.value == "" }

func formatAlpha(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
