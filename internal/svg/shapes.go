package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D coordinate in SVG user units.
type Point struct {
	X, Y float64
}

// PathStyle holds the optional path-styling attributes shared by shapes.
// Each field's zero value means "unset" and is omitted from output, per
// svg.h's PathProps<Owner>/RenderAttrs, which only emits attributes that
// were explicitly set via its SetXxx methods.
type PathStyle struct {
	Fill           *Color
	Stroke         *Color
	StrokeWidth    *float64
	StrokeLineCap  string
	StrokeLineJoin string
}

func (p PathStyle) render(w *strings.Builder) {
	if p.Fill != nil {
		fmt.Fprintf(w, ` fill="%s"`, p.Fill.String())
	}
	if p.Stroke != nil {
		fmt.Fprintf(w, ` stroke="%s"`, p.Stroke.String())
	}
	if p.StrokeWidth != nil {
		fmt.Fprintf(w, ` stroke-width="%s"`, formatFloat(*p.StrokeWidth))
	}
	if p.StrokeLineCap != "" {
		fmt.Fprintf(w, ` stroke-linecap="%s"`, p.StrokeLineCap)
	}
	if p.StrokeLineJoin != "" {
		fmt.Fprintf(w, ` stroke-linejoin="%s"`, p.StrokeLineJoin)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Shape is any node that can appear inside a Document.
type Shape interface {
	render(w *strings.Builder, indent string)
}

// Circle is an SVG <circle>.
type Circle struct {
	Center Point
	Radius float64
	Style  PathStyle
}

func (c Circle) render(w *strings.Builder, indent string) {
	w.WriteString(indent)
	w.WriteString("<circle")
	fmt.Fprintf(w, ` cx="%s" cy="%s" r="%s"`, formatFloat(c.Center.X), formatFloat(c.Center.Y), formatFloat(c.Radius))
	c.Style.render(w)
	w.WriteString("/>")
}

// Polyline is an SVG <polyline>.
type Polyline struct {
	Points []Point
	Style  PathStyle
}

func (p Polyline) render(w *strings.Builder, indent string) {
	w.WriteString(indent)
	w.WriteString("<polyline points=\"")
	for i, pt := range p.Points {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.WriteString(formatFloat(pt.X))
		w.WriteByte(',')
		w.WriteString(formatFloat(pt.Y))
	}
	w.WriteString("\"")
	p.Style.render(w)
	w.WriteString("/>")
}

// Text is an SVG <text>.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   int
	FontFamily string
	FontWeight string // "" means unset
	Data       string
	Style      PathStyle
}

func (t Text) render(w *strings.Builder, indent string) {
	w.WriteString(indent)
	w.WriteString("<text")
	fmt.Fprintf(w, ` x="%s" y="%s" dx="%s" dy="%s" font-size="%d"`,
		formatFloat(t.Position.X), formatFloat(t.Position.Y),
		formatFloat(t.Offset.X), formatFloat(t.Offset.Y), t.FontSize)
	if t.FontFamily != "" {
		fmt.Fprintf(w, ` font-family="%s"`, t.FontFamily)
	}
	if t.FontWeight != "" {
		fmt.Fprintf(w, ` font-weight="%s"`, t.FontWeight)
	}
	t.Style.render(w)
	w.WriteString(">")
	w.WriteString(htmlEncode(t.Data))
	w.WriteString("</text>")
}

// htmlEncode escapes the five characters svg.h's HtmlEncodeString escapes,
// in the same order, so text bodies round-trip through an XML parser.
func htmlEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString("&quot;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Document is the root container: an ordered, heterogeneous list of shapes.
type Document struct {
	Children []Shape
}

// Add appends a shape to the document.
func (d *Document) Add(s Shape) {
	d.Children = append(d.Children, s)
}

const indentStep = "  "

// Render serialises the document to its full SVG text, per svg.h's
// preamble/indent/closing-tag convention (spec.md §4.6/§4.7).
func (d *Document) Render() string {
	var w strings.Builder
	w.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>` + "\n")
	w.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">` + "\n")
	for _, child := range d.Children {
		child.render(&w, indentStep)
		w.WriteString("\n")
	}
	w.WriteString("</svg>")
	return w.String()
}
