package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentRenderEmpty(t *testing.T) {
	doc := &Document{}
	got := doc.Render()
	assert.Equal(t,
		"<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n"+
			"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n"+
			"</svg>",
		got)
}

func TestCircleOmitsUnsetAttributes(t *testing.T) {
	c := Circle{Center: Point{X: 1, Y: 2}, Radius: 3}
	doc := &Document{}
	doc.Add(c)
	got := doc.Render()
	assert.Contains(t, got, `<circle cx="1" cy="2" r="3"/>`)
}

func TestCircleRendersSetAttributes(t *testing.T) {
	fill := Named("white")
	width := 1.0
	c := Circle{
		Center: Point{X: 0, Y: 0},
		Radius: 5,
		Style: PathStyle{
			Fill:        &fill,
			StrokeWidth: &width,
		},
	}
	doc := &Document{}
	doc.Add(c)
	got := doc.Render()
	assert.Contains(t, got, `fill="white"`)
	assert.Contains(t, got, `stroke-width="1"`)
}

func TestTextHTMLEncodesBody(t *testing.T) {
	text := Text{Data: `<A & "B" 'C'>`}
	doc := &Document{}
	doc.Add(text)
	got := doc.Render()
	assert.Contains(t, got, "&lt;A &amp; &quot;B&quot; &apos;C&apos;&gt;")
}

func TestPolylinePoints(t *testing.T) {
	p := Polyline{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	doc := &Document{}
	doc.Add(p)
	got := doc.Render()
	assert.Contains(t, got, `points="0,0 1,1"`)
}

func TestColorRendering(t *testing.T) {
	assert.Equal(t, "none", NoneColor.String())
	assert.Equal(t, "rgb(1,2,3)", RGB(1, 2, 3).String())
	assert.Equal(t, "rgba(1,2,3,0.5)", RGBA(1, 2, 3, 0.5).String())
	assert.Equal(t, "red", Named("red").String())
}
