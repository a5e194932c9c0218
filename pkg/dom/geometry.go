package dom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Box is an element's intrinsic layout box, relative to its nearest
// positioned ancestor.
type Box struct {
	Left, Top     float64
	Width, Height float64
}

// Right returns the right edge.
func (b Box) Right() float64 { return b.Left + b.Width }

// Bottom returns the bottom edge.
func (b Box) Bottom() float64 { return b.Top + b.Height }

// String formats the box as "left,top,width,height".
func (b Box) String() string {
	parts := []float64{b.Left, b.Top, b.Width, b.Height}
	out := make([]string, len(parts))
	for i, v := range parts {
		out[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(out, ",")
}

// ParseBox parses the "left,top,width,height" form written by Box.String.
func ParseBox(s string) (Box, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Box{}, fmt.Errorf("box %q: want 4 comma separated numbers, got %d", s, len(fields))
	}
	var v [4]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return Box{}, fmt.Errorf("box %q: %w", s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return Box{}, fmt.Errorf("box %q: negative size", s)
	}
	return Box{Left: v[0], Top: v[1], Width: v[2], Height: v[3]}, nil
}

// Size is a measured width and height.
type Size struct {
	Width, Height float64
}

// Measurer computes the natural size of elements that have no explicit box.
// A maxWidth of zero means unconstrained.
type Measurer interface {
	Measure(el *Element, maxWidth float64) Size
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(el *Element, maxWidth float64) Size

// Measure implements Measurer.
func (f MeasureFunc) Measure(el *Element, maxWidth float64) Size {
	return f(el, maxWidth)
}

// TextMeasurer sizes elements from their text content with a fixed-pitch
// font model: every rune is CharWidth wide, lines wrap at maxWidth.
type TextMeasurer struct {
	CharWidth  float64
	LineHeight float64
	Padding    float64 // applied on every side
}

// DefaultTextMeasurer approximates a 12px sans-serif tooltip body.
var DefaultTextMeasurer = TextMeasurer{CharWidth: 7, LineHeight: 16, Padding: 8}

// Measure implements Measurer.
func (m TextMeasurer) Measure(el *Element, maxWidth float64) Size {
	runes := utf8.RuneCountInString(el.TextContent())
	if runes == 0 {
		return Size{}
	}
	textWidth := float64(runes) * m.CharWidth
	width := textWidth + 2*m.Padding
	lines := 1.0
	if maxWidth > 0 && width > maxWidth {
		inner := maxWidth - 2*m.Padding
		if inner < m.CharWidth {
			inner = m.CharWidth
		}
		lines = math.Ceil(textWidth / inner)
		width = maxWidth
	}
	return Size{Width: width, Height: lines*m.LineHeight + 2*m.Padding}
}

// SetBox sets the intrinsic box and marks the element as explicitly sized.
func (e *Element) SetBox(b Box) {
	e.box = b
	e.sized = true
}

// Box returns the intrinsic box.
func (e *Element) Box() Box {
	return e.box
}

// Sized reports whether SetBox was called.
func (e *Element) Sized() bool {
	return e.sized
}

// rendered reports whether e takes part in layout: connected and not
// display:none itself or through an ancestor.
func (e *Element) rendered() bool {
	if !e.IsConnected() {
		return false
	}
	for n := e; n != nil; n = n.parent {
		if n.style.Get("display") == "none" {
			return false
		}
	}
	return true
}

func (e *Element) natural(maxWidth float64) Size {
	if e.sized {
		return Size{Width: e.box.Width, Height: e.box.Height}
	}
	if e.doc == nil || e.doc.measurer == nil {
		return Size{}
	}
	return e.doc.measurer.Measure(e, maxWidth)
}

// OffsetLeft returns the left position, honouring a pixel "left" style.
func (e *Element) OffsetLeft() float64 {
	if v, ok := e.style.Pixels("left"); ok {
		return v
	}
	return e.box.Left
}

// OffsetTop returns the top position, honouring a pixel "top" style.
func (e *Element) OffsetTop() float64 {
	if v, ok := e.style.Pixels("top"); ok {
		return v
	}
	return e.box.Top
}

// ClientWidth returns the laid-out width, honouring a pixel "width" style.
// Unrendered elements report zero.
func (e *Element) ClientWidth() float64 {
	if !e.rendered() {
		return 0
	}
	if v, ok := e.style.Pixels("width"); ok {
		return v
	}
	return e.natural(0).Width
}

// ClientHeight returns the laid-out height. A pixel "height" style wins;
// otherwise the height is measured at the current client width.
func (e *Element) ClientHeight() float64 {
	if !e.rendered() {
		return 0
	}
	if v, ok := e.style.Pixels("height"); ok {
		return v
	}
	if e.sized {
		return e.box.Height
	}
	maxWidth := 0.0
	if v, ok := e.style.Pixels("width"); ok {
		maxWidth = v
	}
	return e.natural(maxWidth).Height
}

// OffsetWidth returns the rendered width. The model has no borders, so it
// equals ClientWidth.
func (e *Element) OffsetWidth() float64 {
	return e.ClientWidth()
}

// OffsetHeight returns the rendered height.
func (e *Element) OffsetHeight() float64 {
	return e.ClientHeight()
}

// IsVisible reports whether e has a rendered box with non-zero width or height.
func (e *Element) IsVisible() bool {
	return e.OffsetWidth() > 0 || e.OffsetHeight() > 0
}
