package tooltip

import "math"

// Rect is an anchor's layout box relative to its nearest positioned ancestor.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Layout holds the fixed measurements of the placement algorithm.
type Layout struct {
	// ArrowSize is the gap the arrow occupies between anchor and popup.
	ArrowSize float64
	// Clearance is the extra space added after the arrow.
	Clearance float64
	// MinWidth is the narrowest a popup is shrunk to before it flips to the top.
	MinWidth float64
}

// DefaultLayout is a 10px arrow, 5px clearance and a 130px minimum width.
var DefaultLayout = Layout{ArrowSize: 10, Clearance: 5, MinWidth: 130}

// Geometry is the input of a placement run.
type Geometry struct {
	Anchor        Rect
	PopupWidth    float64
	PopupHeight   float64
	ViewportWidth float64
	ScrollX       float64
}

// Placement is the output of a placement run.
type Placement struct {
	Top   float64 `json:"top"`
	Left  float64 `json:"left"`
	Width float64 `json:"width"`

	// ArrowLeft is only meaningful when ArrowSet is true (top and bottom).
	ArrowLeft float64 `json:"arrowLeft"`
	ArrowSet  bool    `json:"arrowSet"`

	Orientation        Orientation `json:"orientation"`
	OrientationChanged bool        `json:"orientationChanged"`
}

// NaturalArrowLeft is the arrow offset before clamping: the arrow is
// 2*ArrowSize wide and centred on the popup.
func (l Layout) NaturalArrowLeft(popupWidth float64) float64 {
	return popupWidth/2 - l.ArrowSize
}

// RestrictWidth shrinks the popup to the space available on its side.
// Beside the anchor, a popup that cannot get MinWidth flips to the top; the
// top rule then still applies. Above or below, a popup wider than the
// viewport shrinks to the viewport, but not under MinWidth.
func (l Layout) RestrictWidth(o Orientation, anchor Rect, popupWidth, viewportWidth float64) (float64, Orientation) {
	width := popupWidth
	arrowHorizontal := l.ArrowSize * 2

	if o.Horizontal() {
		space := anchor.Left
		if o == OrientationRight {
			space = viewportWidth - (anchor.Left + anchor.Width)
		}
		if space < width+arrowHorizontal {
			if space < l.MinWidth+arrowHorizontal {
				o = OrientationTop
			} else {
				width = space - arrowHorizontal
			}
		}
	}

	if !o.Horizontal() && viewportWidth < width {
		width = math.Max(viewportWidth, l.MinWidth)
	}

	return width, o
}

// Place computes the popup position for an already restricted width.
func (l Layout) Place(o Orientation, g Geometry) Placement {
	a := g.Anchor
	w, h := g.PopupWidth, g.PopupHeight
	p := Placement{Width: w, Orientation: o}

	switch o {
	case OrientationLeft:
		p.Left = a.Left - w - l.ArrowSize - l.Clearance
		p.Top = a.Top - (h/2 - a.Height/2)
	case OrientationRight:
		p.Left = a.Left + a.Width + l.ArrowSize + l.Clearance
		p.Top = a.Top - (h/2 - a.Height/2)
	case OrientationBottom:
		p.Top = a.Top + a.Height + l.ArrowSize + l.Clearance
		p.Left = a.Left - (w/2 - a.Width/2) + l.ArrowSize
		p.Left, p.ArrowLeft = l.clampHorizontal(p.Left, w, g.ViewportWidth, g.ScrollX)
		p.ArrowSet = true
	default:
		p.Orientation = OrientationTop
		p.Top = a.Top - h - l.ArrowSize - l.Clearance
		p.Left = a.Left - (w/2 - a.Width/2) + l.ArrowSize
		p.Left, p.ArrowLeft = l.clampHorizontal(p.Left, w, g.ViewportWidth, g.ScrollX)
		p.ArrowSet = true
	}
	return p
}

// clampHorizontal pulls a popup that overflows the scrolled viewport back
// in and moves the arrow the other way so it keeps pointing at the anchor.
// The arrow stays at least 2*ArrowSize away from either popup edge.
func (l Layout) clampHorizontal(left, width, viewportWidth, scrollX float64) (float64, float64) {
	arrowLeft := l.NaturalArrowLeft(width)
	limit := l.ArrowSize * 2

	if offset := scrollX - left; offset > 0 {
		left = scrollX
		arrowLeft = math.Max(arrowLeft-offset, limit)
		return left, arrowLeft
	}

	if overflow := left + width - (viewportWidth + scrollX); overflow > 0 {
		left -= overflow
		arrowLeft = math.Min(arrowLeft+overflow, width-limit)
	}
	return left, arrowLeft
}

// Fit restricts the width and places the popup in one step. PopupHeight is
// used as is; callers that reflow text measure the height at the restricted
// width and call Place instead.
func (l Layout) Fit(o Orientation, g Geometry) Placement {
	width, orientation := l.RestrictWidth(o, g.Anchor, g.PopupWidth, g.ViewportWidth)
	g.PopupWidth = width
	p := l.Place(orientation, g)
	p.OrientationChanged = orientation != o
	return p
}

// AlignArrow returns the arrow offset that points at the anchor's centre
// for a popup whose position is left to the page (non-auto modes).
func AlignArrow(anchor Rect, popupLeft float64) float64 {
	return anchor.Left + anchor.Width/2 - popupLeft
}
