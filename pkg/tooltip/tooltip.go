package tooltip

import (
	"strconv"

	"github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/dom"
)

// Class names written on the popup tree.
const (
	ClassTooltip = "tooltip"
	ClassArrow   = "arrow"
	ClassClose   = "close"
)

// binding is one listener registration, kept so Destroy can remove exactly
// what was added.
type binding struct {
	target    *dom.Element
	eventType string
	listener  *dom.Listener
	capture   bool
}

// Tooltip is one popup attached to an anchor element.
type Tooltip struct {
	anchor *dom.Element
	config Config

	popup *dom.Element
	arrow *dom.Element
	close *dom.Element

	listenerShow  *dom.Listener
	listenerHide  *dom.Listener
	listenerClose *dom.Listener
	bindings      []binding

	state    State
	zIndex   int
	registry *Registry
}

func newTooltip(r *Registry, anchor *dom.Element, cfg Config) *Tooltip {
	t := &Tooltip{
		anchor:   anchor,
		config:   cfg,
		registry: r,
	}
	// Tokens are created once per instance so detach matches attach.
	t.listenerShow = dom.NewListener(func(ev *dom.Event) {
		ev.PreventDefault()
		ev.StopPropagation()
		t.Show()
	})
	t.listenerHide = dom.NewListener(func(ev *dom.Event) {
		ev.PreventDefault()
		ev.StopPropagation()
		t.Hide()
	})
	t.listenerClose = dom.NewListener(func(ev *dom.Event) {
		ev.PreventDefault()
		ev.StopPropagation()
		t.Hide()
	})
	return t
}

// Anchor returns the element the tooltip is attached to.
func (t *Tooltip) Anchor() *dom.Element { return t.anchor }

// Popup returns the popup node. It is detached once the tooltip is destroyed.
func (t *Tooltip) Popup() *dom.Element { return t.popup }

// Arrow returns the arrow node inside the popup.
func (t *Tooltip) Arrow() *dom.Element { return t.arrow }

// Config returns the effective configuration.
func (t *Tooltip) Config() Config { return t.config }

// State returns the lifecycle state.
func (t *Tooltip) State() State { return t.state }

// Visible reports whether the popup is shown.
func (t *Tooltip) Visible() bool { return t.state == StateVisible }

// ZIndex returns the stacking order assigned by the last Show, or 0.
func (t *Tooltip) ZIndex() int { return t.zIndex }

// build creates the popup tree: optional close link, body text, arrow.
func (t *Tooltip) build(text string) {
	doc := t.anchor.Document()
	cfg := t.config

	popup := doc.CreateElement("div")
	popup.SetClassName(string(cfg.Orientation) + " " + ClassTooltip + " " + cfg.Class)
	popup.SetAttr("tabindex", "-1")
	popup.SetAttr("role", "tooltip")

	if cfg.CloseIcon {
		closeLink := doc.CreateElement("a")
		closeLink.SetClassName("close icon icon_cross")
		closeLink.SetAttr("href", "#")
		closeLink.SetAttr("aria-label", "Close")
		popup.AppendChild(closeLink)
		t.listen(closeLink, dom.EventClick, t.listenerClose, false)
		t.close = closeLink
	}

	popup.AppendChild(doc.CreateText(text))

	arrow := doc.CreateElement("div")
	arrow.SetClassName(ClassArrow)
	popup.AppendChild(arrow)

	t.popup = popup
	t.arrow = arrow
	t.state = StateBuilt
}

func (t *Tooltip) listen(target *dom.Element, eventType string, l *dom.Listener, capture bool) {
	target.AddEventListener(eventType, l, capture)
	t.bindings = append(t.bindings, binding{target, eventType, l, capture})
}

// hidesOnBlur reports whether losing focus hides the popup.
func (t *Tooltip) hidesOnBlur() bool {
	switch t.config.ShowOn {
	case ShowOnHover, ShowOnFocus, ShowOnLoad, ShowOnManual:
		return false
	}
	return !t.config.Persistent
}

// attachEvents wires the show and hide listeners for the configured mode.
func (t *Tooltip) attachEvents() {
	switch t.config.ShowOn {
	case ShowOnManual, ShowOnLoad:
		return
	case ShowOnHover:
		t.listen(t.anchor, dom.EventMouseEnter, t.listenerShow, false)
		t.listen(t.anchor, dom.EventMouseLeave, t.listenerHide, false)
	case ShowOnFocus:
		t.listen(t.anchor, dom.EventFocus, t.listenerShow, false)
		t.listen(t.anchor, dom.EventBlur, t.listenerHide, false)
	default:
		t.listen(t.anchor, string(t.config.ShowOn), t.listenerShow, false)
		if t.hidesOnBlur() {
			t.listen(t.popup, dom.EventBlur, t.listenerHide, true)
		}
	}
}

func (t *Tooltip) detachEvents() {
	for _, b := range t.bindings {
		b.target.RemoveEventListener(b.eventType, b.listener, b.capture)
	}
	t.bindings = nil
}

// Show reveals the popup above every previously shown tooltip. It fails,
// logged and without side effects, when the anchor is no longer visible.
// Showing a destroyed tooltip does nothing.
func (t *Tooltip) Show() error {
	if t.state == StateDestroyed {
		return nil
	}
	if err := checkVisible(t.anchor); err != nil {
		t.registry.report("tooltip: show failed", t.anchor, err)
		return err
	}

	style := t.popup.Style()
	if t.config.Position.computed() {
		t.position()
		style.Set("position", string(PositionAbsolute))
	} else {
		style.Set("position", string(t.config.Position))
	}
	style.Set("visibility", "visible")

	t.zIndex = t.registry.NextZIndex()
	style.Set("z-index", strconv.Itoa(t.zIndex))
	t.state = StateVisible

	if t.hidesOnBlur() {
		t.anchor.Document().Focus(t.popup)
	}

	t.registry.metrics.recordShown()
	t.registry.logger.Debug("tooltip shown", "anchor", t.anchor.String(), "z_index", t.zIndex)
	return nil
}

// Hide hides the popup. A load tooltip is one-shot: hiding destroys it.
func (t *Tooltip) Hide() {
	if t.state == StateDestroyed {
		return
	}
	if t.config.ShowOn == ShowOnLoad {
		t.Destroy()
		return
	}
	t.conceal()
	t.registry.metrics.recordHidden()
}

// conceal hides the popup without counting a hide transition.
func (t *Tooltip) conceal() {
	t.popup.Style().Set("visibility", "hidden")
	t.state = StateHidden
}

// Destroy detaches every listener, removes the popup and drops the tooltip
// from its registry. Calling it again does nothing.
func (t *Tooltip) Destroy() {
	if t.state == StateDestroyed {
		return
	}
	t.detachEvents()
	if t.popup != nil {
		t.popup.Remove()
	}
	t.state = StateDestroyed
	t.registry.forget(t)
	t.registry.metrics.recordDestroyed()
	t.registry.logger.Debug("tooltip destroyed", "anchor", t.anchor.String())
}

// Reposition re-runs placement for a visible auto or absolute tooltip,
// e.g. after the viewport was resized.
func (t *Tooltip) Reposition() error {
	if t.state != StateVisible || !t.config.Position.computed() {
		return nil
	}
	if err := checkVisible(t.anchor); err != nil {
		t.registry.report("tooltip: reposition failed", t.anchor, err)
		return err
	}
	t.position()
	return nil
}

func anchorRect(el *dom.Element) Rect {
	return Rect{
		Left:   el.OffsetLeft(),
		Top:    el.OffsetTop(),
		Width:  el.ClientWidth(),
		Height: el.ClientHeight(),
	}
}

// position places the popup next to the anchor. Overrides from an earlier
// run are cleared first so results do not accumulate.
func (t *Tooltip) position() {
	t.arrow.Style().Remove("left")
	t.popup.Style().Remove("width")

	layout := t.registry.layout
	win := t.anchor.Document().Window
	anchor := anchorRect(t.anchor)

	width, orientation := layout.RestrictWidth(t.config.Orientation, anchor, t.popup.ClientWidth(), win.InnerWidth)
	if orientation != t.config.Orientation {
		t.changeOrientation(orientation)
		t.registry.metrics.recordFallback()
	}
	t.popup.Style().Set("width", dom.Px(width))

	p := layout.Place(orientation, Geometry{
		Anchor:        anchor,
		PopupWidth:    width,
		PopupHeight:   t.popup.ClientHeight(),
		ViewportWidth: win.InnerWidth,
		ScrollX:       win.PageXOffset,
	})

	t.popup.Style().Set("top", dom.Px(p.Top))
	t.popup.Style().Set("left", dom.Px(p.Left))
	if p.ArrowSet {
		t.arrow.Style().Set("left", dom.Px(p.ArrowLeft))
	}
}

// alignArrow points the arrow at the anchor when the popup is positioned by
// the page. Only top and bottom popups have a horizontal arrow to move.
func (t *Tooltip) alignArrow() {
	if t.config.Orientation.Horizontal() {
		return
	}
	left := AlignArrow(anchorRect(t.anchor), t.popup.OffsetLeft())
	t.arrow.Style().Set("left", dom.Px(left))
}

func (t *Tooltip) changeOrientation(o Orientation) {
	t.config.Orientation = o
	t.popup.RemoveClass(
		string(OrientationLeft),
		string(OrientationRight),
		string(OrientationTop),
		string(OrientationBottom),
	)
	t.popup.AddClass(string(o))
}

// checkVisible validates an anchor for create and show.
func checkVisible(anchor *dom.Element) error {
	if anchor == nil {
		return errors.New("T001").WithSuggestion("Pass the element the tooltip should point at")
	}
	if !anchor.IsVisible() {
		return errors.New("T002").
			WithDetailf("%s has no rendered box (offset size %vx%v).", anchor, anchor.OffsetWidth(), anchor.OffsetHeight()).
			WithSuggestion("Attach the tooltip after the anchor is displayed")
	}
	return nil
}
