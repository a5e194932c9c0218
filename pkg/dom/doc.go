// Package dom provides the host document tree tooltips attach to.
//
// The tree is live and mutable: nodes are inserted and removed in place,
// styles are written as CSS strings, and geometry reads see earlier writes
// immediately. There is no layout batching.
//
// # Core Types
//
// Document owns the root element, the Window metrics (viewport width and
// horizontal scroll) and the active (focused) element. Element is a tag or
// text node with attributes, a class list, a Style and a layout Box.
//
// # Geometry
//
// Each element has an intrinsic Box. Reads honour pixel style overrides the
// way a browser does after layout:
//
//	el.SetBox(dom.Box{Left: 100, Top: 50, Width: 40, Height: 20})
//	el.Style().Set("width", dom.Px(60))
//	el.ClientWidth() // 60
//
// Elements without an explicit size are measured by the document's
// Measurer, so text content gives popups a natural size.
//
// # Events
//
// Handlers are registered with a Listener token. Removal matches the token
// by identity, so detaching a listener requires the same token that was
// attached:
//
//	l := dom.NewListener(func(ev *dom.Event) { ... })
//	el.AddEventListener(dom.EventClick, l, false)
//	el.RemoveEventListener(dom.EventClick, l, false)
//
// Dispatch runs synchronously: capture listeners from the root down, the
// target's own listeners, then bubble listeners back up for events that
// bubble.
package dom
