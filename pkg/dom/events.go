package dom

// Mouse events
const (
	EventClick       = "click"
	EventDblClick    = "dblclick"
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseOver   = "mouseover"
	EventMouseOut    = "mouseout"
	EventMouseEnter  = "mouseenter"
	EventMouseLeave  = "mouseleave"
	EventContextMenu = "contextmenu"
)

// Keyboard events
const (
	EventKeyDown = "keydown"
	EventKeyUp   = "keyup"
)

// Focus events
const (
	EventFocus    = "focus"
	EventBlur     = "blur"
	EventFocusIn  = "focusin"
	EventFocusOut = "focusout"
)

// Pointer events
const (
	EventPointerDown  = "pointerdown"
	EventPointerUp    = "pointerup"
	EventPointerEnter = "pointerenter"
	EventPointerLeave = "pointerleave"
)

// Misc events
const (
	EventLoad   = "load"
	EventResize = "resize"
	EventScroll = "scroll"
)

// nonBubbling lists events that only reach capture listeners and the target.
var nonBubbling = map[string]bool{
	EventFocus:        true,
	EventBlur:         true,
	EventMouseEnter:   true,
	EventMouseLeave:   true,
	EventPointerEnter: true,
	EventPointerLeave: true,
	EventLoad:         true,
	EventScroll:       true,
}

// Bubbles reports whether events of the given type bubble.
func Bubbles(eventType string) bool {
	return !nonBubbling[eventType]
}
