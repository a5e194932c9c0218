package tooltip

// Position selects how the popup is positioned.
type Position string

const (
	// PositionAuto places the popup next to the anchor and fits it into the viewport.
	PositionAuto     Position = "auto"
	PositionRelative Position = "relative"
	PositionAbsolute Position = "absolute"
	PositionStatic   Position = "static"
	PositionFixed    Position = "fixed"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionAuto, PositionRelative, PositionAbsolute, PositionStatic, PositionFixed:
		return true
	}
	return false
}

// computed reports whether the position triggers full placement on show.
func (p Position) computed() bool {
	return p == PositionAuto || p == PositionAbsolute
}

// Orientation is the side of the anchor the popup sits on.
type Orientation string

const (
	OrientationTop    Orientation = "top"
	OrientationBottom Orientation = "bottom"
	OrientationLeft   Orientation = "left"
	OrientationRight  Orientation = "right"
)

// Valid reports whether o is a known orientation.
func (o Orientation) Valid() bool {
	switch o {
	case OrientationTop, OrientationBottom, OrientationLeft, OrientationRight:
		return true
	}
	return false
}

// Horizontal reports whether the popup sits beside the anchor.
func (o Orientation) Horizontal() bool {
	return o == OrientationLeft || o == OrientationRight
}

// ShowOn is the interaction that reveals the popup. Any DOM event name is
// accepted in addition to the named modes.
type ShowOn string

const (
	ShowOnLoad   ShowOn = "load"
	ShowOnHover  ShowOn = "hover"
	ShowOnClick  ShowOn = "click"
	ShowOnFocus  ShowOn = "focus"
	ShowOnManual ShowOn = "manual"
)

// Options are caller-supplied tooltip settings. Zero fields keep the
// defaults; the pointer fields distinguish "false" from "not given".
type Options struct {
	Position    Position    `json:"position,omitempty" yaml:"position,omitempty"`
	Class       string      `json:"class,omitempty" yaml:"class,omitempty"`
	Orientation Orientation `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	ShowOn      ShowOn      `json:"showOn,omitempty" yaml:"showOn,omitempty"`
	CloseIcon   *bool       `json:"closeIcon,omitempty" yaml:"closeIcon,omitempty"`
	Persistent  *bool       `json:"persistent,omitempty" yaml:"persistent,omitempty"`
	Text        string      `json:"text,omitempty" yaml:"text,omitempty"`
}

// Bool returns a pointer to b, for the optional Options fields.
func Bool(b bool) *bool {
	return &b
}

// Config is the effective configuration of one tooltip.
type Config struct {
	Position    Position
	Class       string
	Orientation Orientation
	ShowOn      ShowOn
	CloseIcon   bool
	Persistent  bool
	Text        string
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Position:    PositionAuto,
		Class:       "darkgrey",
		Orientation: OrientationTop,
		ShowOn:      ShowOnHover,
		CloseIcon:   true,
	}
}

// Merge returns c overridden by the set fields of o. Unknown positions and
// orientations are ignored, and so are classes the popup tree already uses
// (orientation names, tooltip, arrow, close).
func (c Config) Merge(o *Options) Config {
	if o == nil {
		return c
	}
	if o.Position.Valid() {
		c.Position = o.Position
	}
	if o.Class != "" && !reservedClass(o.Class) {
		c.Class = o.Class
	}
	if o.Orientation.Valid() {
		c.Orientation = o.Orientation
	}
	if o.ShowOn != "" {
		c.ShowOn = o.ShowOn
	}
	if o.CloseIcon != nil {
		c.CloseIcon = *o.CloseIcon
	}
	if o.Text != "" {
		c.Text = o.Text
	}
	if o.Persistent != nil {
		c.Persistent = *o.Persistent
	}
	return c
}

// resolve applies the rules that depend on the final merged values:
// showOn=load makes the tooltip persistent unless persistence was given
// explicitly.
func (c Config) resolve(explicitPersistent bool) Config {
	if c.ShowOn == ShowOnLoad && !explicitPersistent {
		c.Persistent = true
	}
	return c
}

func reservedClass(class string) bool {
	if Orientation(class).Valid() {
		return true
	}
	switch class {
	case ClassTooltip, ClassArrow, ClassClose:
		return true
	}
	return false
}
