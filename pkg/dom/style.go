package dom

import (
	"strconv"
	"strings"
)

// Style is an element's inline style: CSS properties in insertion order.
type Style struct {
	props map[string]string
	order []string
}

func newStyle() *Style {
	return &Style{props: make(map[string]string)}
}

// Get returns the value of a property, or "" if unset.
func (s *Style) Get(name string) string {
	return s.props[name]
}

// Set sets a property. An empty value removes it, as in the browser.
func (s *Style) Set(name, value string) {
	if value == "" {
		s.Remove(name)
		return
	}
	if _, ok := s.props[name]; !ok {
		s.order = append(s.order, name)
	}
	s.props[name] = value
}

// Remove removes a property.
func (s *Style) Remove(name string) {
	if _, ok := s.props[name]; !ok {
		return
	}
	delete(s.props, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of set properties.
func (s *Style) Len() int {
	return len(s.order)
}

// Pixels returns a property parsed as a pixel length.
func (s *Style) Pixels(name string) (float64, bool) {
	return ParsePx(s.props[name])
}

// CSSText returns the properties as a declaration list ("a: b; c: d").
func (s *Style) CSSText() string {
	parts := make([]string, 0, len(s.order))
	for _, n := range s.order {
		parts = append(parts, n+": "+s.props[n])
	}
	return strings.Join(parts, "; ")
}

// SetCSSText replaces all properties from a declaration list.
func (s *Style) SetCSSText(text string) {
	s.props = make(map[string]string)
	s.order = nil
	for _, decl := range strings.Split(text, ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		s.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}
}

// Px formats v as a CSS pixel length.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// ParsePx parses a CSS pixel length such as "12.5px".
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "px") {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
