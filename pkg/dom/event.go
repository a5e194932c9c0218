package dom

// Phase is the dispatch phase an event is in.
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

// Event is a dispatched event.
type Event struct {
	Type          string
	Target        *Element
	CurrentTarget *Element
	Phase         Phase

	bubbles   bool
	stopped   bool
	prevented bool
}

// NewEvent creates an event of the given type with browser bubbling rules.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, bubbles: Bubbles(eventType)}
}

// PreventDefault marks the event's default action as cancelled.
func (ev *Event) PreventDefault() {
	ev.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (ev *Event) DefaultPrevented() bool {
	return ev.prevented
}

// StopPropagation stops the event from reaching further nodes. Listeners on
// the current node still run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ev *Event) PropagationStopped() bool {
	return ev.stopped
}

// Listener is a handler token. Registration and removal match the token by
// pointer identity.
type Listener struct {
	fn func(*Event)
}

// NewListener wraps fn in a new token.
func NewListener(fn func(*Event)) *Listener {
	return &Listener{fn: fn}
}

type registration struct {
	eventType string
	listener  *Listener
	capture   bool
	removed   bool
}

func (e *Element) findListener(eventType string, l *Listener, capture bool) int {
	for i, r := range e.listeners {
		if r.eventType == eventType && r.listener == l && r.capture == capture {
			return i
		}
	}
	return -1
}

// AddEventListener registers l for eventType. Registering the same
// (type, listener, capture) triple twice is a no-op.
func (e *Element) AddEventListener(eventType string, l *Listener, capture bool) {
	if l == nil || e.findListener(eventType, l, capture) >= 0 {
		return
	}
	e.listeners = append(e.listeners, &registration{
		eventType: eventType,
		listener:  l,
		capture:   capture,
	})
}

// RemoveEventListener removes the registration matching the triple.
// Removing a listener that is not registered is a no-op.
func (e *Element) RemoveEventListener(eventType string, l *Listener, capture bool) {
	i := e.findListener(eventType, l, capture)
	if i < 0 {
		return
	}
	e.listeners[i].removed = true
	e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
}

// HasEventListener reports whether the triple is registered.
func (e *Element) HasEventListener(eventType string, l *Listener, capture bool) bool {
	return e.findListener(eventType, l, capture) >= 0
}

// ListenerCount returns the number of listeners registered for eventType,
// or for all types when eventType is empty.
func (e *Element) ListenerCount(eventType string) int {
	n := 0
	for _, r := range e.listeners {
		if eventType == "" || r.eventType == eventType {
			n++
		}
	}
	return n
}

// invoke runs the listeners of e that match the phase. The list is
// snapshotted so listeners added during dispatch wait for the next event,
// and listeners removed during dispatch do not run.
func (e *Element) invoke(ev *Event, capture, atTarget bool) {
	snapshot := append([]*registration(nil), e.listeners...)
	ev.CurrentTarget = e
	for _, r := range snapshot {
		if r.removed || r.eventType != ev.Type {
			continue
		}
		if !atTarget && r.capture != capture {
			continue
		}
		r.listener.fn(ev)
	}
}

// Dispatch sends ev to target and returns false if the default action was
// prevented.
func Dispatch(target *Element, ev *Event) bool {
	ev.Target = target

	var path []*Element
	for n := target.parent; n != nil; n = n.parent {
		path = append(path, n)
	}

	ev.Phase = PhaseCapturing
	for i := len(path) - 1; i >= 0 && !ev.stopped; i-- {
		path[i].invoke(ev, true, false)
	}

	if !ev.stopped {
		ev.Phase = PhaseAtTarget
		target.invoke(ev, true, true)
	}

	if ev.bubbles {
		ev.Phase = PhaseBubbling
		for i := 0; i < len(path) && !ev.stopped; i++ {
			path[i].invoke(ev, false, false)
		}
	}

	ev.Phase = PhaseNone
	ev.CurrentTarget = nil
	return !ev.prevented
}

// DispatchEvent is a shorthand for Dispatch(e, NewEvent(eventType)).
func (e *Element) DispatchEvent(eventType string) bool {
	return Dispatch(e, NewEvent(eventType))
}
