package tooltip

// State is a tooltip's lifecycle state.
type State uint8

const (
	StateUninitialized State = iota // constructed, popup not built yet
	StateBuilt                      // popup built and inserted
	StateVisible
	StateHidden
	StateDestroyed // terminal
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateBuilt:
		return "built"
	case StateVisible:
		return "visible"
	case StateHidden:
		return "hidden"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}
