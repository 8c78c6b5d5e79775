package loadmore

import "fmt"

// State is the load-more lifecycle state.
type State int

const (
	// Idle waits for the user to scroll past the bottom threshold.
	Idle State = iota
	// Refreshing means the load callback has fired and End has not been
	// called yet.
	Refreshing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Refreshing:
		return "refreshing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
