package refresh

import "fmt"

// State is the pull-to-refresh lifecycle state.
//
//	Idle ──pull──► Pulling ──past height──► ReleaseToLoad
//	  ▲               │                          │ release
//	  │            release                       ▼
//	  └────stop──── Loading ◄──reveal animation──┘
type State int

const (
	// Idle means the content rests at or below the top edge.
	Idle State = iota
	// Pulling means the content is pulled past the top edge by at most the
	// indicator height.
	Pulling
	// ReleaseToLoad means the content is pulled past the indicator height
	// while the finger is still down.
	ReleaseToLoad
	// Loading means the refresh callback has fired and the indicator is
	// pinned open until Stop.
	Loading
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pulling:
		return "pulling"
	case ReleaseToLoad:
		return "releaseToLoad"
	case Loading:
		return "loading"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// IdleBoundary selects how an offset sitting exactly on the top edge is
// classified.
type IdleBoundary int

const (
	// IdleAtEdge treats offset.y == -adjustedTop as Idle.
	IdleAtEdge IdleBoundary = iota
	// PullingAtEdge treats offset.y == -adjustedTop as Pulling; only offsets
	// strictly below the edge return to Idle.
	PullingAtEdge
)

func (b IdleBoundary) String() string {
	switch b {
	case IdleAtEdge:
		return "idle"
	case PullingAtEdge:
		return "pulling"
	default:
		return fmt.Sprintf("IdleBoundary(%d)", int(b))
	}
}

// atRest reports whether offsetY is not past the top edge.
func (b IdleBoundary) atRest(offsetY, adjustedTop float64) bool {
	if b == PullingAtEdge {
		return offsetY > -adjustedTop
	}
	return offsetY >= -adjustedTop
}
