package pull

import "fmt"

// State is the engine's position in the refresh/load cycle.
type State int

const (
	// StateReset is idle: initial state and the end of every cycle.
	StateReset State = iota
	// StatePullFromStart is a start-edge pull below the header size.
	StatePullFromStart
	// StatePullFromEnd is an end-edge pull below the footer size.
	StatePullFromEnd
	// StateReleaseToUpdate means releasing now starts a refresh.
	StateReleaseToUpdate
	// StateReleaseToLoad means releasing now starts loading more.
	StateReleaseToLoad
	// StateUpdating waits for the owner to finish a refresh.
	StateUpdating
	// StateLoading waits for the owner to finish loading more.
	StateLoading
	// StateManualUpdate is the owner-triggered refresh on its way to Updating.
	StateManualUpdate
	// StateOverScroll routes the drag to the edge effect.
	StateOverScroll
)

var stateNames = [...]string{
	StateReset:           "Reset",
	StatePullFromStart:   "PullFromStart",
	StatePullFromEnd:     "PullFromEnd",
	StateReleaseToUpdate: "ReleaseToUpdate",
	StateReleaseToLoad:   "ReleaseToLoad",
	StateUpdating:        "Updating",
	StateLoading:         "Loading",
	StateManualUpdate:    "ManualUpdate",
	StateOverScroll:      "OverScroll",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsValid reports whether s is one of the declared states.
func (s State) IsValid() bool {
	return s >= 0 && int(s) < len(stateNames)
}

// IsBusy reports whether the owner is loading. New pulls are ignored
// until the cycle completes.
func (s State) IsBusy() bool {
	return s == StateUpdating || s == StateLoading
}
