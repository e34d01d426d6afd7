// Package gestures defines the raw pointer events consumed by the pull engine.
package gestures

import (
	"fmt"

	"github.com/go-drift/pulltoload/pkg/graphics"
)

// DefaultTouchSlop is the distance in logical pixels a pointer must travel
// along the scroll axis before a drag is recognized.
const DefaultTouchSlop = 8.0

// PointerPhase is the lifecycle phase of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown is a new pointer touching the surface.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove is a tracked pointer changing position.
	PointerPhaseMove
	// PointerPhaseUp is a tracked pointer leaving the surface.
	PointerPhaseUp
	// PointerPhaseCancel is a tracked pointer taken away by the host.
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// IsTerminal reports whether the phase ends the pointer's gesture.
func (p PointerPhase) IsTerminal() bool {
	return p == PointerPhaseUp || p == PointerPhaseCancel
}

// PointerEvent is a single pointer sample in container coordinates.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	// Delta is the movement since the previous event of the same pointer.
	Delta graphics.Offset
	Phase PointerPhase
}
