package pull

import "github.com/go-drift/pulltoload/pkg/graphics"

// Session is the state of the gesture in flight.
type Session struct {
	// Start is where the drag is measured from.
	Start graphics.Offset
	// Last is the most recent pointer position.
	Last graphics.Offset
	// Intercepted is true while the container consumes raw pointer moves.
	Intercepted bool
	// Active is the side being pulled.
	Active Side
	// PrevDrag is the previous damped drag value.
	PrevDrag int
	// ByNested is true while the nested-scroll arbitrator owns the gesture.
	ByNested bool
	// ByParent is true when touch classification armed the side and the
	// arbitrator replays the recorded points.
	ByParent bool

	tracking bool
	// canceled records a pointer cancel that arrived while the arbitrator
	// owned the gesture, so the nested stop releases as a cancel.
	canceled bool
}

func (s *Session) track(p graphics.Offset) {
	s.Start, s.Last = p, p
	s.tracking = true
}

// endPointer forgets the pointer stream. The active side survives so a
// busy cycle still knows which edge it belongs to.
func (s *Session) endPointer() {
	s.Start, s.Last = graphics.Offset{}, graphics.Offset{}
	s.tracking = false
	s.Intercepted = false
	s.PrevDrag = 0
	s.canceled = false
}
