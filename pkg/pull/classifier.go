package pull

import (
	"math"

	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/gestures"
	"github.com/go-drift/pulltoload/pkg/graphics"
)

// HandlePointer feeds one raw pointer event to the engine. It reports
// whether the container consumed the event; unconsumed events belong to
// the content.
func (e *Engine) HandlePointer(event gestures.PointerEvent) (consumed bool) {
	defer errors.Recover("pull.Engine.HandlePointer")

	s := &e.session
	if s.ByNested && s.Active != SideNone {
		// The arbitrator owns the gesture; keep the points current for
		// the parent-triggered replay.
		s.Last = event.Position
		if event.Phase == gestures.PointerPhaseCancel {
			s.canceled = true
		}
		if event.Phase.IsTerminal() && !e.nestedActive {
			e.finishGesture(s.canceled)
		}
		return false
	}

	switch event.Phase {
	case gestures.PointerPhaseDown:
		e.pointerDown(event.Position)
		return false
	case gestures.PointerPhaseMove:
		if s.Intercepted {
			s.Last = event.Position
			e.handlePull()
			return true
		}
		return e.classify(event.Position)
	case gestures.PointerPhaseUp:
		return e.pointerUp(false)
	case gestures.PointerPhaseCancel:
		return e.pointerUp(true)
	}
	return false
}

func (e *Engine) pointerDown(p graphics.Offset) {
	s := &e.session
	s.endPointer()
	if !e.canArm(SideStart) && !e.canArm(SideEnd) {
		return
	}
	s.track(p)
}

// classify decides whether a move starts a pull. The first qualifying
// move arms a side; when the content takes part in nested scrolling and
// can still scroll, ownership is deferred to the arbitrator.
func (e *Engine) classify(p graphics.Offset) bool {
	if !e.canArm(SideStart) && !e.canArm(SideEnd) {
		return false
	}
	s := &e.session
	if !s.tracking {
		// The content scrolled to its bound mid-gesture.
		s.track(p)
		return false
	}
	nested := e.nestedEnabled()
	if nested && e.state.IsBusy() {
		s.Intercepted = false
		s.ByParent = false
		return false
	}

	delta := p.Sub(s.Last)
	along := e.orientation.Along(delta)
	cross := e.orientation.Cross(delta)
	if math.Abs(along) <= e.cfg.TouchSlop || math.Abs(along) <= math.Abs(cross) {
		return false
	}

	var side Side
	switch {
	case along >= 1 && e.canArm(SideStart):
		side = SideStart
	case along <= -1 && e.canArm(SideEnd):
		side = SideEnd
	default:
		return false
	}

	s.Last = p
	s.Intercepted = !nested || !e.canScroll()
	s.ByNested = !s.Intercepted
	s.ByParent = s.ByNested
	e.logger.Debug("drag classified", "side", side, "intercepted", s.Intercepted, "nested", s.ByNested)

	if e.state.IsBusy() {
		if s.Active == SideNone {
			s.Active = side
		}
		return s.Intercepted
	}
	e.arm(side)
	return s.Intercepted
}

func (e *Engine) arm(side Side) {
	e.stopReturn()
	e.session.Active = side
	if side == SideEnd {
		e.fire(TriggerArmEnd)
	} else {
		e.fire(TriggerArmStart)
	}
}

func (e *Engine) pointerUp(cancel bool) bool {
	s := &e.session
	if !s.Intercepted {
		s.endPointer()
		if !e.state.IsBusy() && s.Active != SideNone && !s.ByNested {
			e.fire(TriggerCancel)
		}
		return false
	}
	e.finishGesture(cancel)
	return true
}

// finishGesture ends the gesture. Busy states stay put; everything else
// follows the release or cancel row of the transition table.
func (e *Engine) finishGesture(cancel bool) {
	s := &e.session
	side := s.Active
	s.endPointer()
	s.ByNested, s.ByParent = false, false

	if e.state.IsBusy() {
		return
	}
	if side != SideNone && e.overScrollActive(side) {
		e.fire(TriggerOverScroll)
		if e.cfg.EdgeEffect != nil {
			e.cfg.EdgeEffect.OnRelease()
		}
		e.fire(TriggerRelease)
		return
	}
	if cancel {
		e.fire(TriggerCancel)
		return
	}
	e.fire(TriggerRelease)
}
