package pull

import "github.com/go-drift/pulltoload/pkg/errors"

// StartNestedScroll is called when the content begins a nested scroll on
// axis. It reports whether the container takes part.
func (e *Engine) StartNestedScroll(axis Orientation) bool {
	if axis != e.orientation || !e.canScroll() {
		return false
	}
	e.nestedActive = true
	return true
}

// NestedPreScroll offers a scroll delta to the container before the
// content consumes it. The returned pair is either the whole delta or
// zero: exactly one side consumes it.
func (e *Engine) NestedPreScroll(dx, dy int) (consumedX, consumedY int) {
	defer errors.Recover("pull.Engine.NestedPreScroll")
	if e.session.ByParent && e.session.Active != SideNone {
		if e.replayParent() {
			return dx, dy
		}
		return 0, 0
	}
	if e.childPreScroll(dx, dy) {
		return dx, dy
	}
	return 0, 0
}

// StopNestedScroll ends the nested scroll. If the container owns the
// gesture it is released as if the pointer went up, or canceled when the
// pointer stream was canceled meanwhile.
func (e *Engine) StopNestedScroll() {
	defer errors.Recover("pull.Engine.StopNestedScroll")
	e.nestedActive = false
	if !e.session.ByNested {
		return
	}
	e.finishGesture(e.session.canceled)
}

// replayParent continues a pull that touch classification armed, driven
// by the recorded points. Travel against the armed side hands the gesture
// back to the content.
func (e *Engine) replayParent() bool {
	s := &e.session
	start, last := e.orientation.Along(s.Start), e.orientation.Along(s.Last)
	switch s.Active {
	case SideStart:
		if last >= start {
			e.handlePull()
			return true
		}
	case SideEnd:
		if last < start {
			e.handlePull()
			return true
		}
	}
	e.logger.Debug("pull handed back to content", "side", s.Active)
	e.disarm(true)
	return false
}

// childPreScroll handles deltas the content drives. Negative along-axis
// deltas move toward the start edge.
func (e *Engine) childPreScroll(dx, dy int) bool {
	s := &e.session
	along, cross := e.orientation.Split(dx, dy)
	busy := e.state.IsBusy()

	switch {
	case along < 0:
		if e.IsReadyToPullStart() {
			if s.Active == SideNone && abs(along) > abs(cross) {
				s.ByNested = true
				e.arm(SideStart)
			}
			if s.Active != SideNone {
				if e.mode.ShouldShowHeader() && !e.overScrollActive(SideStart) {
					e.showHeader()
				}
				e.nestedPull(along)
			}
			return true
		}
		if s.Active == SideEnd {
			if e.offset > 0 {
				e.nestedPull(along)
				return true
			}
			if !busy {
				e.disarm(false)
			}
		}
	case along > 0:
		if e.IsReadyToPullEnd() {
			if s.Active == SideNone && abs(along) > abs(cross) {
				s.ByNested = true
				e.arm(SideEnd)
			}
			if s.Active != SideNone {
				e.nestedPull(along)
			}
			return true
		}
		if s.Active == SideStart {
			if e.offset < 0 {
				e.nestedPull(along)
				return true
			}
			e.hideHeader()
			if !busy {
				e.disarm(false)
			}
		}
	}
	return false
}

// nestedPull accumulates a child-triggered delta into the offset.
func (e *Engine) nestedPull(delta int) {
	if e.state.IsBusy() {
		e.nestedOffset += delta
		if e.nestedOffset == 0 && e.offset == 0 {
			return
		}
		// The accumulator already starts at the busy rest offset.
		e.setOffset(e.clampBusy(e.nestedOffset, delta < 0))
		e.updateStateForDrag(e.nestedOffset)
		return
	}

	e.nestedOffset += roundHalfUp(float64(delta) / Friction)
	if e.session.Active == SideEnd {
		e.nestedOffset = max(e.nestedOffset, 0)
	} else {
		e.nestedOffset = min(e.nestedOffset, 0)
	}
	if e.nestedOffset == 0 && e.offset == 0 {
		return
	}
	e.applyDrag(e.nestedOffset, delta < 0)
}

// disarm returns the gesture to the content.
func (e *Engine) disarm(hideIndicator bool) {
	s := &e.session
	if hideIndicator {
		if s.Active == SideEnd {
			e.hideFooter()
		} else {
			e.hideHeader()
		}
	}
	s.ByNested, s.ByParent = false, false
	if e.state.IsBusy() {
		return
	}
	s.Active = SideNone
	e.fire(TriggerDisarm)
}
