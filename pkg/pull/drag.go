package pull

import "math"

// handlePull maps the recorded pointer travel to a damped offset.
func (e *Engine) handlePull() {
	s := &e.session
	raw := e.orientation.Along(s.Start) - e.orientation.Along(s.Last)
	if s.Active == SideEnd {
		raw = math.Max(raw, 0)
	} else {
		raw = math.Min(raw, 0)
	}
	drag := roundHalfUp(raw / Friction)
	if drag == 0 && s.PrevDrag == 0 {
		return
	}
	e.applyDrag(drag, drag < s.PrevDrag)
	s.PrevDrag = drag
}

func (e *Engine) applyDrag(drag int, towardStart bool) {
	e.scroll(drag, towardStart)
	e.updateStateForDrag(drag)
	e.notifyPull(e.state, drag)
}

// scroll writes value to the offset, or to the edge effect when the
// armed edge rubber-bands.
func (e *Engine) scroll(value int, towardStart bool) {
	if e.state.IsBusy() {
		value = e.clampBusy(e.busyRest()+value, towardStart)
	}
	if e.routesToEdge(e.session.Active) {
		e.pullEdge(value)
		return
	}
	e.setOffset(value)
}

// busyRest is the offset a busy indicator rests at.
func (e *Engine) busyRest() int {
	switch {
	case e.state == StateUpdating:
		return -e.headerSize()
	case e.state == StateLoading && !e.mode.IsAutoLoadMore():
		return e.footerSize()
	default:
		return 0
	}
}

// clampBusy keeps a busy indicator from being pulled past its size and
// lets it be pushed back to 0.
func (e *Engine) clampBusy(value int, towardStart bool) int {
	header, footer := e.headerSize(), e.footerSize()
	if e.session.Active == SideEnd {
		switch {
		case !towardStart && value >= footer:
			return footer
		case towardStart && e.IsReadyToPull(Start):
			return 0
		}
		return value
	}
	switch {
	case towardStart && value <= -header:
		return -header
	case !towardStart && e.IsReadyToPull(End):
		return 0
	case !towardStart && (e.IsReadyToPull(Start) || e.headerVisible) && value > 0:
		e.nestedOffset = 0
		return 0
	}
	return value
}

func (e *Engine) updateStateForDrag(drag int) {
	switch e.state {
	case StateUpdating:
		e.showHeader()
		return
	case StateLoading:
		return
	}
	side := e.session.Active
	if e.overScrollActive(side) {
		e.fire(TriggerOverScroll)
		return
	}
	if abs(drag) > e.indicatorSize(side) {
		e.fire(TriggerDragBeyond)
	} else {
		e.fire(TriggerDragWithin)
	}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
