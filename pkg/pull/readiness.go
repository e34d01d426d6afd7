package pull

// IsReadyToPull reports whether the content sits at the bound toward d.
// While a condition overlay is shown the start edge is always ready and
// the end edge never is.
func (e *Engine) IsReadyToPull(d Direction) bool {
	if e.condition != 0 {
		return d == Start
	}
	return !e.contentCanScroll(d)
}

// IsReadyToPullStart reports whether a start-edge pull would refresh now.
func (e *Engine) IsReadyToPullStart() bool {
	return e.mode.IsPullFromStart() && e.IsReadyToPull(Start)
}

// IsReadyToPullEnd reports whether an end-edge pull would load more now.
func (e *Engine) IsReadyToPullEnd() bool {
	return e.mode.IsPullFromEnd() && e.IsReadyToPull(End)
}

func (e *Engine) contentCanScroll(d Direction) bool {
	if e.orientation == Horizontal {
		return e.cfg.Content.CanScrollHorizontally(d)
	}
	return e.cfg.Content.CanScrollVertically(d)
}

// canScroll reports whether the content can scroll in either direction.
func (e *Engine) canScroll() bool {
	return !(e.IsReadyToPull(Start) && e.IsReadyToPull(End))
}

// overScrollPermitted reports whether pulls on side end in rubber-banding
// rather than loading.
func (e *Engine) overScrollPermitted(side Side) bool {
	switch side {
	case SideStart:
		return e.mode.CanOverScrollStart()
	case SideEnd:
		return e.mode.CanOverScrollEnd() || e.allLoaded
	default:
		return false
	}
}

// overScrollActive reports whether a pull on side rubber-bands now.
// Auto-load-more modes keep loading from the end until everything is
// loaded.
func (e *Engine) overScrollActive(side Side) bool {
	if !e.overScrollPermitted(side) {
		return false
	}
	if side == SideEnd && e.mode.IsAutoLoadMore() {
		return e.allLoaded
	}
	return true
}

// routesToEdge reports whether drags on side go to the edge effect
// instead of moving the content.
func (e *Engine) routesToEdge(side Side) bool {
	d, ok := side.Direction()
	if !ok || e.state.IsBusy() || !e.IsReadyToPull(d) {
		return false
	}
	return e.overScrollActive(side)
}

// canArm reports whether a gesture may claim side.
func (e *Engine) canArm(side Side) bool {
	switch side {
	case SideStart:
		return e.IsReadyToPull(Start) && (e.mode.IsPullFromStart() || e.overScrollPermitted(SideStart))
	case SideEnd:
		return e.IsReadyToPull(End) && (e.mode.IsPullFromEnd() || e.overScrollPermitted(SideEnd))
	default:
		return false
	}
}
