package pull

import "time"

// smoothScrollTo animates the offset to target, replacing any return in
// flight.
func (e *Engine) smoothScrollTo(target int) {
	e.stopReturn()
	if e.offset == target {
		e.returnFinished()
		return
	}
	d := e.returnDuration(target)
	e.logger.Debug("smooth return", "from", e.offset, "to", target, "duration", d)
	finished := false
	cancel := e.animator.Animate(e.offset, target, d, e.setOffset, func() {
		finished = true
		e.cancelReturn = nil
		e.returnFinished()
	})
	// Animators may finish synchronously.
	if !finished {
		e.cancelReturn = cancel
	}
}

func (e *Engine) stopReturn() {
	if e.cancelReturn != nil {
		cancel := e.cancelReturn
		e.cancelReturn = nil
		cancel()
	}
}

func (e *Engine) returnDuration(target int) time.Duration {
	if target != 0 || !e.done {
		return e.cfg.DefaultReturnDuration
	}
	switch e.session.Active {
	case SideStart:
		return e.cfg.ReturnToStartDuration
	case SideEnd:
		return e.cfg.ReturnToEndDuration
	default:
		return e.cfg.DefaultReturnDuration
	}
}

func (e *Engine) returnFinished() {
	if e.state != StateReset {
		return
	}
	e.hideHeader()
	e.hideFooter()
}

// IsReturning reports whether a smooth return is in flight.
func (e *Engine) IsReturning() bool { return e.cancelReturn != nil }
