package pull

import (
	"fmt"
	"sort"
)

// Trigger is an event fed to the state machine.
type Trigger int

const (
	// TriggerArmStart classifies a drag toward the start edge.
	TriggerArmStart Trigger = iota
	// TriggerArmEnd classifies a drag toward the end edge.
	TriggerArmEnd
	// TriggerDragWithin reports a drag no longer than the indicator.
	TriggerDragWithin
	// TriggerDragBeyond reports a drag past the indicator size.
	TriggerDragBeyond
	// TriggerOverScroll reports a drag on an edge with nothing to load.
	TriggerOverScroll
	// TriggerRelease ends the gesture with a pointer up.
	TriggerRelease
	// TriggerCancel ends the gesture with a pointer cancel.
	TriggerCancel
	// TriggerDisarm hands the gesture back to the content.
	TriggerDisarm
	// TriggerComplete is the owner's completion signal.
	TriggerComplete
	// TriggerManual is the owner's deferred refresh request.
	TriggerManual
	// TriggerBegin starts the load after a manual request.
	TriggerBegin
)

var triggerNames = [...]string{
	TriggerArmStart:   "ArmStart",
	TriggerArmEnd:     "ArmEnd",
	TriggerDragWithin: "DragWithin",
	TriggerDragBeyond: "DragBeyond",
	TriggerOverScroll: "OverScroll",
	TriggerRelease:    "Release",
	TriggerCancel:     "Cancel",
	TriggerDisarm:     "Disarm",
	TriggerComplete:   "Complete",
	TriggerManual:     "Manual",
	TriggerBegin:      "Begin",
}

func (t Trigger) String() string {
	if t < 0 || int(t) >= len(triggerNames) {
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
	return triggerNames[t]
}

// Transition is one row of the state machine.
type Transition struct {
	From    State
	Trigger Trigger
	To      State
}

type transitionKey struct {
	from    State
	trigger Trigger
}

// transitions lists every defined (state, trigger) pair. Pairs mapping a
// state to itself mark events that are expected and change nothing.
var transitions = map[transitionKey]State{
	{StateReset, TriggerArmStart}: StatePullFromStart,
	{StateReset, TriggerArmEnd}:   StatePullFromEnd,

	{StatePullFromStart, TriggerDragWithin}:   StatePullFromStart,
	{StatePullFromStart, TriggerDragBeyond}:   StateReleaseToUpdate,
	{StateReleaseToUpdate, TriggerDragWithin}: StatePullFromStart,
	{StateReleaseToUpdate, TriggerDragBeyond}: StateReleaseToUpdate,
	{StatePullFromEnd, TriggerDragWithin}:     StatePullFromEnd,
	{StatePullFromEnd, TriggerDragBeyond}:     StateReleaseToLoad,
	{StateReleaseToLoad, TriggerDragWithin}:   StatePullFromEnd,
	{StateReleaseToLoad, TriggerDragBeyond}:   StateReleaseToLoad,

	{StatePullFromStart, TriggerOverScroll}: StateOverScroll,
	{StatePullFromEnd, TriggerOverScroll}:   StateOverScroll,
	{StateOverScroll, TriggerOverScroll}:    StateOverScroll,

	{StateReset, TriggerRelease}:           StateReset,
	{StatePullFromStart, TriggerRelease}:   StateReset,
	{StatePullFromEnd, TriggerRelease}:     StateReset,
	{StateReleaseToUpdate, TriggerRelease}: StateUpdating,
	{StateReleaseToLoad, TriggerRelease}:   StateLoading,
	{StateOverScroll, TriggerRelease}:      StateReset,

	{StateReset, TriggerCancel}:           StateReset,
	{StatePullFromStart, TriggerCancel}:   StateReset,
	{StatePullFromEnd, TriggerCancel}:     StateReset,
	{StateReleaseToUpdate, TriggerCancel}: StateReset,
	{StateReleaseToLoad, TriggerCancel}:   StateReset,
	{StateOverScroll, TriggerCancel}:      StateReset,

	{StatePullFromStart, TriggerDisarm}:   StateReset,
	{StatePullFromEnd, TriggerDisarm}:     StateReset,
	{StateReleaseToUpdate, TriggerDisarm}: StateReset,
	{StateReleaseToLoad, TriggerDisarm}:   StateReset,
	{StateOverScroll, TriggerDisarm}:      StateReset,

	{StateUpdating, TriggerComplete}:     StateReset,
	{StateLoading, TriggerComplete}:      StateReset,
	{StateManualUpdate, TriggerComplete}: StateReset,

	{StateReset, TriggerManual}:        StateManualUpdate,
	{StateManualUpdate, TriggerBegin}: StateUpdating,
}

// Transitions returns the transition table sorted by source state and
// trigger.
func Transitions() []Transition {
	rows := make([]Transition, 0, len(transitions))
	for k, to := range transitions {
		rows = append(rows, Transition{From: k.from, Trigger: k.trigger, To: to})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].From != rows[j].From {
			return rows[i].From < rows[j].From
		}
		return rows[i].Trigger < rows[j].Trigger
	})
	return rows
}

// Next looks up the state reached from s on t.
func Next(s State, t Trigger) (State, bool) {
	to, ok := transitions[transitionKey{s, t}]
	return to, ok
}

func (e *Engine) fire(t Trigger) bool {
	next, ok := Next(e.state, t)
	if !ok {
		e.logger.Debug("trigger ignored", "state", e.state, "trigger", t)
		return false
	}
	return e.enter(next)
}

// enter applies the busy and same-state guards, then runs the entry
// effects of next.
func (e *Engine) enter(next State) bool {
	if e.state == next || (next != StateReset && e.state.IsBusy()) {
		return false
	}
	prev := e.state
	e.state = next
	e.logger.Debug("transition", "from", prev, "to", next, "side", e.session.Active)
	e.onEnter(prev, next)
	return true
}

func (e *Engine) onEnter(prev, next State) {
	switch next {
	case StatePullFromStart:
		if e.session.Active == SideNone {
			e.session.Active = SideStart
		}
		if !e.overScrollActive(SideStart) && e.mode.ShouldShowHeader() {
			e.showHeader()
			if prev == StateReset {
				e.notifyPull(next, 0)
			}
		}
	case StatePullFromEnd:
		if e.session.Active == SideNone {
			e.session.Active = SideEnd
		}
		if !e.overScrollActive(SideEnd) {
			e.showFooter()
			if prev == StateReset {
				e.notifyPull(next, 0)
			}
		}
	case StateReleaseToUpdate:
		e.notifyPull(next, -e.headerSize())
	case StateReleaseToLoad:
		e.notifyPull(next, e.footerSize())
	case StateUpdating:
		e.session.Active = SideStart
		e.showHeader()
		e.deliverPull(next, -e.headerSize())
		e.beginLoading(SideStart)
	case StateLoading:
		e.session.Active = SideEnd
		if !e.mode.IsAutoLoadMore() || e.mode.ShouldShowAutoLoadMoreFooter() {
			e.showFooter()
		}
		e.deliverPull(next, e.footerSize())
		e.beginLoading(SideEnd)
	case StateManualUpdate:
		e.session.Active = SideStart
		e.showHeader()
		e.deliverPull(next, -e.headerSize())
		e.fire(TriggerBegin)
	case StateReset:
		e.reset()
	}
}

// beginLoading scrolls the indicator into its resting place and hands
// control to the owner.
func (e *Engine) beginLoading(side Side) {
	switch side {
	case SideStart:
		e.allLoaded = false
		e.nestedOffset = -e.headerSize()
		e.smoothScrollTo(-e.headerSize())
		if e.cfg.Listener != nil {
			e.cfg.Listener.OnLoadNew()
		}
	case SideEnd:
		if !e.mode.IsAutoLoadMore() {
			e.nestedOffset = e.footerSize()
			e.smoothScrollTo(e.footerSize())
		}
		if e.cfg.Listener != nil {
			e.cfg.Listener.OnLoadMore()
		}
	}
}

// reset returns the offset to 0 and clears the cycle.
func (e *Engine) reset() {
	e.notifyPull(StateReset, 0)
	e.smoothScrollTo(0)
	e.done = false
	e.session = Session{}
	e.nestedOffset = 0
	e.lastPull = pullNote{}
}
