package scenario

import (
	"fmt"
	"time"

	"github.com/go-drift/pulltoload/pkg/pull"
)

// Event is one collaborator call observed during a run.
type Event struct {
	At     time.Duration
	Step   int
	Source string
	Detail string
}

// journal collects events stamped with the current virtual time and step.
type journal struct {
	now    func() time.Duration
	step   int
	events []Event
}

func (j *journal) add(source, format string, args ...any) {
	j.events = append(j.events, Event{
		At:     j.now(),
		Step:   j.step,
		Source: source,
		Detail: fmt.Sprintf(format, args...),
	})
}

type indicator struct {
	name    string
	extent  int
	visible bool
	j       *journal
}

func (i *indicator) Size() int { return i.extent }

func (i *indicator) Show() {
	i.visible = true
	i.j.add(i.name, "show")
}

func (i *indicator) Hide() {
	i.visible = false
	i.j.add(i.name, "hide")
}

func (i *indicator) OnPull(state pull.State, distance int) {
	i.j.add(i.name, "pull %s %d", state, distance)
}

type content struct {
	orientation pull.Orientation
	start, end  bool
	nested      bool
}

func (c *content) ScrollOrientation() pull.Orientation { return c.orientation }

func (c *content) CanScrollVertically(d pull.Direction) bool {
	return c.orientation == pull.Vertical && c.can(d)
}

func (c *content) CanScrollHorizontally(d pull.Direction) bool {
	return c.orientation == pull.Horizontal && c.can(d)
}

func (c *content) can(d pull.Direction) bool {
	if d == pull.Start {
		return c.start
	}
	return c.end
}

func (c *content) NestedScrollingEnabled() bool { return c.nested }

type edgeEffect struct {
	active bool
	j      *journal
}

func (e *edgeEffect) OnPullStart(fraction, lateral float64) {
	e.active = true
	e.j.add("edge", "start %.3f lateral %.2f", fraction, lateral)
}

func (e *edgeEffect) OnPullEnd(fraction, lateral float64) {
	e.active = true
	e.j.add("edge", "end %.3f lateral %.2f", fraction, lateral)
}

func (e *edgeEffect) OnRelease() {
	e.active = false
	e.j.add("edge", "release")
}

func (e *edgeEffect) IsFinished() bool { return !e.active }

type presenter struct {
	j *journal
}

func (p presenter) ShowCondition(kind int, hideContent bool) {
	p.j.add("cond", "show %d hide-content=%t", kind, hideContent)
}

func (p presenter) HideCondition(kind int) {
	p.j.add("cond", "hide %d", kind)
}
