package testing

import (
	"github.com/go-drift/pulltoload/pkg/pull"
)

// PullCall records one Indicator.OnPull call.
type PullCall struct {
	State    pull.State
	Distance int
}

// FakeIndicator records header or footer calls.
type FakeIndicator struct {
	Extent  int
	Visible bool
	Shows   int
	Hides   int
	Pulls   []PullCall
}

// Size returns the configured extent.
func (f *FakeIndicator) Size() int { return f.Extent }

// Show records a show call.
func (f *FakeIndicator) Show() {
	f.Shows++
	f.Visible = true
}

// Hide records a hide call.
func (f *FakeIndicator) Hide() {
	f.Hides++
	f.Visible = false
}

// OnPull records a progress report.
func (f *FakeIndicator) OnPull(state pull.State, distance int) {
	f.Pulls = append(f.Pulls, PullCall{State: state, Distance: distance})
}

// LastPull returns the most recent progress report.
func (f *FakeIndicator) LastPull() (PullCall, bool) {
	if len(f.Pulls) == 0 {
		return PullCall{}, false
	}
	return f.Pulls[len(f.Pulls)-1], true
}

// PullsIn returns the progress reports made in state s.
func (f *FakeIndicator) PullsIn(s pull.State) []PullCall {
	var calls []PullCall
	for _, c := range f.Pulls {
		if c.State == s {
			calls = append(calls, c)
		}
	}
	return calls
}

// ResetCalls forgets recorded calls but keeps Extent and Visible.
func (f *FakeIndicator) ResetCalls() {
	f.Shows, f.Hides = 0, 0
	f.Pulls = nil
}

// FakeContent is content whose scroll limits are set by the test.
type FakeContent struct {
	Orientation pull.Orientation
	// CanScrollStart and CanScrollEnd say whether the content still has
	// room toward each edge.
	CanScrollStart bool
	CanScrollEnd   bool
	Nested         bool
	// UnderBarCalls records UpdateContentUI arguments.
	UnderBarCalls []bool
}

// ScrollOrientation returns the configured orientation.
func (f *FakeContent) ScrollOrientation() pull.Orientation { return f.Orientation }

// CanScrollVertically reports the configured limits for vertical content.
func (f *FakeContent) CanScrollVertically(d pull.Direction) bool {
	return f.Orientation == pull.Vertical && f.can(d)
}

// CanScrollHorizontally reports the configured limits for horizontal content.
func (f *FakeContent) CanScrollHorizontally(d pull.Direction) bool {
	return f.Orientation == pull.Horizontal && f.can(d)
}

func (f *FakeContent) can(d pull.Direction) bool {
	if d == pull.Start {
		return f.CanScrollStart
	}
	return f.CanScrollEnd
}

// NestedScrollingEnabled returns Nested.
func (f *FakeContent) NestedScrollingEnabled() bool { return f.Nested }

// UpdateContentUI records the call.
func (f *FakeContent) UpdateContentUI(underBar bool) {
	f.UnderBarCalls = append(f.UnderBarCalls, underBar)
}

// EdgePull records one edge effect pull.
type EdgePull struct {
	Fraction float64
	Lateral  float64
}

// FakeEdgeEffect records edge effect calls. It reports finished once
// released.
type FakeEdgeEffect struct {
	StartPulls []EdgePull
	EndPulls   []EdgePull
	Releases   int
	active     bool
}

// OnPullStart records a start-edge pull.
func (f *FakeEdgeEffect) OnPullStart(fraction, lateral float64) {
	f.StartPulls = append(f.StartPulls, EdgePull{fraction, lateral})
	f.active = true
}

// OnPullEnd records an end-edge pull.
func (f *FakeEdgeEffect) OnPullEnd(fraction, lateral float64) {
	f.EndPulls = append(f.EndPulls, EdgePull{fraction, lateral})
	f.active = true
}

// OnRelease records a release.
func (f *FakeEdgeEffect) OnRelease() {
	f.Releases++
	f.active = false
}

// IsFinished reports whether the effect is at rest.
func (f *FakeEdgeEffect) IsFinished() bool { return !f.active }

// FakeListener counts begin-loading calls.
type FakeListener struct {
	LoadNew  int
	LoadMore int
	// OnLoad runs after every call, for tests that complete synchronously.
	OnLoad func()
}

// OnLoadNew records a refresh request.
func (f *FakeListener) OnLoadNew() {
	f.LoadNew++
	if f.OnLoad != nil {
		f.OnLoad()
	}
}

// OnLoadMore records a load-more request.
func (f *FakeListener) OnLoadMore() {
	f.LoadMore++
	if f.OnLoad != nil {
		f.OnLoad()
	}
}

// ConditionCall records one ShowCondition call.
type ConditionCall struct {
	Kind        int
	HideContent bool
}

// FakePresenter records condition overlay calls.
type FakePresenter struct {
	Shown  []ConditionCall
	Hidden []int
}

// ShowCondition records the call.
func (f *FakePresenter) ShowCondition(kind int, hideContent bool) {
	f.Shown = append(f.Shown, ConditionCall{Kind: kind, HideContent: hideContent})
}

// HideCondition records the call.
func (f *FakePresenter) HideCondition(kind int) {
	f.Hidden = append(f.Hidden, kind)
}
