package pull

import (
	"time"

	"github.com/go-drift/pulltoload/pkg/graphics"
)

// Indicator is a header or footer handle.
type Indicator interface {
	// Size is the indicator's extent along the scroll axis. It is queried
	// live, so indicators may resize between gestures.
	Size() int
	Show()
	Hide()
	// OnPull reports progress. distance is the signed scroll offset.
	OnPull(state State, distance int)
}

// EdgeEffect renders rubber-band feedback for an edge with nothing to load.
type EdgeEffect interface {
	OnPullStart(fraction, lateral float64)
	OnPullEnd(fraction, lateral float64)
	OnRelease()
	IsFinished() bool
}

// Content is the scrollable child hosted by the container.
type Content interface {
	ScrollOrientation() Orientation
	// CanScrollVertically reports whether the content can still scroll
	// toward d on the y axis.
	CanScrollVertically(d Direction) bool
	// CanScrollHorizontally reports whether the content can still scroll
	// toward d on the x axis.
	CanScrollHorizontally(d Direction) bool
}

// NestedScroller is implemented by content that takes part in nested
// scrolling. Content without it is treated as not nested.
type NestedScroller interface {
	NestedScrollingEnabled() bool
}

// ContentUIUpdater is implemented by content that lays itself out
// differently when it sits under a translucent bar.
type ContentUIUpdater interface {
	UpdateContentUI(underBar bool)
}

// Viewport receives physical scroll offsets.
type Viewport interface {
	ScrollTo(x, y int)
	Size() graphics.Size
}

// Animator runs the smooth return of the scroll offset. The returned
// function cancels the animation without calling onDone.
type Animator interface {
	Animate(from, to int, d time.Duration, onUpdate func(int), onDone func()) (cancel func())
}

// Listener receives the begin-loading signal. Each call is followed, at
// some later point, by Engine.OnLoadComplete.
type Listener interface {
	OnLoadNew()
	OnLoadMore()
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	LoadNew  func()
	LoadMore func()
}

// OnLoadNew calls f.LoadNew.
func (f ListenerFuncs) OnLoadNew() {
	if f.LoadNew != nil {
		f.LoadNew()
	}
}

// OnLoadMore calls f.LoadMore.
func (f ListenerFuncs) OnLoadMore() {
	if f.LoadMore != nil {
		f.LoadMore()
	}
}

// ConditionPresenter displays condition overlays such as "empty" or
// "network error" on top of (or instead of) the content.
type ConditionPresenter interface {
	// ShowCondition displays kind. hideContent is true when the content
	// should be hidden underneath.
	ShowCondition(kind int, hideContent bool)
	HideCondition(kind int)
}
