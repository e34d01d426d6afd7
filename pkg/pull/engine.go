package pull

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/go-drift/pulltoload/pkg/animation"
	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/logging"
)

// Engine drives one pull-to-load container.
type Engine struct {
	cfg         Config
	orientation Orientation
	mode        LoadMode
	logger      *log.Logger
	animator    Animator

	state   State
	session Session
	offset  int
	// nestedOffset accumulates child-triggered deltas.
	nestedOffset int
	done         bool
	allLoaded    bool

	headerVisible bool
	footerVisible bool
	lastPull      pullNote

	nestedActive  bool
	cancelReturn  func()
	pendingManual *animation.Ticker

	conditions   map[int]struct{}
	condition    int
	loadNewInAll bool
}

type pullNote struct {
	state    State
	distance int
	valid    bool
}

// New builds an Engine in StateReset with both indicators hidden.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	e := &Engine{
		cfg:         cfg,
		orientation: cfg.Content.ScrollOrientation(),
		mode:        cfg.Mode,
		logger:      cfg.Logger,
		animator:    cfg.Animator,
		conditions:  make(map[int]struct{}),
	}
	if e.logger == nil {
		e.logger = logging.Discard()
	}
	if e.animator == nil {
		e.animator = animation.ScrollAnimator{Curve: cfg.ReturnCurve}
	}
	// Visibility starts unknown; force both hidden so later calls dedupe.
	e.headerVisible, e.footerVisible = true, true
	e.hideHeader()
	e.hideFooter()
	e.updateContentUI()
	return e, nil
}

// State returns the current state.
func (e *Engine) State() State { return e.state }

// Mode returns the current load mode.
func (e *Engine) Mode() LoadMode { return e.mode }

// Orientation returns the scroll axis reported by the content.
func (e *Engine) Orientation() Orientation { return e.orientation }

// Offset returns the signed scroll offset along the axis. Negative values
// reveal the header, positive values the footer.
func (e *Engine) Offset() int { return e.offset }

// Session returns a copy of the current gesture session.
func (e *Engine) Session() Session { return e.session }

// IsUpdating reports whether a refresh is in progress.
func (e *Engine) IsUpdating() bool {
	return e.state == StateUpdating || e.state == StateManualUpdate
}

// IsLoading reports whether a load-more is in progress.
func (e *Engine) IsLoading() bool { return e.state == StateLoading }

// IsAllLoaded reports whether the owner declared there is nothing more to
// load.
func (e *Engine) IsAllLoaded() bool { return e.allLoaded }

// EdgeEffectActive reports whether the edge effect still animates, so the
// host keeps producing frames.
func (e *Engine) EdgeEffectActive() bool {
	return e.cfg.EdgeEffect != nil && !e.cfg.EdgeEffect.IsFinished()
}

// SetState moves the state machine directly. Entering a non-Reset state
// while busy, or re-entering the current state, is a no-op. Unknown states
// are reported to the error handler.
func (e *Engine) SetState(s State) {
	defer errors.Recover("pull.Engine.SetState")
	if !s.IsValid() {
		errors.Report(errors.New("pull.Engine.SetState", errors.KindState, fmt.Errorf("unknown state %d", int(s))))
		return
	}
	e.enter(s)
}

// SetLoading requests a refresh as if the user had pulled. Activation is
// deferred by Config.ManualDelay and skipped when the engine is busy by
// then. The returned function cancels a pending request.
func (e *Engine) SetLoading() (cancel func()) {
	if e.pendingManual != nil {
		e.pendingManual.Stop()
	}
	var t *animation.Ticker
	t = animation.After(e.cfg.ManualDelay, func() {
		defer errors.Recover("pull.Engine.SetLoading")
		if e.pendingManual == t {
			e.pendingManual = nil
		}
		if e.state.IsBusy() {
			e.logger.Debug("manual refresh skipped", "state", e.state)
			return
		}
		e.fire(TriggerManual)
	})
	e.pendingManual = t
	return t.Stop
}

// OnLoadComplete ends the current refresh or load-more. Calling it while
// idle does nothing.
func (e *Engine) OnLoadComplete() {
	defer errors.Recover("pull.Engine.OnLoadComplete")
	if !e.state.IsBusy() && e.state != StateManualUpdate {
		return
	}
	e.done = true
	e.fire(TriggerComplete)
}

// SetAllLoaded records whether more data exists. Declaring everything
// loaded hides the footer and lets the end edge overscroll.
func (e *Engine) SetAllLoaded(allLoaded bool) {
	if e.allLoaded == allLoaded {
		return
	}
	e.allLoaded = allLoaded
	if allLoaded {
		e.hideFooter()
	}
}

// SetMode switches the load mode and hides both indicators.
func (e *Engine) SetMode(mode LoadMode) error {
	if !mode.IsValid() {
		return errors.New("pull.Engine.SetMode", errors.KindConfig, &errors.ConfigError{
			Field: "mode", Value: int(mode), Reason: "unknown load mode", Err: errors.ErrInvalidMode,
		})
	}
	if mode == e.mode {
		return nil
	}
	e.logger.Debug("mode changed", "from", e.mode, "to", mode)
	e.mode = mode
	e.hideHeader()
	e.hideFooter()
	e.updateContentUI()
	return nil
}

func (e *Engine) updateContentUI() {
	if u, ok := e.cfg.Content.(ContentUIUpdater); ok {
		u.UpdateContentUI(e.cfg.UnderBar)
	}
}

func (e *Engine) nestedEnabled() bool {
	n, ok := e.cfg.Content.(NestedScroller)
	return ok && n.NestedScrollingEnabled()
}

func (e *Engine) headerSize() int {
	if e.cfg.Header == nil {
		return 0
	}
	return e.cfg.Header.Size()
}

func (e *Engine) footerSize() int {
	if e.cfg.Footer == nil {
		return 0
	}
	return e.cfg.Footer.Size()
}

func (e *Engine) indicatorSize(side Side) int {
	if side == SideEnd {
		return e.footerSize()
	}
	return e.headerSize()
}

func (e *Engine) showHeader() {
	if e.cfg.Header == nil || e.headerVisible {
		return
	}
	e.headerVisible = true
	e.cfg.Header.Show()
}

func (e *Engine) hideHeader() {
	if !e.headerVisible {
		return
	}
	e.headerVisible = false
	if e.cfg.Header != nil {
		e.cfg.Header.Hide()
	}
}

func (e *Engine) showFooter() {
	if e.cfg.Footer == nil || e.footerVisible {
		return
	}
	e.footerVisible = true
	e.cfg.Footer.Show()
}

func (e *Engine) hideFooter() {
	if !e.footerVisible {
		return
	}
	e.footerVisible = false
	if e.cfg.Footer != nil {
		e.cfg.Footer.Hide()
	}
}

// notifyPull forwards progress to the active side's indicator. Repeats of
// the previous (state, distance) pair and updates while busy are dropped.
func (e *Engine) notifyPull(state State, distance int) {
	if e.state.IsBusy() {
		return
	}
	e.deliverPull(state, distance)
}

func (e *Engine) deliverPull(state State, distance int) {
	note := pullNote{state: state, distance: distance, valid: true}
	if note == e.lastPull {
		return
	}
	e.lastPull = note

	var ind Indicator
	switch e.session.Active {
	case SideStart:
		ind = e.cfg.Header
	case SideEnd:
		ind = e.cfg.Footer
	}
	if ind != nil {
		ind.OnPull(state, distance)
	}
}

func (e *Engine) setOffset(v int) {
	if v == e.offset {
		return
	}
	e.offset = v
	if e.cfg.Viewport != nil {
		x, y := e.orientation.Physical(v)
		e.cfg.Viewport.ScrollTo(x, y)
	}
}

// String summarizes the engine for logs.
func (e *Engine) String() string {
	return fmt.Sprintf("pull.Engine{mode=%s state=%s offset=%d side=%s}", e.mode, e.state, e.offset, e.session.Active)
}
