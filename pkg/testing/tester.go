package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/pulltoload/pkg/animation"
	"github.com/go-drift/pulltoload/pkg/gestures"
	"github.com/go-drift/pulltoload/pkg/graphics"
	"github.com/go-drift/pulltoload/pkg/pull"
	"github.com/go-drift/pulltoload/pkg/scroll"
)

const (
	// DefaultHeaderSize is the header extent used when Options leaves it 0.
	DefaultHeaderSize = 80
	// DefaultFooterSize is the footer extent used when Options leaves it 0.
	DefaultFooterSize = 60
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 800
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Options configures a Tester.
type Options struct {
	Mode        pull.LoadMode
	Orientation pull.Orientation
	HeaderSize  int
	FooterSize  int
	// Content replaces the default content, which cannot scroll at all.
	Content *FakeContent
	// Configure adjusts the engine config before construction.
	Configure func(*pull.Config)
}

// Tester drives a pull.Engine wired to recording fakes under a fake clock.
type Tester struct {
	Engine    *pull.Engine
	Header    *FakeIndicator
	Footer    *FakeIndicator
	Content   *FakeContent
	Edge      *FakeEdgeEffect
	Listener  *FakeListener
	Presenter *FakePresenter
	Viewport  *scroll.Position

	clock     *FakeClock
	prevClock animation.Clock
	pointerID int64
	position  graphics.Offset
}

// NewTester creates a tester. Call Cleanup when done, or use
// NewTesterWithT instead.
func NewTester(opts Options) (*Tester, error) {
	if opts.HeaderSize == 0 {
		opts.HeaderSize = DefaultHeaderSize
	}
	if opts.FooterSize == 0 {
		opts.FooterSize = DefaultFooterSize
	}
	content := opts.Content
	if content == nil {
		content = &FakeContent{Orientation: opts.Orientation}
	}

	clk := NewFakeClock()
	t := &Tester{
		Header:    &FakeIndicator{Extent: opts.HeaderSize},
		Footer:    &FakeIndicator{Extent: opts.FooterSize},
		Content:   content,
		Edge:      &FakeEdgeEffect{},
		Listener:  &FakeListener{},
		Presenter: &FakePresenter{},
		Viewport:  &scroll.Position{},
		clock:     clk,
	}
	t.Viewport.SetSize(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight})

	cfg := pull.Config{
		Mode:       opts.Mode,
		Content:    content,
		Header:     t.Header,
		Footer:     t.Footer,
		EdgeEffect: t.Edge,
		Viewport:   t.Viewport,
		Listener:   t.Listener,
		Conditions: t.Presenter,
	}
	if opts.Configure != nil {
		opts.Configure(&cfg)
	}

	t.prevClock = animation.SetClock(clk)
	engine, err := pull.New(cfg)
	if err != nil {
		animation.SetClock(t.prevClock)
		return nil, err
	}
	t.Engine = engine
	return t, nil
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T, opts Options) *Tester {
	t.Helper()
	tester, err := NewTester(opts)
	if err != nil {
		t.Fatalf("NewTester: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops pending animations and restores the animation clock.
func (t *Tester) Cleanup() {
	animation.StopAllTickers()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Pump advances the clock by d and steps the animation tickers once.
func (t *Tester) Pump(d time.Duration) {
	t.clock.Advance(d)
	animation.StepTickers()
}

// PumpAndSettle steps frames until no animation is active or the timeout
// is reached.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if !animation.HasActiveTickers() {
			return nil
		}
		t.Pump(FrameDuration)
		elapsed += FrameDuration
	}
	if animation.HasActiveTickers() {
		return ErrSettleTimeout
	}
	return nil
}

// Down starts a new pointer at pos.
func (t *Tester) Down(pos graphics.Offset) bool {
	t.pointerID++
	t.position = pos
	return t.send(gestures.PointerPhaseDown, pos)
}

// Move moves the current pointer to pos.
func (t *Tester) Move(pos graphics.Offset) bool {
	return t.send(gestures.PointerPhaseMove, pos)
}

// Up lifts the current pointer at its last position.
func (t *Tester) Up() bool {
	return t.send(gestures.PointerPhaseUp, t.position)
}

// Cancel cancels the current pointer.
func (t *Tester) Cancel() bool {
	return t.send(gestures.PointerPhaseCancel, t.position)
}

// DragFrom presses at start, moves by delta in steps moves and releases.
// It reports whether the final move was consumed by the engine.
func (t *Tester) DragFrom(start, delta graphics.Offset, steps int) bool {
	if steps < 1 {
		steps = 1
	}
	t.Down(start)
	consumed := false
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		consumed = t.Move(graphics.Offset{X: start.X + delta.X*frac, Y: start.Y + delta.Y*frac})
	}
	t.Up()
	return consumed
}

// StartNested begins a nested scroll on the engine's axis.
func (t *Tester) StartNested() bool {
	return t.Engine.StartNestedScroll(t.Engine.Orientation())
}

// PreScroll offers an along-axis delta through the nested-scroll path and
// returns the consumed along-axis amount.
func (t *Tester) PreScroll(along int) int {
	dx, dy := t.Engine.Orientation().Physical(along)
	cx, cy := t.Engine.NestedPreScroll(dx, dy)
	if t.Engine.Orientation() == pull.Horizontal {
		return cx
	}
	return cy
}

// StopNested ends the nested scroll.
func (t *Tester) StopNested() {
	t.Engine.StopNestedScroll()
}

func (t *Tester) send(phase gestures.PointerPhase, pos graphics.Offset) bool {
	delta := pos.Sub(t.position)
	t.position = pos
	return t.Engine.HandlePointer(gestures.PointerEvent{
		PointerID: t.pointerID,
		Position:  pos,
		Delta:     delta,
		Phase:     phase,
	})
}
