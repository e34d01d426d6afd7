package scenario

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/pulltoload/pkg/animation"
	"github.com/go-drift/pulltoload/pkg/config"
	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/gestures"
	"github.com/go-drift/pulltoload/pkg/graphics"
	"github.com/go-drift/pulltoload/pkg/logging"
	"github.com/go-drift/pulltoload/pkg/pull"
	"github.com/go-drift/pulltoload/pkg/scroll"
	pulltest "github.com/go-drift/pulltoload/pkg/testing"
)

const (
	defaultHeader = 80
	defaultFooter = 60
	// settleLimit bounds the settle action.
	settleLimit = 10 * time.Second
)

// Sample is the engine's offset and state at one frame.
type Sample struct {
	At     time.Duration
	Offset int
	State  pull.State
}

// Result is the outcome of a run.
type Result struct {
	Name     string
	Mode     pull.LoadMode
	Header   int
	Footer   int
	Events   []Event
	Samples  []Sample
	Final    pull.State
	Offset   int
	LoadNew  int
	LoadMore int
	Elapsed  time.Duration
}

// Options configures a run.
type Options struct {
	// Settings supplies engine timings. Nil means the defaults.
	Settings *config.Resolved
	// Logger receives engine logs. Nil discards them.
	Logger *log.Logger
}

type runner struct {
	s        *Scenario
	engine   *pull.Engine
	content  *content
	viewport *scroll.Position
	clock    *pulltest.FakeClock
	j        *journal
	result   *Result
	pointer  int64
	last     graphics.Offset
}

// Run replays the scenario under a virtual clock. The animation clock is
// restored before Run returns.
func Run(s *Scenario, opts Options) (*Result, error) {
	clk := pulltest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer func() {
		animation.StopAllTickers()
		animation.SetClock(prev)
	}()

	r := &runner{
		s:        s,
		clock:    clk,
		viewport: &scroll.Position{},
		result:   &Result{Name: s.Name},
	}
	r.j = &journal{now: clk.Elapsed}

	engine, err := r.build(opts)
	if err != nil {
		return nil, err
	}
	r.engine = engine
	r.sample()

	for i, step := range s.Steps {
		r.j.step = i + 1
		if err := r.apply(step); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		r.sample()
	}

	r.result.Mode = engine.Mode()
	r.result.Events = r.j.events
	r.result.Final = engine.State()
	r.result.Offset = engine.Offset()
	r.result.Elapsed = clk.Elapsed()
	return r.result, nil
}

func (r *runner) build(opts Options) (*pull.Engine, error) {
	s := r.s
	cfg := pull.Config{Mode: pull.ModeBoth}
	orientation := pull.Vertical
	if opts.Settings != nil {
		opts.Settings.Apply(&cfg)
		orientation = opts.Settings.Orientation
	}
	if s.Mode != "" {
		mode, err := pull.ParseLoadMode(s.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}
	if s.Orientation != "" {
		o, err := pull.ParseOrientation(s.Orientation)
		if err != nil {
			return nil, err
		}
		orientation = o
	}

	header, footer := s.Header, s.Footer
	if header == 0 {
		header = defaultHeader
	}
	if footer == 0 {
		footer = defaultFooter
	}
	r.result.Header, r.result.Footer = header, footer
	size := graphics.Size{Width: s.Viewport.Width, Height: s.Viewport.Height}
	if size.Width == 0 {
		size.Width = pulltest.DefaultTestWidth
	}
	if size.Height == 0 {
		size.Height = pulltest.DefaultTestHeight
	}
	r.viewport.SetSize(size)
	r.viewport.AddListener(r.sample)

	r.content = &content{
		orientation: orientation,
		start:       s.Content.CanScrollStart,
		end:         s.Content.CanScrollEnd,
		nested:      s.Content.Nested,
	}
	cfg.Content = r.content
	cfg.Header = &indicator{name: "header", extent: header, j: r.j}
	cfg.Footer = &indicator{name: "footer", extent: footer, j: r.j}
	cfg.EdgeEffect = &edgeEffect{j: r.j}
	cfg.Viewport = r.viewport
	cfg.Conditions = presenter{j: r.j}
	cfg.Listener = pull.ListenerFuncs{
		LoadNew: func() {
			r.result.LoadNew++
			r.j.add("listener", "load new")
		},
		LoadMore: func() {
			r.result.LoadMore++
			r.j.add("listener", "load more")
		},
	}
	cfg.Logger = opts.Logger
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return pull.New(cfg)
}

func (r *runner) apply(step Step) error {
	e := r.engine
	switch step.Action {
	case "down":
		r.pointer++
		r.last = r.point(step)
		r.send(gestures.PointerPhaseDown, r.last)
	case "move":
		r.send(gestures.PointerPhaseMove, r.point(step))
	case "up":
		r.send(gestures.PointerPhaseUp, r.last)
	case "cancel":
		r.send(gestures.PointerPhaseCancel, r.last)
	case "nested-start":
		r.j.add("nested", "start accepted=%t", e.StartNestedScroll(e.Orientation()))
	case "pre-scroll":
		cx, cy := e.NestedPreScroll(e.Orientation().Physical(step.Delta))
		along, _ := e.Orientation().Split(cx, cy)
		r.j.add("nested", "pre-scroll %d consumed %d", step.Delta, along)
	case "nested-stop":
		e.StopNestedScroll()
		r.j.add("nested", "stop")
	case "wait":
		d, err := step.wait()
		if err != nil {
			return err
		}
		r.pump(d)
	case "settle":
		if !r.settle() {
			return fmt.Errorf("animations did not settle within %s", settleLimit)
		}
	case "complete":
		e.OnLoadComplete()
	case "set-loading":
		e.SetLoading()
	case "all-loaded":
		e.SetAllLoaded(step.Value == nil || *step.Value)
	case "mode":
		mode, err := pull.ParseLoadMode(step.Mode)
		if err != nil {
			return err
		}
		if err := e.SetMode(mode); err != nil {
			return err
		}
	case "content":
		if step.CanScrollStart != nil {
			r.content.start = *step.CanScrollStart
		}
		if step.CanScrollEnd != nil {
			r.content.end = *step.CanScrollEnd
		}
	default:
		return errors.New("scenario.Run", errors.KindConfig, fmt.Errorf("unknown action %q", step.Action))
	}
	return nil
}

// point maps a step's along and cross coordinates onto the viewport.
func (r *runner) point(step Step) graphics.Offset {
	o := r.engine.Orientation()
	cross := o.CrossExtent(r.viewport.Size()) / 2
	if step.Cross != nil {
		cross = *step.Cross
	}
	if o == pull.Horizontal {
		return graphics.Offset{X: step.At, Y: cross}
	}
	return graphics.Offset{X: cross, Y: step.At}
}

func (r *runner) send(phase gestures.PointerPhase, pos graphics.Offset) {
	consumed := r.engine.HandlePointer(gestures.PointerEvent{
		PointerID: r.pointer,
		Position:  pos,
		Delta:     pos.Sub(r.last),
		Phase:     phase,
	})
	r.last = pos
	if consumed {
		r.j.add("pointer", "%s consumed", phase)
	}
}

func (r *runner) pump(d time.Duration) {
	for d > 0 {
		frame := pulltest.FrameDuration
		if d < frame {
			frame = d
		}
		r.clock.Advance(frame)
		animation.StepTickers()
		r.sample()
		d -= frame
	}
}

func (r *runner) settle() bool {
	var elapsed time.Duration
	for animation.HasActiveTickers() {
		if elapsed >= settleLimit {
			return false
		}
		r.pump(pulltest.FrameDuration)
		elapsed += pulltest.FrameDuration
	}
	return true
}

func (r *runner) sample() {
	if r.engine == nil {
		return
	}
	s := Sample{At: r.clock.Elapsed(), Offset: r.engine.Offset(), State: r.engine.State()}
	samples := r.result.Samples
	if n := len(samples); n > 0 && samples[n-1] == s {
		return
	}
	r.result.Samples = append(r.result.Samples, s)
}
