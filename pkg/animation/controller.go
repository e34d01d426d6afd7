package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
//
//	        AnimateBetween()            last frame
//	Idle ───────────────────► Running ────────────► Completed
//	                             │
//	                             │ Cancel()
//	                             ▼
//	                          Canceled
type AnimationStatus int

const (
	// AnimationIdle means the controller has not been started.
	AnimationIdle AnimationStatus = iota
	// AnimationRunning means frames are being produced.
	AnimationRunning
	// AnimationCompleted means the value reached its target.
	AnimationCompleted
	// AnimationCanceled means the animation was stopped before its target.
	AnimationCanceled
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationIdle:
		return "idle"
	case AnimationRunning:
		return "running"
	case AnimationCompleted:
		return "completed"
	case AnimationCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController interpolates Value from one bound to another over
// Duration. The Curve function transforms linear progress into eased motion.
//
// Always call Dispose when done to stop the animation and release listeners.
type AnimationController struct {
	// Value is the current animated value.
	Value float64

	// Duration is the length of the animation. Zero or negative durations
	// jump to the target on the next frame.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status          AnimationStatus
	ticker          *Ticker
	from            float64
	to              float64
	listeners       map[int]func()
	statusListeners map[int]func(AnimationStatus)
	nextListenerID  int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:        duration,
		Curve:           LinearCurve,
		status:          AnimationIdle,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(AnimationStatus)),
	}
}

// AnimateBetween starts animating from one value to another, replacing any
// animation in flight.
func (c *AnimationController) AnimateBetween(from, to float64) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.from = from
	c.to = to
	c.Value = from
	c.setStatus(AnimationRunning)

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
		if progress > 1.0 {
			progress = 1.0
		}
	}

	eased := progress
	if c.Curve != nil && progress < 1.0 {
		eased = c.Curve(progress)
	}
	c.Value = c.from + (c.to-c.from)*eased
	c.notifyListeners()

	if progress >= 1.0 {
		c.stopTicker()
		c.setStatus(AnimationCompleted)
	}
}

// Cancel stops the animation at its current value.
func (c *AnimationController) Cancel() {
	if c.status != AnimationRunning {
		return
	}
	c.stopTicker()
	c.setStatus(AnimationCanceled)
}

func (c *AnimationController) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationRunning
}

// Target returns the value the running or last animation heads to.
func (c *AnimationController) Target() float64 {
	return c.to
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddStatusListener(fn func(AnimationStatus)) func() {
	if c.statusListeners == nil {
		c.statusListeners = make(map[int]func(AnimationStatus))
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *AnimationController) setStatus(status AnimationStatus) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose cancels the animation and drops all listeners.
func (c *AnimationController) Dispose() {
	c.stopTicker()
	c.listeners = nil
	c.statusListeners = nil
}
