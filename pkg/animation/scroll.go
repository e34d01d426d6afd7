package animation

import (
	"math"
	"time"
)

// ScrollAnimator animates an integer scroll offset on the frame loop.
// The zero value uses [AccelerateDecelerate].
type ScrollAnimator struct {
	Curve func(float64) float64
}

// Animate moves from one offset to another over d, calling onUpdate with
// each new whole-pixel offset and onDone once the target is reached.
// The returned function cancels the animation; onDone is not called for a
// canceled animation.
func (a ScrollAnimator) Animate(from, to int, d time.Duration, onUpdate func(int), onDone func()) func() {
	c := NewAnimationController(d)
	c.Curve = a.Curve
	if c.Curve == nil {
		c.Curve = AccelerateDecelerate
	}

	last := from
	c.AddListener(func() {
		v := int(math.Round(c.Value))
		if v == last {
			return
		}
		last = v
		if onUpdate != nil {
			onUpdate(v)
		}
	})
	c.AddStatusListener(func(status AnimationStatus) {
		switch status {
		case AnimationCompleted:
			c.Dispose()
			if onDone != nil {
				onDone()
			}
		case AnimationCanceled:
			c.Dispose()
		}
	})
	c.AnimateBetween(float64(from), float64(to))
	return c.Cancel
}
