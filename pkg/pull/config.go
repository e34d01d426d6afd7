package pull

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/gestures"
)

// Friction divides raw pointer travel into scroll offset.
const Friction = 2

const (
	// DefaultReturnDuration is the smooth-return duration when no load
	// completed in the cycle.
	DefaultReturnDuration = 300 * time.Millisecond
	// DefaultManualDelay defers SetLoading so the first frame can lay out.
	DefaultManualDelay = 300 * time.Millisecond
)

// Config wires an Engine. Content is required; every other collaborator
// is optional.
type Config struct {
	Mode LoadMode
	// TouchSlop is the along-axis travel before a drag is classified.
	// Zero uses gestures.DefaultTouchSlop.
	TouchSlop float64

	// ReturnToStartDuration is used after a completed refresh.
	ReturnToStartDuration time.Duration
	// ReturnToEndDuration is used after a completed load-more.
	ReturnToEndDuration time.Duration
	// DefaultReturnDuration is used for every other return.
	DefaultReturnDuration time.Duration
	// ManualDelay defers the activation requested by SetLoading.
	ManualDelay time.Duration
	// ReturnCurve eases the default animator. Nil uses
	// animation.AccelerateDecelerate.
	ReturnCurve func(float64) float64

	// UnderBar is forwarded to content implementing ContentUIUpdater.
	UnderBar bool

	Content    Content
	Header     Indicator
	Footer     Indicator
	EdgeEffect EdgeEffect
	Viewport   Viewport
	Animator   Animator
	Listener   Listener
	Conditions ConditionPresenter

	// Logger receives debug traces. Nil discards.
	Logger *log.Logger
}

func (c Config) validate() error {
	const op = "pull.New"
	if c.Content == nil {
		return errors.New(op, errors.KindCollaborator, errors.ErrMissingContent)
	}
	if !c.Mode.IsValid() {
		return errors.New(op, errors.KindConfig, &errors.ConfigError{
			Field: "mode", Value: int(c.Mode), Reason: "unknown load mode", Err: errors.ErrInvalidMode,
		})
	}
	if c.TouchSlop < 0 {
		return errors.New(op, errors.KindConfig, &errors.ConfigError{
			Field: "touch slop", Value: c.TouchSlop, Reason: "must not be negative",
		})
	}
	durations := []struct {
		field string
		value time.Duration
	}{
		{"return-to-start duration", c.ReturnToStartDuration},
		{"return-to-end duration", c.ReturnToEndDuration},
		{"default return duration", c.DefaultReturnDuration},
		{"manual delay", c.ManualDelay},
	}
	for _, d := range durations {
		if d.value < 0 {
			return errors.New(op, errors.KindConfig, &errors.ConfigError{
				Field: d.field, Value: d.value, Reason: "must not be negative",
			})
		}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.TouchSlop == 0 {
		c.TouchSlop = gestures.DefaultTouchSlop
	}
	if c.DefaultReturnDuration == 0 {
		c.DefaultReturnDuration = DefaultReturnDuration
	}
	if c.ReturnToStartDuration == 0 {
		c.ReturnToStartDuration = c.DefaultReturnDuration
	}
	if c.ReturnToEndDuration == 0 {
		c.ReturnToEndDuration = c.DefaultReturnDuration
	}
	if c.ManualDelay == 0 {
		c.ManualDelay = DefaultManualDelay
	}
	return c
}
