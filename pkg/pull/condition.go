package pull

import (
	"fmt"

	"github.com/go-drift/pulltoload/pkg/errors"
)

// AddCondition registers an overlay kind. Kinds must be positive.
func (e *Engine) AddCondition(kind int) error {
	if kind <= 0 {
		return errors.New("pull.Engine.AddCondition", errors.KindConfig, &errors.ConfigError{
			Field: "condition kind", Value: kind, Reason: "must be greater than 0",
		})
	}
	e.conditions[kind] = struct{}{}
	return nil
}

// ShowCondition displays a registered overlay, replacing the current one.
// While an overlay is shown only the start edge can be pulled.
func (e *Engine) ShowCondition(kind int) error {
	if _, ok := e.conditions[kind]; !ok {
		err := fmt.Errorf("%w: %d", errors.ErrUnknownCondition, kind)
		e.logger.Warn("condition not registered", "kind", kind)
		return errors.New("pull.Engine.ShowCondition", errors.KindConfig, err)
	}
	if e.condition == kind {
		return nil
	}
	e.HideCondition()
	e.condition = kind
	if e.cfg.Conditions != nil {
		e.cfg.Conditions.ShowCondition(kind, !e.loadNewInAll)
	}
	return nil
}

// HideCondition removes the current overlay, if any.
func (e *Engine) HideCondition() {
	if e.condition == 0 {
		return
	}
	kind := e.condition
	e.condition = 0
	if e.cfg.Conditions != nil {
		e.cfg.Conditions.HideCondition(kind)
	}
}

// Condition returns the overlay currently shown, or 0.
func (e *Engine) Condition() int { return e.condition }

// LoadNewInAllConditions controls whether the content stays visible under
// overlays shown from now on.
func (e *Engine) LoadNewInAllConditions(keepContent bool) {
	e.loadNewInAll = keepContent
}
