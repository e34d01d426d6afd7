package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pulltoload/pkg/errors"
	"github.com/go-drift/pulltoload/pkg/graphics"
	"github.com/go-drift/pulltoload/pkg/pull"
)

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTesterWithT(t, Options{Mode: pull.ModeBoth})

	if tester.Header.Size() != DefaultHeaderSize {
		t.Errorf("expected header size %d, got %d", DefaultHeaderSize, tester.Header.Size())
	}
	if tester.Footer.Size() != DefaultFooterSize {
		t.Errorf("expected footer size %d, got %d", DefaultFooterSize, tester.Footer.Size())
	}
	if tester.Engine.State() != pull.StateReset {
		t.Errorf("expected Reset, got %s", tester.Engine.State())
	}
	if tester.Header.Visible || tester.Footer.Visible {
		t.Error("expected indicators hidden after construction")
	}
}

func TestNewTester_RejectsBadConfig(t *testing.T) {
	_, err := NewTester(Options{Configure: func(cfg *pull.Config) {
		cfg.TouchSlop = -1
	}})
	var cfgErr *errors.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestDragFrom_RefreshCycle(t *testing.T) {
	tester := NewTesterWithT(t, Options{Mode: pull.ModeBoth})

	if !tester.DragFrom(graphics.Offset{}, graphics.Offset{Y: 400}, 4) {
		t.Error("expected final move to be consumed")
	}
	if tester.Engine.State() != pull.StateUpdating {
		t.Fatalf("expected Updating, got %s", tester.Engine.State())
	}
	if tester.Listener.LoadNew != 1 {
		t.Errorf("expected one OnLoadNew, got %d", tester.Listener.LoadNew)
	}

	tester.Engine.OnLoadComplete()
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if _, y := tester.Viewport.Offset(); y != 0 {
		t.Errorf("expected viewport back at 0, got %d", y)
	}
	if tester.Header.Visible {
		t.Error("expected header hidden after return")
	}
}

func TestPreScroll_ReportsAlongAxis(t *testing.T) {
	tester := NewTesterWithT(t, Options{
		Mode:    pull.ModeBoth,
		Content: &FakeContent{Orientation: pull.Horizontal, CanScrollEnd: true, Nested: true},
	})

	if !tester.StartNested() {
		t.Fatal("expected nested scroll accepted")
	}
	if got := tester.PreScroll(-20); got != -20 {
		t.Errorf("expected -20 consumed, got %d", got)
	}
	if x, _ := tester.Viewport.Offset(); x != -10 {
		t.Errorf("expected horizontal offset -10, got %d", x)
	}
}
