package pull_test

import (
	"testing"

	"github.com/go-drift/pulltoload/pkg/pull"
	pulltest "github.com/go-drift/pulltoload/pkg/testing"
)

func TestStartNestedScroll(t *testing.T) {
	tests := []struct {
		name    string
		content pulltest.FakeContent
		axis    pull.Orientation
		want    bool
	}{
		{"scrollable on axis", pulltest.FakeContent{CanScrollEnd: true, Nested: true}, pull.Vertical, true},
		{"cross axis", pulltest.FakeContent{CanScrollEnd: true, Nested: true}, pull.Horizontal, false},
		{"cannot scroll", pulltest.FakeContent{Nested: true}, pull.Vertical, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := tt.content
			tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: &content})
			if got := tester.Engine.StartNestedScroll(tt.axis); got != tt.want {
				t.Errorf("StartNestedScroll(%s) = %v, want %v", tt.axis, got, tt.want)
			}
		})
	}
}

func TestNestedHandOff_WithinOneGesture(t *testing.T) {
	content := &pulltest.FakeContent{CanScrollStart: true, CanScrollEnd: true, Nested: true}
	tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: content})
	e := tester.Engine

	tester.Down(at(0))
	if !tester.StartNested() {
		t.Fatal("expected nested scroll accepted")
	}
	tester.Move(at(20))
	if got := tester.PreScroll(-20); got != 0 {
		t.Fatalf("expected content to consume while scrolled, engine took %d", got)
	}

	// The content reaches its top during the same gesture.
	content.CanScrollStart = false
	if tester.Move(at(40)) {
		t.Error("expected raw move left to the content")
	}
	if got := tester.PreScroll(-20); got != -20 {
		t.Fatalf("expected engine to consume -20, got %d", got)
	}
	if e.State() != pull.StatePullFromStart || e.Offset() != -10 {
		t.Fatalf("expected PullFromStart at -10, got %s at %d", e.State(), e.Offset())
	}
	if !e.Session().ByNested {
		t.Error("expected the arbitrator to own the gesture")
	}
	if !tester.Header.Visible {
		t.Error("expected header shown")
	}

	tester.Move(at(60))
	tester.PreScroll(-200)
	if e.State() != pull.StateReleaseToUpdate || e.Offset() != -110 {
		t.Fatalf("expected ReleaseToUpdate at -110, got %s at %d", e.State(), e.Offset())
	}

	tester.Up()
	if e.State() != pull.StateReleaseToUpdate {
		t.Fatalf("expected release to wait for the nested scroll to stop, got %s", e.State())
	}
	tester.StopNested()
	if e.State() != pull.StateUpdating {
		t.Fatalf("expected Updating, got %s", e.State())
	}
	if tester.Listener.LoadNew != 1 {
		t.Errorf("expected OnLoadNew once, got %d", tester.Listener.LoadNew)
	}
	if e.Session().ByNested {
		t.Error("expected ownership cleared")
	}
}

func TestNestedChild_ReversalDisarms(t *testing.T) {
	content := &pulltest.FakeContent{CanScrollEnd: true, Nested: true}
	tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: content})
	e := tester.Engine
	tester.StartNested()

	tester.PreScroll(-40)
	if e.Offset() != -20 {
		t.Fatalf("expected -20, got %d", e.Offset())
	}
	if got := tester.PreScroll(30); got != 30 {
		t.Errorf("expected engine to take the reversal while the header shows, got %d", got)
	}
	if e.Offset() != -5 {
		t.Errorf("expected -5, got %d", e.Offset())
	}
	tester.PreScroll(20)
	if e.Offset() != 0 {
		t.Errorf("expected 0, got %d", e.Offset())
	}

	if got := tester.PreScroll(20); got != 0 {
		t.Errorf("expected content to take the delta, engine took %d", got)
	}
	if e.State() != pull.StateReset || e.Session().Active != pull.SideNone {
		t.Errorf("expected disarmed Reset, got %s / %s", e.State(), e.Session().Active)
	}
	if tester.Header.Visible {
		t.Error("expected header hidden")
	}
}

func TestNestedParent_RapidReversalHandsBack(t *testing.T) {
	content := &pulltest.FakeContent{CanScrollEnd: true, Nested: true}
	tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: content})
	e := tester.Engine

	tester.Down(at(0))
	tester.StartNested()
	if tester.Move(at(20)) {
		t.Error("expected interception deferred to the arbitrator")
	}
	s := e.Session()
	if !s.ByParent || !s.ByNested || s.Active != pull.SideStart {
		t.Fatalf("unexpected session %+v", s)
	}

	tester.Move(at(100))
	if got := tester.PreScroll(-80); got != -80 {
		t.Fatalf("expected replay to consume, got %d", got)
	}
	if e.Offset() != -50 {
		t.Errorf("expected -50 from the recorded points, got %d", e.Offset())
	}

	// Travel back above the start point within one frame.
	tester.Move(at(-30))
	if got := tester.PreScroll(130); got != 0 {
		t.Fatalf("expected hand-back to the content, engine took %d", got)
	}
	if e.State() != pull.StateReset || e.Session().Active != pull.SideNone {
		t.Errorf("expected disarmed Reset, got %s / %s", e.State(), e.Session().Active)
	}
	if tester.Header.Visible {
		t.Error("expected header hidden on hand-back")
	}

	// The child path now sees a scrollable content and leaves it alone.
	if got := tester.PreScroll(20); got != 0 {
		t.Errorf("expected content to keep consuming, engine took %d", got)
	}
	settle(t, tester)
	if e.Offset() != 0 {
		t.Errorf("expected offset back at 0, got %d", e.Offset())
	}
	tester.Up()
	tester.StopNested()
	if tester.Listener.LoadNew != 0 {
		t.Error("expected no refresh")
	}
}

func TestNestedPreScroll_WhileUpdating(t *testing.T) {
	content := &pulltest.FakeContent{CanScrollEnd: true, Nested: true}
	tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: content})
	e := tester.Engine
	e.SetState(pull.StateUpdating)
	settle(t, tester)
	tester.StartNested()

	if got := tester.PreScroll(30); got != 30 {
		t.Fatalf("expected engine to push the header, got %d", got)
	}
	if e.Offset() != -50 {
		t.Errorf("expected raw delta while busy, got %d", e.Offset())
	}
	tester.PreScroll(60)
	if e.Offset() != 0 {
		t.Errorf("expected clamp at 0, got %d", e.Offset())
	}
	if got := tester.PreScroll(20); got != 0 {
		t.Errorf("expected content to scroll once the header is gone, engine took %d", got)
	}
	if e.State() != pull.StateUpdating {
		t.Errorf("expected Updating to survive, got %s", e.State())
	}
	tester.StopNested()
	if e.State() != pull.StateUpdating || tester.Listener.LoadNew != 1 {
		t.Error("expected one refresh still in progress")
	}
}

func TestNestedCancel_NeverLoads(t *testing.T) {
	content := &pulltest.FakeContent{CanScrollEnd: true, Nested: true}
	tester := pulltest.NewTesterWithT(t, pulltest.Options{Mode: pull.ModeBoth, Content: content})
	e := tester.Engine

	tester.Down(at(0))
	tester.StartNested()
	tester.PreScroll(-300)
	if e.State() != pull.StateReleaseToUpdate || e.Offset() != -150 {
		t.Fatalf("expected ReleaseToUpdate at -150, got %s at %d", e.State(), e.Offset())
	}

	tester.Cancel()
	tester.StopNested()
	if e.State() != pull.StateReset {
		t.Fatalf("expected Reset after a canceled gesture, got %s", e.State())
	}
	if tester.Listener.LoadNew != 0 {
		t.Errorf("expected no refresh, got %d", tester.Listener.LoadNew)
	}
	settle(t, tester)
	if e.Offset() != 0 {
		t.Errorf("expected offset back at 0, got %d", e.Offset())
	}
}
