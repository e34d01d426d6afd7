package scroll

import (
	"testing"

	"github.com/go-drift/pulltoload/pkg/graphics"
)

func TestPosition_ScrollToNotifies(t *testing.T) {
	p := &Position{}
	calls := 0
	remove := p.AddListener(func() { calls++ })

	p.ScrollTo(0, -40)
	p.ScrollTo(0, -40)
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1 (unchanged offset must not notify)", calls)
	}
	if x, y := p.Offset(); x != 0 || y != -40 {
		t.Errorf("Offset = (%d, %d), want (0, -40)", x, y)
	}

	remove()
	p.ScrollTo(0, 0)
	if calls != 1 {
		t.Errorf("removed listener still called: %d", calls)
	}
}

func TestPosition_Size(t *testing.T) {
	p := &Position{}
	p.SetSize(graphics.Size{Width: 320, Height: 640})
	if got := p.Size(); got != (graphics.Size{Width: 320, Height: 640}) {
		t.Errorf("Size = %v", got)
	}
	if remove := p.AddListener(nil); remove == nil {
		t.Error("AddListener(nil) should return a no-op remover")
	}
}
