package graphics

import (
	"image/color"
	"testing"
)

func TestColor_RGBA(t *testing.T) {
	c := RGB(0x1e, 0x88, 0xe5)
	want := color.RGBA{0x1e, 0x88, 0xe5, 0xff}
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	if r != wr || g != wg || b != wb || a != wa {
		t.Errorf("RGBA() = %d %d %d %d, want %d %d %d %d", r, g, b, a, wr, wg, wb, wa)
	}
}

func TestColor_WithAlpha8(t *testing.T) {
	c := RGB(0xff, 0, 0).WithAlpha8(0)
	if _, _, _, a := c.RGBA(); a != 0 {
		t.Errorf("expected transparent, got alpha %d", a)
	}
	if c&0x00FFFFFF != 0xFF0000 {
		t.Errorf("expected channels kept, got %#x", uint32(c))
	}
}
