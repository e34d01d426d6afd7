package graphics

import "testing"

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 10, Y: 4}
	b := Offset{X: 3, Y: 9}

	if got := a.Add(b); got != (Offset{X: 13, Y: 13}) {
		t.Errorf("Add = %v, want {13 13}", got)
	}
	if got := a.Sub(b); got != (Offset{X: 7, Y: -5}) {
		t.Errorf("Sub = %v, want {7 -5}", got)
	}
}

func TestSizeCenterAndEmpty(t *testing.T) {
	s := Size{Width: 400, Height: 800}
	if got := s.Center(); got != (Offset{X: 200, Y: 400}) {
		t.Errorf("Center = %v, want {200 400}", got)
	}
	if s.IsEmpty() {
		t.Error("400x800 should not be empty")
	}
	if !(Size{Width: 0, Height: 10}).IsEmpty() {
		t.Error("zero width should be empty")
	}
}
