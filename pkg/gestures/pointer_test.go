package gestures

import "testing"

func TestPointerPhaseString(t *testing.T) {
	tests := []struct {
		phase PointerPhase
		want  string
	}{
		{PointerPhaseDown, "down"},
		{PointerPhaseMove, "move"},
		{PointerPhaseUp, "up"},
		{PointerPhaseCancel, "cancel"},
		{PointerPhase(42), "PointerPhase(42)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PointerPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestPointerPhaseIsTerminal(t *testing.T) {
	if PointerPhaseDown.IsTerminal() || PointerPhaseMove.IsTerminal() {
		t.Error("down and move should not be terminal")
	}
	if !PointerPhaseUp.IsTerminal() || !PointerPhaseCancel.IsTerminal() {
		t.Error("up and cancel should be terminal")
	}
}
