package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestPullErrorString(t *testing.T) {
	err := &PullError{
		Op:   "pull.Engine.ShowCondition",
		Kind: KindConfig,
		Err:  ErrUnknownCondition,
	}
	want := "pull.Engine.ShowCondition [config]: condition kind not registered"
	if got := err.Error(); got != want {
		t.Errorf("PullError.Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrUnknownCondition) {
		t.Error("PullError should unwrap to its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindCollaborator, "collaborator"},
		{KindState, "state"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &ConfigError{Field: "touch_slop", Value: -1, Reason: "must not be negative", Err: cause}
	want := "invalid touch_slop -1: must not be negative"
	if got := err.Error(); got != want {
		t.Errorf("ConfigError.Error() = %q, want %q", got, want)
	}

	wrapped := New("config.Apply", KindConfig, err)
	var target *ConfigError
	if !As(wrapped, &target) {
		t.Fatal("expected As to find the ConfigError")
	}
	if target.Field != "touch_slop" {
		t.Errorf("Field = %q, want touch_slop", target.Field)
	}
	if !Is(wrapped, cause) {
		t.Error("expected chain to reach the underlying cause")
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "pull.Engine.HandlePointer"
	if got, want := err.Error(), "panic in pull.Engine.HandlePointer: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *PullError
	handler := &testHandler{onError: func(err *PullError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&PullError{Op: "test.op", Kind: KindState, Err: fmt.Errorf("ignored trigger")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesEntries(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHandler(log.New(&buf))

	h.HandleError(New("pull.Engine.AddCondition", KindConfig, ErrUnknownCondition))
	h.HandlePanic(&PanicError{Op: "pull.Engine.NestedPreScroll", Value: "nil indicator"})

	out := buf.String()
	for _, want := range []string{"engine error", "pull.Engine.AddCondition", "config", "recovered panic", "nil indicator"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

type testHandler struct {
	onError func(*PullError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *PullError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
