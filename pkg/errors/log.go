package errors

import (
	"os"

	"github.com/charmbracelet/log"
)

// LogHandler is an ErrorHandler that writes through a charmbracelet logger.
type LogHandler struct {
	// Logger receives the entries. Nil writes to stderr.
	Logger *log.Logger
	// Verbose adds stack traces to the entries.
	Verbose bool
}

// NewLogHandler returns a LogHandler writing to logger, or to stderr when
// logger is nil.
func NewLogHandler(logger *log.Logger) *LogHandler {
	return &LogHandler{Logger: logger}
}

func (h *LogHandler) logger() *log.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	h.Logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pull"})
	return h.Logger
}

// HandleError logs a PullError at error level.
func (h *LogHandler) HandleError(err *PullError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("engine error", kv...)
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"value", err.Value}
	if err.Op != "" {
		kv = append([]any{"op", err.Op}, kv...)
	}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", kv...)
}
