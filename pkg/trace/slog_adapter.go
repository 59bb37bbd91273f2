package trace

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes access events to an slog.Logger.
// Useful for development when you want to see attribute traffic in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("op", event.Operation.String()),
		slog.String("attr_id", event.AttributeID.String()),
	}

	if event.AttributeName != "" {
		attrs = append(attrs, slog.String("attr", event.AttributeName))
	}
	if event.Value != nil {
		attrs = append(attrs, slog.String("value", fmt.Sprintf("%v", event.Value)))
	}
	if event.Error != "" {
		attrs = append(attrs, slog.String("error", event.Error))
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "attribute access", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
