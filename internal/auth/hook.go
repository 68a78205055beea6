package auth

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/studentresult/srms/internal/util"
)

// Event describes one authentication or credential-change attempt for
// diagnostic logging. It never carries a secret.
type Event struct {
	Operation string // "login", "student-login", "change-password".
	Email     string // Raw submitted email; masked before logging.
	Role      Role   // Resolved role, empty when unresolved.
	Outcome   string // "ok", "bad-credentials", "disabled", "error".
	Err       error  // Store or migration failure detail, if any.
}

// Hook receives auth events. Implementations must not log secrets.
type Hook interface {
	OnEvent(ctx context.Context, event Event)
}

// NoopHook discards all events. Used in tests.
type NoopHook struct{}

// OnEvent implements Hook.
func (NoopHook) OnEvent(ctx context.Context, event Event) {}

// LogHook logs auth events through logrus with severity by outcome.
type LogHook struct{}

// NewLogHook constructs a LogHook.
func NewLogHook() *LogHook {
	return &LogHook{}
}

// OnEvent logs the event with the email masked.
func (h *LogHook) OnEvent(ctx context.Context, event Event) {
	entry := log.WithFields(log.Fields{
		"operation": event.Operation,
		"email":     util.MaskEmail(event.Email),
		"outcome":   event.Outcome,
	})
	if event.Role != "" {
		entry = entry.WithField("role", string(event.Role))
	}
	if event.Err != nil {
		entry = entry.WithError(event.Err)
	}

	switch event.Outcome {
	case "ok":
		entry.Debug("authentication succeeded")
	case "error":
		entry.Error("authentication failed on store error")
	default:
		entry.Warn("authentication rejected")
	}
}
