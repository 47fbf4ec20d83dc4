package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skillwave/skillwave-api/internal/config"
)

// Notifier delivers a short text message to a phone number. Implementations
// are interchangeable; callers treat delivery as fire-and-forget and must not
// fail their own work on a delivery error.
type Notifier interface {
	Notify(ctx context.Context, phone, message string) error
}

// New builds the notifier backend selected by the configuration.
func New(cfg config.NotifierConfig, logger *zerolog.Logger) (Notifier, error) {
	switch cfg.Backend {
	case "textbelt":
		return NewTextbelt(cfg.TextbeltURL, cfg.TextbeltKey), nil
	case "vonage":
		return NewVonage(cfg.VonageAPIKey, cfg.VonageAPISecret, cfg.VonageFrom), nil
	case "email":
		return NewEmail(cfg), nil
	case "off":
		return NewNoop(logger), nil
	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.Backend)
	}
}

// Noop logs and drops every notification. Used when notifications are
// disabled and as the default in tests.
type Noop struct {
	logger *zerolog.Logger
}

func NewNoop(logger *zerolog.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) Notify(_ context.Context, phone, message string) error {
	n.logger.Debug().Str("phone", phone).Str("message", message).Msg("notification dropped (notifier off)")
	return nil
}
