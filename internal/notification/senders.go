package notification

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Sender entrega uma mensagem em um canal concreto.
type Sender interface {
	Send(ctx context.Context, recipient *models.User, title, message string) error
}

// ===============================
// Stubs (sem transporte real)
// ===============================

type EmailSender struct {
	log zerolog.Logger
}

func NewEmailSender(log zerolog.Logger) *EmailSender {
	return &EmailSender{log: log}
}

func (s *EmailSender) Send(_ context.Context, recipient *models.User, title, message string) error {
	s.log.Info().
		Str("channel", models.ChannelEmail).
		Str("to", recipient.Email).
		Str("title", title).
		Str("message", message).
		Msg("email simulado")
	return nil
}

type SMSSender struct {
	log zerolog.Logger
}

func NewSMSSender(log zerolog.Logger) *SMSSender {
	return &SMSSender{log: log}
}

func (s *SMSSender) Send(_ context.Context, recipient *models.User, title, message string) error {
	s.log.Info().
		Str("channel", models.ChannelSMS).
		Str("to", recipient.Phone).
		Str("title", title).
		Str("message", message).
		Msg("sms simulado")
	return nil
}
