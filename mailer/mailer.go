package mailer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

var ErrInvalidMessage = errors.New("mail message requires recipient and subject")

// Message is a single pre-rendered HTML email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (m Message) validate() error {
	if strings.TrimSpace(m.To) == "" || strings.TrimSpace(m.Subject) == "" {
		return ErrInvalidMessage
	}
	return nil
}

// Sender delivers a message or reports why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender returns a Sender that only logs messages. Used when no mail
// backend is configured.
func NewNoopSender(logger *slog.Logger) Sender {
	return &noopSender{logger: logger}
}

func (s *noopSender) Send(ctx context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "mail backend disabled, message not sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
