package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/Dosada05/sports-calendar/mailer"
	"github.com/Dosada05/sports-calendar/models"
)

//go:embed templates/*.html
var emailTemplates embed.FS

var errNoRecipient = errors.New("event has no submitter to notify")

const (
	templateEventApproved = "event_approved.html"
	templateEventRejected = "event_rejected.html"
	templateUserApproved  = "user_approved.html"
	templateUserRejected  = "user_rejected.html"
)

type EmailService struct {
	sender    mailer.Sender
	templates *template.Template
}

func NewEmailService(sender mailer.Sender) (*EmailService, error) {
	t, err := template.ParseFS(emailTemplates, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга шаблонов писем: %w", err)
	}
	return &EmailService{sender: sender, templates: t}, nil
}

func (s *EmailService) GenerateEmailBody(name string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, name, data); err != nil {
		return "", fmt.Errorf("ошибка выполнения шаблона %s: %w", name, err)
	}
	return body.String(), nil
}

func (s *EmailService) send(ctx context.Context, to, subject, tmpl string, data interface{}) error {
	html, err := s.GenerateEmailBody(tmpl, data)
	if err != nil {
		return err
	}
	if err := s.sender.Send(ctx, mailer.Message{To: to, Subject: subject, HTML: html}); err != nil {
		return fmt.Errorf("ошибка отправки письма %s: %w", to, err)
	}
	return nil
}

func (s *EmailService) SendEventApproved(ctx context.Context, e models.Event) error {
	if e.SubmittedBy == nil {
		return errNoRecipient
	}
	subject := fmt.Sprintf("Мероприятие «%s» одобрено", e.Title)
	return s.send(ctx, *e.SubmittedBy, subject, templateEventApproved, struct{ Event models.Event }{e})
}

func (s *EmailService) SendEventRejected(ctx context.Context, e models.Event) error {
	if e.SubmittedBy == nil {
		return errNoRecipient
	}
	subject := fmt.Sprintf("Мероприятие «%s» отклонено", e.Title)
	return s.send(ctx, *e.SubmittedBy, subject, templateEventRejected, struct{ Event models.Event }{e})
}

func (s *EmailService) SendUserApproved(ctx context.Context, u models.User) error {
	return s.send(ctx, u.Email, "Регистрация подтверждена", templateUserApproved, struct{ User models.User }{u})
}

func (s *EmailService) SendUserRejected(ctx context.Context, u models.User) error {
	return s.send(ctx, u.Email, "Регистрация отклонена", templateUserRejected, struct{ User models.User }{u})
}
