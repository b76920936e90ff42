package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// ErrNotConfigured возвращается при отправке без настроенного SMTP.
var ErrNotConfigured = errors.New("smtp transport is not configured")

// Config задаёт параметры SMTP-транспорта.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	CodeTTL  time.Duration
}

// Sender отправляет письма с кодами подтверждения через SMTP.
// Пустой Host не мешает запуску приложения: сама отправка в этом
// случае завершается ErrNotConfigured.
type Sender struct {
	client  *gomail.Client
	from    string
	codeTTL time.Duration
}

// NewSender создаёт SMTP-отправитель.
func NewSender(cfg Config) (*Sender, error) {
	sender := &Sender{
		from:    cfg.From,
		codeTTL: cfg.CodeTTL,
	}

	if cfg.Host == "" {
		return sender, nil
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("mail sender: %w", err)
	}

	sender.client = client

	return sender, nil
}

// Configured сообщает, задан ли SMTP-транспорт.
func (s *Sender) Configured() bool {
	return s.client != nil
}

// SendCode доставляет одноразовый код подтверждения на указанный адрес.
func (s *Sender) SendCode(ctx context.Context, email, code string) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("mail sender: from: %w", err)
	}
	if err := msg.To(email); err != nil {
		return fmt.Errorf("mail sender: to: %w", err)
	}

	msg.Subject("Код подтверждения FreshKeeper")
	msg.SetBodyString(gomail.TypeTextPlain, s.codeBody(code))

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mail sender: send: %w", err)
	}

	return nil
}

func (s *Sender) codeBody(code string) string {
	minutes := int(s.codeTTL.Minutes())
	if minutes <= 0 {
		minutes = 10
	}

	return fmt.Sprintf(
		"Ваш код подтверждения: %s\n\nКод действителен %d минут. Никому не сообщайте его.",
		code, minutes,
	)
}
