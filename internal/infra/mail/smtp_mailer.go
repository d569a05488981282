// Package mail delivers outbound email.
package mail

import (
	"context"
	"log/slog"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"bonsai/config"
	"bonsai/internal/domain/service"

	"github.com/pkg/errors"
)

// noopMailer is used when no SMTP relay is configured.
type noopMailer struct {
	logger *slog.Logger
}

func (m *noopMailer) Send(ctx context.Context, email *service.Email) error {
	m.logger.DebugContext(ctx, "[NoopMailer] Mail delivery disabled, skipping",
		slog.String("subject", email.Subject),
	)

	return nil
}

// smtpMailer relays plain-text messages through an SMTP server.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	logger *slog.Logger
	send   func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewMailer returns an SMTP mailer, or a no-op one when no host is configured.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || strings.TrimSpace(cfg.Mail.Host) == "" {
		logger.Info("Mail not configured, using no-op mailer")

		return &noopMailer{logger: logger}
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr:   net.JoinHostPort(cfg.Mail.Host, strconv.Itoa(cfg.Mail.Port)),
		auth:   auth,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Send delivers email. The context is only checked before dialing; net/smtp has no cancellation.
func (m *smtpMailer) Send(ctx context.Context, email *service.Email) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	from, err := mail.ParseAddress(email.From)
	if err != nil {
		return errors.Wrapf(err, "invalid sender %q", email.From)
	}
	to, err := mail.ParseAddress(email.To)
	if err != nil {
		return errors.Wrapf(err, "invalid recipient %q", email.To)
	}

	msg := buildMessage(email, time.Now())
	if err := m.send(m.addr, m.auth, from.Address, []string{to.Address}, msg); err != nil {
		m.logger.ErrorContext(ctx, "Failed to send email", slog.String("subject", email.Subject), slog.Any("error", err))

		return errors.Wrap(err, "failed to send email")
	}

	return nil
}

func buildMessage(email *service.Email, now time.Time) []byte {
	var b strings.Builder
	b.WriteString("From: " + email.From + "\r\n")
	b.WriteString("To: " + email.To + "\r\n")
	b.WriteString("Subject: " + email.Subject + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(email.Text, "\n", "\r\n"))

	return []byte(b.String())
}
