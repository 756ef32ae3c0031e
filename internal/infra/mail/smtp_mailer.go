// Package mail provides the SMTP-backed implementation of the Mailer service.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"brewclub/config"
	"brewclub/internal/domain/service"
	"brewclub/internal/errors"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// smtpMailer sends plain-text mail over a single SMTP endpoint.
type smtpMailer struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(params Params) (service.Mailer, error) {
	if params.Config.SMTP == nil || params.Config.SMTP.Host == "" {
		return nil, errors.New("smtp host must be provided")
	}

	return &smtpMailer{
		cfg:    params.Config.SMTP,
		logger: params.Logger,
	}, nil
}

// Send delivers a plain-text message to the given recipients.
func (m *smtpMailer) Send(ctx context.Context, to []string, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send cancelled")
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := buildMessage(m.cfg.From, to, subject, body)
	if err := smtp.SendMail(addr, auth, m.cfg.From, to, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.LogAttrs(ctx, slog.LevelInfo, "Mail sent",
		slog.String("subject", subject),
		slog.Int("recipients", len(to)),
	)

	return nil
}

// buildMessage assembles the RFC 5322 wire form of a plain-text message.
func buildMessage(from string, to []string, subject, body string) []byte {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)

	return []byte(sb.String())
}
