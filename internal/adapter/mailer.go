package adapter

import (
	"context"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/jobseekr/go-job-board/internal/config"
	"github.com/jobseekr/go-job-board/internal/logger"
)

// smtpMailer is the net/smtp implementation of [Mailer].
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] against the configured SMTP relay.
// When no username is configured the mailer connects without
// authentication, which matches local development relays.
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	logger.Debug().Str("host", cfg.Host).Msg("creating smtp mailer")
	return &smtpMailer{
		addr:   cfg.Host + ":" + strconv.Itoa(cfg.Port),
		auth:   auth,
		from:   cfg.From,
		logger: logger,
	}
}

// Send delivers a plain-text message. Failures are wrapped in
// [ErrMailNotSent] so that callers can trigger their compensating actions
// without inspecting transport-level errors.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx)

	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		log.Err(err).Str("to", to).Msg("smtp send failed")
		return fmt.Errorf("%w: %w", ErrMailNotSent, err)
	}

	return nil
}
