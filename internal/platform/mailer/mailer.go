package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	portssvc "github.com/leavehq/leave_management_app/internal/core/ports/services"
	"github.com/leavehq/leave_management_app/internal/platform/config"
)

// SMTPMailer sends notification emails over plain SMTP with optional auth.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPMailer creates a mailer from the SMTP section of the config.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		logger:   logger,
	}
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

// SendLoginNotification emails the user that a login just happened on their
// account. Errors are returned so the caller can log them; callers are
// expected to invoke this off the request path.
func (m *SMTPMailer) SendLoginNotification(ctx context.Context, to string, name string, meta portssvc.LoginMetadata) error {
	if m.host == "" {
		m.logger.Debug("SMTP host not configured, skipping login notification",
			slog.String("recipient", to))
		return nil
	}

	subject := "New login to your leave management account"
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour account was just used to sign in.\r\n\r\nTime: %s\r\nIP address: %s\r\nUser agent: %s\r\n\r\nIf this was not you, please reset your password immediately.\r\n",
		name,
		meta.Timestamp.Format("2006-01-02 15:04:05 MST"),
		meta.IP,
		meta.UserAgent,
	)

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send login notification to %s: %w", to, err)
	}
	return nil
}
