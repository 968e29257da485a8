package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"partner-portal/internal/domain/verification"
	"partner-portal/internal/pkg/config"
	"partner-portal/internal/usecase/commands"
)

// New returns the SMTP mailer when a host is configured, otherwise the
// log mailer. Local development runs without an SMTP server.
func New(cfg config.MailConfig) commands.Mailer {
	if cfg.SMTPHost == "" {
		slog.Warn("SMTP_HOST not set, verification codes will be logged instead of mailed")
		return &LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

type SMTPMailer struct {
	cfg config.MailConfig
}

func (m *SMTPMailer) SendPayoutOTP(ctx context.Context, email, code string, terms verification.WithdrawalTerms) error {
	var body strings.Builder
	fmt.Fprintf(&body, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&body, "To: %s\r\n", email)
	body.WriteString("Subject: Your withdrawal confirmation code\r\n")
	body.WriteString("\r\n")
	fmt.Fprintf(&body, "Your confirmation code is %s.\r\n\r\n", code)
	fmt.Fprintf(&body, "It confirms a withdrawal of %s for event %s.\r\n", terms.Amount.StringFixed(2), terms.EventID)
	body.WriteString("If you did not request this, change your password immediately.\r\n")

	addr := m.cfg.SMTPHost + ":" + m.cfg.SMTPPort
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{email}, []byte(body.String())); err != nil {
		return fmt.Errorf("failed to send OTP mail: %w", err)
	}
	return nil
}

// LogMailer writes the code to the log. Development only.
type LogMailer struct{}

func (m *LogMailer) SendPayoutOTP(ctx context.Context, email, code string, terms verification.WithdrawalTerms) error {
	slog.Info("payout OTP issued",
		"email", email,
		"code", code,
		"event_id", terms.EventID,
		"amount", terms.Amount.StringFixed(2))
	return nil
}
