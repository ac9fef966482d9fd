package notifications

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"petty-shelter.backend/internal/config"
	"petty-shelter.backend/pkg/logger"
)

// Mailer sends transactional mail. Callers treat failures as non-fatal:
// a lost email never fails the request that triggered it.
type Mailer interface {
	SendWelcome(ctx context.Context, to, firstName string) error
	SendConfirmationCode(ctx context.Context, to, firstName, code string) error
	SendEmailVerified(ctx context.Context, to, firstName string) error
	SendPasswordReset(ctx context.Context, to, firstName, token string) error
	SendStaffInvite(ctx context.Context, to, name, role, token string) error
	SendVisitScheduled(ctx context.Context, to, name, visitDateAndTime string) error
}

// SMTPMailer delivers mail over SMTP.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		logger.Error(ctx, "send mail failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return err
	}
	return nil
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, firstName string) error {
	body := fmt.Sprintf(`<h2>Welcome to Petty Shelter, %s!</h2>
<p>Your account has been created. Browse our pets, schedule a visit, or apply to adopt.</p>`, firstName)
	return m.send(ctx, to, "Welcome to Petty Shelter", body)
}

func (m *SMTPMailer) SendConfirmationCode(ctx context.Context, to, firstName, code string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your email confirmation code is:</p>
<h2>%s</h2>
<p>The code expires in 30 minutes.</p>`, firstName, code)
	return m.send(ctx, to, "Confirm your email", body)
}

func (m *SMTPMailer) SendEmailVerified(ctx context.Context, to, firstName string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your email address has been verified. Thanks for helping us keep your account safe.</p>`, firstName)
	return m.send(ctx, to, "Email verified", body)
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, firstName, token string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Use the token below within the next hour:</p>
<p><code>%s</code></p>
<p>If you did not request this, you can ignore this email.</p>`, firstName, token)
	return m.send(ctx, to, "Reset your password", body)
}

func (m *SMTPMailer) SendStaffInvite(ctx context.Context, to, name, role, token string) error {
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>You have been invited to join Petty Shelter as a %s. Sign up with the invite token below within 3 days:</p>
<p><code>%s</code></p>`, name, role, token)
	return m.send(ctx, to, "You're invited to Petty Shelter", body)
}

func (m *SMTPMailer) SendVisitScheduled(ctx context.Context, to, name, visitDateAndTime string) error {
	display := visitDateAndTime
	if t, err := time.Parse(time.RFC3339, visitDateAndTime); err == nil {
		display = t.Format("Jan 2, 2006 3:04:05 PM")
	}
	body := fmt.Sprintf(`<p>Hi %s,</p>
<p>Your shelter visit has been scheduled for <strong>%s</strong>.</p>
<p>We will confirm it shortly.</p>`, name, display)
	return m.send(ctx, to, "Visit scheduled", body)
}

// NoopMailer is used when SMTP is not configured. It logs what would have
// been sent so local development stays observable.
type NoopMailer struct{}

func (NoopMailer) log(ctx context.Context, kind, to string) error {
	logger.Debug(ctx, "mail suppressed, smtp not configured",
		zap.String("kind", kind),
		zap.String("to", to))
	return nil
}

func (n NoopMailer) SendWelcome(ctx context.Context, to, _ string) error {
	return n.log(ctx, "welcome", to)
}

func (n NoopMailer) SendConfirmationCode(ctx context.Context, to, _, _ string) error {
	return n.log(ctx, "confirmation_code", to)
}

func (n NoopMailer) SendEmailVerified(ctx context.Context, to, _ string) error {
	return n.log(ctx, "email_verified", to)
}

func (n NoopMailer) SendPasswordReset(ctx context.Context, to, _, _ string) error {
	return n.log(ctx, "password_reset", to)
}

func (n NoopMailer) SendStaffInvite(ctx context.Context, to, _, _, _ string) error {
	return n.log(ctx, "staff_invite", to)
}

func (n NoopMailer) SendVisitScheduled(ctx context.Context, to, _, _ string) error {
	return n.log(ctx, "visit_scheduled", to)
}
