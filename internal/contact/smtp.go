package contact

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

var ErrSMTPNotConfigured = errors.New("SMTP credentials not configured")

type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPForwarder mails each submission to the site owner.
type SMTPForwarder struct {
	cfg  SMTPConfig
	send sendFunc
}

func NewSMTPForwarder(cfg SMTPConfig) *SMTPForwarder {
	return &SMTPForwarder{cfg: cfg, send: smtp.SendMail}
}

func (f *SMTPForwarder) Name() string { return "smtp" }

// Forward sends the mail. net/smtp has no context support, so ctx is only
// checked before dialing.
func (f *SMTPForwarder) Forward(ctx context.Context, sub Submission) error {
	if f.cfg.User == "" || f.cfg.Pass == "" {
		return ErrSMTPNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", f.cfg.User, f.cfg.Pass, f.cfg.Host)
	addr := f.cfg.Host + ":" + f.cfg.Port
	if err := f.send(addr, auth, f.cfg.User, []string{f.cfg.ToEmail}, f.compose(sub)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// headerSafe keeps visitor input from starting new header lines.
var headerSafe = strings.NewReplacer("\r", " ", "\n", " ")

func (f *SMTPForwarder) compose(sub Submission) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe.Replace(sub.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, sub.Name, sub.Email, sub.Message)

	return []byte("To: " + f.cfg.ToEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + f.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe.Replace(sub.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}
