// internal/app/system/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Email is a fully-built message ready to send.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends email over SMTP. With no host configured it degrades to a
// logged no-op, which is the normal state outside production.
type Mailer struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
	Log      *zap.Logger
}

// New builds a Mailer. host may be empty.
func New(host string, port int, user, pass, from, fromName string, logger *zap.Logger) *Mailer {
	return &Mailer{Host: host, Port: port, User: user, Pass: pass, From: from, FromName: fromName, Log: logger}
}

// Send delivers the email, or logs and drops it when SMTP is unconfigured.
// Callers must not treat a send failure as fatal to their own operation.
func (m *Mailer) Send(e Email) error {
	if m.Host == "" {
		m.Log.Info("mail delivery skipped (no SMTP host)",
			zap.String("to", e.To), zap.String("subject", e.Subject))
		return nil
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", m.FromName, m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", e.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", e.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(e.TextBody)

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	var a smtp.Auth
	if m.User != "" {
		a = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	if err := smtp.SendMail(addr, a, m.From, []string{e.To}, []byte(msg.String())); err != nil {
		m.Log.Error("mail delivery failed", zap.String("to", e.To), zap.Error(err))
		return err
	}
	return nil
}
