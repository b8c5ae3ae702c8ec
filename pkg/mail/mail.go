// Package mail provides a fluent SMTP mailer for Vanik.
//
// Usage:
//
//	mail.To("user@example.com").
//	    Subject("Verify your account").
//	    Body("<h1>Welcome</h1>").
//	    Send()
//
// When no SMTP credentials are configured (local dev, CI) the message is
// written to the log instead, the way Django's console backend behaves.
package mail

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shashiranjanraj/vanik/config"
	"github.com/shashiranjanraj/vanik/pkg/logger"
	"github.com/shashiranjanraj/vanik/pkg/metrics"
)

// ------------------- Config -------------------

// SMTP holds connection credentials (populated from env/config).
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

func defaultSMTP() SMTP {
	return SMTP{
		Host:     config.Get("MAIL_HOST", "smtp.mailtrap.io"),
		Port:     config.Get("MAIL_PORT", "587"),
		Username: config.Get("MAIL_USERNAME", ""),
		Password: config.Get("MAIL_PASSWORD", ""),
		From:     config.Get("MAIL_FROM", "hello@vanik.app"),
		FromName: config.Get("MAIL_FROM_NAME", "Vanik"),
	}
}

// ------------------- Message -------------------

// Message is a fluent builder for an email.
type Message struct {
	to      []string
	from    string // overrides the configured sender when set
	subject string
	body    string
	isHTML  bool
	smtpCfg SMTP
}

// To sets the primary recipients.
func To(addresses ...string) *Message {
	return &Message{
		to:      addresses,
		isHTML:  true,
		smtpCfg: defaultSMTP(),
	}
}

// From overrides the configured sender address for this message.
func (m *Message) From(address string) *Message {
	m.from = address
	return m
}

// Subject sets the email subject.
func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets the email body (HTML by default).
func (m *Message) Body(html string) *Message {
	m.body = html
	m.isHTML = true
	return m
}

// Text sets a plain-text body.
func (m *Message) Text(text string) *Message {
	m.body = text
	m.isHTML = false
	return m
}

// UseConfig overrides the SMTP settings for this message.
func (m *Message) UseConfig(cfg SMTP) *Message {
	m.smtpCfg = cfg
	return m
}

// Deliver is the non-fluent shortcut used by services:
//
//	err := mail.Deliver([]string{addr}, "Verify your account", html)
func Deliver(to []string, subject, html string) error {
	return To(to...).Subject(subject).Body(html).Send()
}

// ------------------- Sending -------------------

// Send delivers the email via SMTP. Without configured credentials the
// message is logged and counted, but nothing is sent.
func (m *Message) Send() error {
	cfg := m.smtpCfg

	envelopeFrom := cfg.From
	headerFrom := fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	if m.from != "" {
		envelopeFrom = m.from
		headerFrom = m.from
	}

	if cfg.Username == "" {
		logger.Info("mail: SMTP not configured, writing message to log",
			"to", strings.Join(m.to, ", "),
			"from", envelopeFrom,
			"subject", m.subject,
			"body", m.body,
		)
		metrics.MailSentTotal.WithLabelValues("logged").Inc()
		return nil
	}

	raw := m.buildRaw(headerFrom)

	addr := cfg.Host + ":" + cfg.Port
	auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)

	// Use TLS for port 465, STARTTLS for 587/25.
	var err error
	if cfg.Port == "465" {
		err = m.sendTLS(addr, auth, envelopeFrom, m.to, raw, cfg.Host)
	} else {
		err = smtp.SendMail(addr, auth, envelopeFrom, m.to, raw)
	}

	if err != nil {
		metrics.MailSentTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.MailSentTotal.WithLabelValues("sent").Inc()
	return nil
}

func (m *Message) sendTLS(addr string, auth smtp.Auth, from string, to []string, raw []byte, host string) error {
	tlsCfg := &tls.Config{ServerName: host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return fmt.Errorf("mail: TLS dial: %w", err)
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	defer w.Close()
	_, err = w.Write(raw)
	return err
}

func (m *Message) buildRaw(from string) []byte {
	contentType := "text/plain"
	if m.isHTML {
		contentType = "text/html"
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(m.to, ", ") + "\r\n")
	b.WriteString("Subject: " + m.subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString(fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"\r\n", contentType))
	b.WriteString("\r\n")
	b.WriteString(m.body)
	return []byte(b.String())
}
