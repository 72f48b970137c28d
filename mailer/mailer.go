// Package mailer delivers messages with a single PDF attachment over SMTP.
package mailer

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/pkg/errors"

	"github.com/hidrodema/obra-forms/config"
)

type Mailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether delivery settings are present. Unconfigured
// mailers must be treated as a no-op by callers, not an error.
func (m *Mailer) Configured() bool {
	return m.cfg.Host != "" && m.cfg.From != ""
}

// Send delivers a plain-text message with one attached file.
func (m *Mailer) Send(to, subject, body string, attachment []byte, filename string) error {
	if !m.Configured() {
		return errors.New("mailer: not configured")
	}

	msg := m.compose(to, subject, body, attachment, filename)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return errors.Wrap(err, "mailer.dial")
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return errors.Wrap(err, "mailer.client")
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: m.cfg.Host, MinVersion: tls.VersionTLS12}
		err = c.StartTLS(tlsCfg)
		if err != nil {
			return errors.Wrap(err, "mailer.starttls")
		}
	}

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		err = c.Auth(auth)
		if err != nil {
			return errors.Wrap(err, "mailer.auth")
		}
	}

	err = c.Mail(m.cfg.From)
	if err != nil {
		return errors.Wrap(err, "mailer.from")
	}
	err = c.Rcpt(to)
	if err != nil {
		return errors.Wrap(err, "mailer.rcpt")
	}

	w, err := c.Data()
	if err != nil {
		return errors.Wrap(err, "mailer.data")
	}
	_, err = w.Write(msg)
	if err != nil {
		return errors.Wrap(err, "mailer.write")
	}
	return errors.Wrap(w.Close(), "mailer.close")
}

func (m *Mailer) compose(to, subject, body string, attachment []byte, filename string) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", m.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", body)

	if len(attachment) > 0 {
		write("--%s\r\n", boundary)
		write("Content-Type: application/pdf; name=%q\r\n", filename)
		write("Content-Disposition: attachment; filename=%q\r\n", filename)
		write("Content-Transfer-Encoding: base64\r\n\r\n")

		encoded := base64.StdEncoding.EncodeToString(attachment)
		for len(encoded) > 76 {
			write("%s\r\n", encoded[:76])
			encoded = encoded[76:]
		}
		write("%s\r\n\r\n", encoded)
	}

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}
