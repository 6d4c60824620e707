// Package mail implements the outbound email port over plain SMTP with
// STARTTLS authentication.
package mail

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/heliowash/backoffice/internal/core/ports"
)

// SMTPSender sends email through a single SMTP relay.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPSender creates a sender bound to one relay. from is the default
// envelope sender used when a message carries none.
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Ensure SMTPSender implements the EmailSender port
var _ ports.EmailSender = (*SMTPSender)(nil)

// Send dispatches one message. The context deadline is honoured by failing
// fast once it has expired; smtp.SendMail itself is not interruptible.
func (s *SMTPSender) Send(ctx context.Context, msg ports.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipient")
	}

	from := msg.From
	if from == "" {
		from = s.from
	}

	recipients := append([]string(nil), msg.To...)
	recipients = append(recipients, msg.CC...)

	body := buildMIME(from, msg)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, from, recipients, body); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", strings.Join(msg.To, ","), err)
	}
	return nil
}

// buildMIME renders the message as multipart/mixed with an alternative
// text/html part and an optional base64 PDF attachment.
func buildMIME(from string, msg ports.EmailMessage) []byte {
	var buf bytes.Buffer

	const mixedBoundary = "helio-mixed-0a1b2c"
	const altBoundary = "helio-alt-3d4e5f"

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	if len(msg.CC) > 0 {
		fmt.Fprintf(&buf, "Cc: %s\r\n", strings.Join(msg.CC, ", "))
	}
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mixedBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", altBoundary)

	fmt.Fprintf(&buf, "--%s\r\n", altBoundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(msg.BodyText)
	buf.WriteString("\r\n")

	if msg.BodyHTML != "" {
		fmt.Fprintf(&buf, "--%s\r\n", altBoundary)
		buf.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		buf.WriteString(msg.BodyHTML)
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", altBoundary)

	if len(msg.Attachment) > 0 {
		fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
		buf.WriteString("Content-Type: application/pdf\r\n")
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", msg.AttachName)

		encoded := base64.StdEncoding.EncodeToString(msg.Attachment)
		for len(encoded) > 76 {
			buf.WriteString(encoded[:76])
			buf.WriteString("\r\n")
			encoded = encoded[76:]
		}
		buf.WriteString(encoded)
		buf.WriteString("\r\n")
	}
	fmt.Fprintf(&buf, "--%s--\r\n", mixedBoundary)

	return buf.Bytes()
}
