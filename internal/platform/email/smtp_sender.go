// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package email

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/hearsay-social/hearsay/internal/pkg/log"
	"github.com/hearsay-social/hearsay/internal/platform/config"
)

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPSender creates an SMTP sender. Host and port are required;
// from is the default sender address for messages that carry none.
func NewSMTPSender(host, port, username, password, from string) (*SMTPSender, error) {
	if host == "" || port == "" {
		return nil, fmt.Errorf("SMTP host and port are required")
	}
	return &SMTPSender{host: host, port: port, username: username, password: password, from: from}, nil
}

// NewFromConfig picks the sender for the configured environment: SMTP
// when a host is set, otherwise a disabled sender that drops mail so
// the rest of the app still runs.
func NewFromConfig(cfg *config.EmailConfig) Sender {
	if cfg.SMTPHost == "" {
		log.Warn("SMTP_HOST not set, email delivery disabled")
		return disabledSender{}
	}

	sender, err := NewSMTPSender(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort), cfg.SMTPUser, cfg.SMTPPass, cfg.From)
	if err != nil {
		log.Warn("invalid SMTP config, email delivery disabled: %v", err)
		return disabledSender{}
	}
	return sender
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("message has no recipients")
	}

	from := msg.From
	if from == "" {
		from = s.from
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(msg.Body)

	addr := net.JoinHostPort(s.host, s.port)
	return smtp.SendMail(addr, auth, envelopeAddress(from), msg.To, []byte(b.String()))
}

// envelopeAddress strips a display name ("Hearsay <x@y>" -> "x@y") for
// the SMTP envelope, which takes bare addresses only.
func envelopeAddress(from string) string {
	if parsed, err := mail.ParseAddress(from); err == nil {
		return parsed.Address
	}
	return from
}

// disabledSender drops mail. Password-reset emails are lost, which is
// the acceptable trade for local setups without an SMTP relay.
type disabledSender struct{}

func (disabledSender) Send(ctx context.Context, msg Message) error {
	log.Warn("email delivery disabled, dropping message to %v", msg.To)
	return nil
}
