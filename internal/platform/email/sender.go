// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package email

import "context"

// Message is one outbound mail. Body is HTML; the password-reset flow
// is the only producer today.
type Message struct {
	// From overrides the configured default sender when set.
	From    string
	To      []string
	Subject string
	Body    string
}

// Sender delivers messages. Production uses the SMTP implementation;
// tests substitute a recording fake, and deployments without a relay
// get a disabled sender that drops mail.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
