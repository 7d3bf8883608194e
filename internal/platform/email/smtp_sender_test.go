// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearsay-social/hearsay/internal/platform/config"
)

func TestNewSMTPSender_RequiresHostAndPort(t *testing.T) {
	_, err := NewSMTPSender("", "587", "", "", "no-reply@hearsay.social")
	assert.Error(t, err)

	_, err = NewSMTPSender("smtp.example.com", "", "", "", "no-reply@hearsay.social")
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("No SMTP Host Yields A Working Disabled Sender", func(t *testing.T) {
		// A clean checkout without SMTP env must still produce a
		// sender the server can boot and run with.
		sender := NewFromConfig(&config.EmailConfig{SMTPPort: 587})

		require.NotNil(t, sender)
		err := sender.Send(context.Background(), Message{
			To:      []string{"ben@example.com"},
			Subject: "hello",
			Body:    "<p>hi</p>",
		})
		assert.NoError(t, err)
	})

	t.Run("Configured Host Yields The SMTP Sender", func(t *testing.T) {
		sender := NewFromConfig(&config.EmailConfig{
			SMTPHost: "smtp.example.com",
			SMTPPort: 587,
			From:     "no-reply@hearsay.social",
		})

		_, ok := sender.(*SMTPSender)
		assert.True(t, ok)
	})
}

func TestEnvelopeAddress(t *testing.T) {
	assert.Equal(t, "x@y.com", envelopeAddress("Hearsay <x@y.com>"))
	assert.Equal(t, "x@y.com", envelopeAddress("x@y.com"))
	assert.Equal(t, "not-an-address", envelopeAddress("not-an-address"))
}

func TestSMTPSender_RejectsEmptyRecipients(t *testing.T) {
	sender, err := NewSMTPSender("smtp.example.com", "587", "", "", "no-reply@hearsay.social")
	require.NoError(t, err)

	assert.Error(t, sender.Send(context.Background(), Message{Subject: "x"}))
}
