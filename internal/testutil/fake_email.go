package testutil

import (
	"context"
	"sync"

	"github.com/hearsay-social/hearsay/internal/platform/email"
)

// FakeEmailSender records messages instead of sending them.
type FakeEmailSender struct {
	mu       sync.Mutex
	Messages []email.Message
	Err      error
}

var _ email.Sender = (*FakeEmailSender)(nil)

func (f *FakeEmailSender) Send(ctx context.Context, msg email.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Messages = append(f.Messages, msg)
	return nil
}

// Sent returns a copy of the recorded messages.
func (f *FakeEmailSender) Sent() []email.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]email.Message, len(f.Messages))
	copy(out, f.Messages)
	return out
}
