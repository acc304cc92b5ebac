package email

import "context"

// Sender delivers a batch of messages through one outbound provider.
// Implementations validate each message and stop at the first failure.
type Sender interface {
	Send(ctx context.Context, messages []Email) error
}
