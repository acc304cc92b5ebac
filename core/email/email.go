package email

import (
	"errors"
	"fmt"
	"regexp"
)

// Email is one outbound message. Exactly one of BodyHTML and BodyPlain
// must be set; Extra carries provider-specific extension fields such as
// a reply-to override, keyed by the provider's field names.
type Email struct {
	From      string
	To        []string
	Subject   string
	BodyHTML  string
	BodyPlain string
	Extra     map[string]string
}

// ExtraReplyTo is the conventional Extra key for a reply-to override.
const ExtraReplyTo = "reply-to"

var (
	// ErrInvalidMessage reports a message failing validation.
	ErrInvalidMessage = errors.New("email: invalid message")

	// ErrSendFailed reports a transport-level delivery failure.
	ErrSendFailed = errors.New("email: failed to send")

	// ErrBadRequest reports a delivery rejected by the provider
	// (transport status 400 or above).
	ErrBadRequest = errors.New("email: bad request")

	// ErrInvalidConfig reports missing required sender configuration.
	ErrInvalidConfig = errors.New("email: invalid configuration")
)

var addressRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Validate checks the message for the fields every provider needs.
func (e Email) Validate() error {
	if e.From == "" || !addressRegex.MatchString(e.From) {
		return fmt.Errorf("%w: sender address %q", ErrInvalidMessage, e.From)
	}
	if len(e.To) == 0 {
		return fmt.Errorf("%w: no recipients", ErrInvalidMessage)
	}
	for _, to := range e.To {
		if !addressRegex.MatchString(to) {
			return fmt.Errorf("%w: recipient address %q", ErrInvalidMessage, to)
		}
	}
	if e.Subject == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	if e.BodyHTML == "" && e.BodyPlain == "" {
		return fmt.Errorf("%w: empty body", ErrInvalidMessage)
	}
	return nil
}

// ReplyTo returns the reply-to override, if any.
func (e Email) ReplyTo() (string, bool) {
	v, ok := e.Extra[ExtraReplyTo]
	return v, ok
}
