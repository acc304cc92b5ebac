package postmark

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/appkit/core/email"
)

// Client is a Postmark-backed email.Sender.
type Client struct {
	client *postmark.Client
	config Config
}

// New creates a Postmark sender. Missing credentials are a construction
// failure carrying the offending key.
func New(cfg Config) (*Client, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", email.ErrInvalidConfig)
	}
	if cfg.AccountToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_ACCOUNT_TOKEN is required", email.ErrInvalidConfig)
	}

	return &Client{
		client: postmark.NewClient(cfg.ServerToken, cfg.AccountToken),
		config: cfg,
	}, nil
}

// Send delivers messages through Postmark's transactional API, stopping
// at the first failure. A provider rejection (ErrorCode set, transport
// status 400 or above) surfaces as a generic email.ErrBadRequest.
func (c *Client) Send(ctx context.Context, messages []email.Email) error {
	for _, msg := range messages {
		if err := msg.Validate(); err != nil {
			return err
		}

		from := msg.From
		if from == "" {
			from = c.config.SenderEmail
		}

		out := postmark.Email{
			From:     from,
			To:       strings.Join(msg.To, ","),
			Subject:  msg.Subject,
			HTMLBody: msg.BodyHTML,
			TextBody: msg.BodyPlain,
		}
		if replyTo, ok := msg.ReplyTo(); ok {
			out.ReplyTo = replyTo
		}

		resp, err := c.client.SendEmail(ctx, out)
		if err != nil {
			return errors.Join(email.ErrSendFailed, err)
		}
		if resp.ErrorCode > 0 {
			return errors.Join(
				email.ErrBadRequest,
				fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
			)
		}
	}
	return nil
}
