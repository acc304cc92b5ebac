package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. Messages are saved
// as HTML and JSON files in a directory instead of leaving the machine.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender writing into dir. The
// directory is created on first send.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devMetadata struct {
	Timestamp string            `json:"timestamp"`
	From      string            `json:"from"`
	To        []string          `json:"to"`
	Subject   string            `json:"subject"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Send writes each message to disk.
func (d *DevSender) Send(ctx context.Context, messages []Email) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrSendFailed, err)
	}

	for i, msg := range messages {
		if err := msg.Validate(); err != nil {
			return err
		}

		base := fmt.Sprintf("%s_%03d_%s",
			time.Now().Format("2006_01_02_150405"), i, sanitizeFilename(msg.Subject))

		body := msg.BodyHTML
		if body == "" {
			body = msg.BodyPlain
		}
		if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(body), 0o644); err != nil {
			return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
		}

		meta, err := json.MarshalIndent(devMetadata{
			Timestamp: time.Now().Format(time.RFC3339),
			From:      msg.From,
			To:        msg.To,
			Subject:   msg.Subject,
			Extra:     msg.Extra,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: marshal metadata: %v", ErrSendFailed, err)
		}
		if err := os.WriteFile(filepath.Join(d.dir, base+".json"), meta, 0o644); err != nil {
			return fmt.Errorf("%w: write metadata: %v", ErrSendFailed, err)
		}
	}
	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a subject into a safe, lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")
	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
