package postmark

// Config holds the Postmark credentials and sender identity. Both
// tokens are required for runtime operation: delivery misconfiguration
// must fail construction, not surface as silent send failures later.
type Config struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail  string `env:"POSTMARK_SENDER_EMAIL"`
}
