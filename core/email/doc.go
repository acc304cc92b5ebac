// Package email defines the outbound mail collaborator contract: the
// Email message type, the Sender interface providers implement, and a
// DevSender that writes messages to disk for local development.
package email
