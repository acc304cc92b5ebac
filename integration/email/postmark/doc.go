// Package postmark provides a Postmark-backed implementation of the
// email.Sender collaborator contract.
package postmark
