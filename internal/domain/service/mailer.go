package service

import "context"

// Mailer defines the interface for sending plain-text email.
// This abstracts the SMTP details from the use cases.
type Mailer interface {
	// Send delivers a plain-text message to the given recipients.
	Send(ctx context.Context, to []string, subject, body string) error
}
