// Package notify holds the outbound reminder transports. Both are
// fire-and-forget from the poller's point of view: an error is reported,
// never retried.
package notify

import "context"

// EmailSender delivers a reminder to an email address.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender delivers a reminder to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}
