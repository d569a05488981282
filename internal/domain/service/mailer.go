package service

import "context"

// Email is an outbound plain-text message.
type Email struct {
	From    string
	To      string
	Subject string
	Text    string
}

// Mailer delivers messages out of band.
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}
