package auth

import "log"

// Mailer delivers sign-in links. The real sender lives outside this service;
// LogMailer prints the link for local development.
type Mailer interface {
	SendSignInLink(email, link string) error
}

type LogMailer struct{}

func (LogMailer) SendSignInLink(email, link string) error {
	log.Printf("[Mailer] sign-in link for %s: %s", email, link)
	return nil
}
