package services

import "log"

// Mailer delivers verification tokens out-of-band. Real delivery lives
// behind this interface; the backend only decides when to send.
type Mailer interface {
	SendVerification(email, token string) error
}

// LogMailer writes the verification token to the process log instead of
// sending mail. Used by the dev server.
type LogMailer struct{}

// SendVerification logs the token for manual confirmation.
func (m *LogMailer) SendVerification(email, token string) error {
	log.Printf("verification token for %s: %s", email, token)
	return nil
}
