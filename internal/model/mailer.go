package model

// Mailer delivers mail to recipients. Implementations talk to a real
// SMTP relay; services only see this interface.
type Mailer interface {
	Send(to []string, subject, body string) error
}
