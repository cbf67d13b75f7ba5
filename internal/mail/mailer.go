package mail

import (
	"context"
	"log"
)

// Mailer delivers password reset codes. The production deployment plugs
// a real provider in here; the default logs the code instead.
type Mailer interface {
	SendResetCode(ctx context.Context, recipient, code string) error
}

// LogMailer simulates delivery by writing the code to the server log.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendResetCode(_ context.Context, recipient, code string) error {
	log.Printf("[Mail] (simulated) reset code for %s: %s", recipient, code)
	return nil
}
