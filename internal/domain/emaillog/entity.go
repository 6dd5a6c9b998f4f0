package emaillog

import "time"

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// EmailLog records every outbound email attempt, optionally tied to a
// generated letter.
type EmailLog struct {
	ID             int64
	LetterID       *int64
	RecipientEmail string
	Subject        string
	Status         string
	SentAt         time.Time
}
