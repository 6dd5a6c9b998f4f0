package letter

import "time"

const (
	StatusGenerated = "generated"
	StatusSent      = "sent"
)

type GeneratedLetter struct {
	ID           int64
	UserID       int64
	LetterType   Type
	LetterData   map[string]string
	Status       string
	DocumentPath *string
	GeneratedBy  *int64
	GeneratedAt  time.Time
}
