package template

import "time"

type LetterTemplate struct {
	ID           int64
	LetterType   string
	TemplateName string
	TemplatePath string
	CreatedBy    *int64
	CreatedAt    time.Time
}
