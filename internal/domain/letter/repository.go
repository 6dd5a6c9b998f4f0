package letter

import "context"

type LetterRepository interface {
	List(ctx context.Context, skip, limit int) ([]GeneratedLetter, error)
	GetByID(ctx context.Context, id int64) (GeneratedLetter, error)
	Create(ctx context.Context, newLetter GeneratedLetter) (GeneratedLetter, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}
