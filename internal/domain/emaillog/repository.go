package emaillog

import "context"

type EmailLogRepository interface {
	Create(ctx context.Context, log EmailLog) (EmailLog, error)
	ListByLetter(ctx context.Context, letterID int64) ([]EmailLog, error)
}
