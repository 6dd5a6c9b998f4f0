package postgresql

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/emaillog"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

type emailLogRepositoryImpl struct {
	db *database.DB
}

func NewEmailLogRepository(db *database.DB) emaillog.EmailLogRepository {
	return &emailLogRepositoryImpl{db: db}
}

// Create implements emaillog.EmailLogRepository.
func (r *emailLogRepositoryImpl) Create(ctx context.Context, log emaillog.EmailLog) (emaillog.EmailLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO email_logs (letter_id, recipient_email, subject, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, letter_id, recipient_email, subject, status, sent_at
	`

	var created emaillog.EmailLog
	err := q.QueryRow(ctx, query,
		log.LetterID,
		log.RecipientEmail,
		log.Subject,
		log.Status,
	).Scan(
		&created.ID,
		&created.LetterID,
		&created.RecipientEmail,
		&created.Subject,
		&created.Status,
		&created.SentAt,
	)
	if err != nil {
		return emaillog.EmailLog{}, err
	}
	return created, nil
}

// ListByLetter implements emaillog.EmailLogRepository.
func (r *emailLogRepositoryImpl) ListByLetter(ctx context.Context, letterID int64) ([]emaillog.EmailLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, letter_id, recipient_email, subject, status, sent_at
		FROM email_logs
		WHERE letter_id = $1
		ORDER BY sent_at DESC
	`

	rows, err := q.Query(ctx, query, letterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []emaillog.EmailLog
	for rows.Next() {
		var found emaillog.EmailLog
		if err := rows.Scan(
			&found.ID,
			&found.LetterID,
			&found.RecipientEmail,
			&found.Subject,
			&found.Status,
			&found.SentAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, found)
	}
	return logs, rows.Err()
}
