package postgresql

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

type letterRepositoryImpl struct {
	db *database.DB
}

func NewLetterRepository(db *database.DB) letter.LetterRepository {
	return &letterRepositoryImpl{db: db}
}

const letterColumns = `id, user_id, letter_type, letter_data, status, document_path,
			   generated_by, generated_at`

func scanLetter(row interface {
	Scan(dest ...interface{}) error
}) (letter.GeneratedLetter, error) {
	var found letter.GeneratedLetter
	err := row.Scan(
		&found.ID,
		&found.UserID,
		&found.LetterType,
		&found.LetterData,
		&found.Status,
		&found.DocumentPath,
		&found.GeneratedBy,
		&found.GeneratedAt,
	)
	return found, err
}

// List implements letter.LetterRepository.
func (r *letterRepositoryImpl) List(ctx context.Context, skip, limit int) ([]letter.GeneratedLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + letterColumns + `
		FROM generated_letters
		ORDER BY generated_at DESC
		OFFSET $1 LIMIT $2
	`

	rows, err := q.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var letters []letter.GeneratedLetter
	for rows.Next() {
		found, err := scanLetter(rows)
		if err != nil {
			return nil, err
		}
		letters = append(letters, found)
	}
	return letters, rows.Err()
}

// GetByID implements letter.LetterRepository.
func (r *letterRepositoryImpl) GetByID(ctx context.Context, id int64) (letter.GeneratedLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + letterColumns + `
		FROM generated_letters
		WHERE id = $1
	`

	found, err := scanLetter(q.QueryRow(ctx, query, id))
	if err != nil {
		return letter.GeneratedLetter{}, err
	}
	return found, nil
}

// Create implements letter.LetterRepository.
func (r *letterRepositoryImpl) Create(ctx context.Context, newLetter letter.GeneratedLetter) (letter.GeneratedLetter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO generated_letters (
			user_id, letter_type, letter_data, status, document_path, generated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + letterColumns + `
	`

	created, err := scanLetter(q.QueryRow(ctx, query,
		newLetter.UserID,
		newLetter.LetterType,
		newLetter.LetterData,
		newLetter.Status,
		newLetter.DocumentPath,
		newLetter.GeneratedBy,
	))
	if err != nil {
		return letter.GeneratedLetter{}, err
	}
	return created, nil
}

// UpdateStatus implements letter.LetterRepository.
func (r *letterRepositoryImpl) UpdateStatus(ctx context.Context, id int64, status string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE generated_letters SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return letter.ErrLetterNotFound
	}
	return nil
}
