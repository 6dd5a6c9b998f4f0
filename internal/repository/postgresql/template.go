package postgresql

import (
	"context"

	"github.com/campushr/letters-backend-go/internal/domain/template"
	"github.com/campushr/letters-backend-go/internal/pkg/database"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) template.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

// List implements template.TemplateRepository.
func (r *templateRepositoryImpl) List(ctx context.Context) ([]template.LetterTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, letter_type, template_name, template_path, created_by, created_at
		FROM letter_templates
		ORDER BY id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []template.LetterTemplate
	for rows.Next() {
		var found template.LetterTemplate
		if err := rows.Scan(
			&found.ID,
			&found.LetterType,
			&found.TemplateName,
			&found.TemplatePath,
			&found.CreatedBy,
			&found.CreatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, found)
	}
	return templates, rows.Err()
}

// Create implements template.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, newTemplate template.LetterTemplate) (template.LetterTemplate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO letter_templates (letter_type, template_name, template_path, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, letter_type, template_name, template_path, created_by, created_at
	`

	var created template.LetterTemplate
	err := q.QueryRow(ctx, query,
		newTemplate.LetterType,
		newTemplate.TemplateName,
		newTemplate.TemplatePath,
		newTemplate.CreatedBy,
	).Scan(
		&created.ID,
		&created.LetterType,
		&created.TemplateName,
		&created.TemplatePath,
		&created.CreatedBy,
		&created.CreatedAt,
	)
	if err != nil {
		return template.LetterTemplate{}, err
	}
	return created, nil
}
