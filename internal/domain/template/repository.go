package template

import "context"

type TemplateRepository interface {
	List(ctx context.Context) ([]LetterTemplate, error)
	Create(ctx context.Context, newTemplate LetterTemplate) (LetterTemplate, error)
}
