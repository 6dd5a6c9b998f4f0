package template

import (
	"context"
	"fmt"

	"github.com/campushr/letters-backend-go/internal/domain/template"
)

type TemplateServiceImpl struct {
	templateRepo template.TemplateRepository
}

func NewTemplateService(templateRepo template.TemplateRepository) template.TemplateService {
	return &TemplateServiceImpl{templateRepo: templateRepo}
}

// List implements template.TemplateService.
func (s *TemplateServiceImpl) List(ctx context.Context) ([]template.Response, error) {
	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return template.NewListResponse(templates), nil
}

// Create implements template.TemplateService.
func (s *TemplateServiceImpl) Create(ctx context.Context, req template.CreateTemplateRequest, createdBy int64) (template.Response, error) {
	if err := req.Validate(); err != nil {
		return template.Response{}, err
	}

	created, err := s.templateRepo.Create(ctx, template.LetterTemplate{
		LetterType:   req.LetterType,
		TemplateName: req.TemplateName,
		TemplatePath: req.TemplatePath,
		CreatedBy:    &createdBy,
	})
	if err != nil {
		return template.Response{}, fmt.Errorf("failed to create template: %w", err)
	}
	return template.NewResponse(created), nil
}

// Delete implements template.TemplateService.
func (s *TemplateServiceImpl) Delete(ctx context.Context, id int64) error {
	return template.ErrDeleteNotSupported
}
