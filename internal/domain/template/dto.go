package template

import (
	"time"

	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
)

type CreateTemplateRequest struct {
	LetterType   string `json:"letter_type"`
	TemplateName string `json:"template_name"`
	TemplatePath string `json:"template_path"`
}

func (r *CreateTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LetterType) {
		errs = append(errs, validator.ValidationError{
			Field:   "letter_type",
			Message: "letter_type is required",
		})
	} else if !letter.IsValidType(letter.Type(r.LetterType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "letter_type",
			Message: "letter_type must be one of offer_letter, appointment_letter, confirmation_letter, relieving_letter",
		})
	}
	if validator.IsEmpty(r.TemplateName) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_name",
			Message: "template_name is required",
		})
	}
	if validator.IsEmpty(r.TemplatePath) {
		errs = append(errs, validator.ValidationError{
			Field:   "template_path",
			Message: "template_path is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           int64     `json:"id"`
	LetterType   string    `json:"letter_type"`
	TemplateName string    `json:"template_name"`
	TemplatePath string    `json:"template_path"`
	CreatedBy    *int64    `json:"created_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewResponse(t LetterTemplate) Response {
	return Response{
		ID:           t.ID,
		LetterType:   t.LetterType,
		TemplateName: t.TemplateName,
		TemplatePath: t.TemplatePath,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
	}
}

func NewListResponse(templates []LetterTemplate) []Response {
	result := make([]Response, 0, len(templates))
	for _, t := range templates {
		result = append(result, NewResponse(t))
	}
	return result
}
