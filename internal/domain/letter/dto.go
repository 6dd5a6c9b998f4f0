package letter

import (
	"time"

	"github.com/campushr/letters-backend-go/internal/pkg/validator"
)

type GenerateLetterRequest struct {
	UserID     int64             `json:"user_id"`
	LetterType string            `json:"letter_type"`
	Position   string            `json:"position,omitempty"`
	Department string            `json:"department,omitempty"`
	Salary     string            `json:"salary,omitempty"`
	StartDate  string            `json:"start_date,omitempty"`
	EndDate    string            `json:"end_date,omitempty"`
	Reason     string            `json:"reason,omitempty"`
	Manager    string            `json:"manager,omitempty"`
	LetterData map[string]string `json:"letter_data,omitempty"`
}

// fieldValue resolves a rule-table field name against the request. Named
// top-level fields win; letter_data fills in anything they leave blank,
// so clients may send either shape.
func (r *GenerateLetterRequest) fieldValue(name string) string {
	var v string
	switch name {
	case "position":
		v = r.Position
	case "department":
		v = r.Department
	case "salary":
		v = r.Salary
	case "start_date":
		v = r.StartDate
	case "end_date":
		v = r.EndDate
	case "reason":
		v = r.Reason
	case "manager":
		v = r.Manager
	}
	if v == "" {
		v = r.LetterData[name]
	}
	return v
}

// FieldValues returns the collected generation fields, extra letter_data
// entries first so the named fields win on conflict.
func (r *GenerateLetterRequest) FieldValues() map[string]string {
	values := make(map[string]string, len(r.LetterData)+7)
	for k, v := range r.LetterData {
		values[k] = v
	}
	for _, name := range []string{"position", "department", "salary", "start_date", "end_date", "reason", "manager"} {
		if v := r.fieldValue(name); v != "" {
			values[name] = v
		}
	}
	return values
}

// Validate checks the selection constraint (a user and a letter type must
// both be present) and then the rule table's required field set for the
// selected type. The optional reason field is never required.
func (r *GenerateLetterRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if validator.IsEmpty(r.LetterType) {
		errs = append(errs, validator.ValidationError{
			Field:   "letter_type",
			Message: "letter_type is required",
		})
	} else if !IsValidType(Type(r.LetterType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "letter_type",
			Message: "letter_type must be one of offer_letter, appointment_letter, confirmation_letter, relieving_letter",
		})
	}

	// Selection errors short-circuit: without a valid type there is no
	// required field set to check.
	if len(errs) > 0 {
		return errs
	}

	for _, name := range RequiredFields(Type(r.LetterType)) {
		if validator.IsEmpty(r.fieldValue(name)) {
			errs = append(errs, validator.ValidationError{
				Field:   name,
				Message: name + " is required for " + r.LetterType,
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Response struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	LetterType   string            `json:"letter_type"`
	LetterData   map[string]string `json:"letter_data,omitempty"`
	Status       string            `json:"status"`
	DocumentPath *string           `json:"document_path,omitempty"`
	DocumentURL  *string           `json:"document_url,omitempty"`
	GeneratedBy  *int64            `json:"generated_by,omitempty"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

func NewResponse(l GeneratedLetter) Response {
	return Response{
		ID:           l.ID,
		UserID:       l.UserID,
		LetterType:   string(l.LetterType),
		LetterData:   l.LetterData,
		Status:       l.Status,
		DocumentPath: l.DocumentPath,
		GeneratedBy:  l.GeneratedBy,
		GeneratedAt:  l.GeneratedAt,
	}
}

func NewListResponse(letters []GeneratedLetter) []Response {
	result := make([]Response, 0, len(letters))
	for _, l := range letters {
		result = append(result, NewResponse(l))
	}
	return result
}
