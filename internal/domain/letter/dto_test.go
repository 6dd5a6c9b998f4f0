package letter

import (
	"encoding/json"
	"testing"

	"github.com/campushr/letters-backend-go/internal/pkg/validator"
	"github.com/campushr/letters-backend-go/pkg/client"
	"github.com/campushr/letters-backend-go/pkg/letters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLetterRequest_Validate_MissingSelection(t *testing.T) {
	req := GenerateLetterRequest{}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "user_id")
	assert.Contains(t, m, "letter_type")
}

func TestGenerateLetterRequest_Validate_UnknownType(t *testing.T) {
	req := GenerateLetterRequest{UserID: 7, LetterType: "promotion_letter"}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "letter_type")
}

func TestGenerateLetterRequest_Validate_MissingRequiredFields(t *testing.T) {
	req := GenerateLetterRequest{
		UserID:     7,
		LetterType: "offer_letter",
		Position:   "Lecturer",
	}
	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "department")
	assert.Contains(t, m, "salary")
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "manager")
	assert.NotContains(t, m, "position")
}

func TestGenerateLetterRequest_Validate_RelievingWithoutReason(t *testing.T) {
	// Reason is optional for relieving letters; submission without it passes
	req := GenerateLetterRequest{
		UserID:     7,
		LetterType: "relieving_letter",
		Position:   "Registrar",
		Department: "Administration",
		EndDate:    "2025-01-31",
	}
	assert.NoError(t, req.Validate())
}

func TestGenerateLetterRequest_Validate_Complete(t *testing.T) {
	req := GenerateLetterRequest{
		UserID:     7,
		LetterType: "offer_letter",
		Position:   "Lecturer",
		Department: "Physics",
		Salary:     "65000",
		StartDate:  "2025-09-01",
		Manager:    "Dr. Reed",
	}
	assert.NoError(t, req.Validate())
}

func TestGenerateLetterRequest_Validate_FieldsFromLetterData(t *testing.T) {
	// Clients may send field values under letter_data instead of named keys
	req := GenerateLetterRequest{
		UserID:     7,
		LetterType: "offer_letter",
		LetterData: map[string]string{
			"position":   "Lecturer",
			"department": "Physics",
			"salary":     "65000",
			"start_date": "2025-09-01",
			"manager":    "Dr. Reed",
		},
	}
	assert.NoError(t, req.Validate())
}

func TestGenerateLetterRequest_AcceptsClientPayload(t *testing.T) {
	composed := client.GenerateLetter{
		UserID:     7,
		LetterType: letters.TypeOffer,
		Fields: map[string]string{
			"position":   "Lecturer",
			"department": "Physics",
			"salary":     "65000",
			"start_date": "2025-09-01",
			"manager":    "Dr. Reed",
		},
	}
	raw, err := json.Marshal(composed)
	require.NoError(t, err)

	var req GenerateLetterRequest
	require.NoError(t, json.Unmarshal(raw, &req))
	assert.NoError(t, req.Validate())

	values := req.FieldValues()
	assert.Equal(t, "Lecturer", values["position"])
	assert.Equal(t, "Dr. Reed", values["manager"])
}

func TestGenerateLetterRequest_FieldValues(t *testing.T) {
	req := GenerateLetterRequest{
		UserID:     7,
		LetterType: "offer_letter",
		Position:   "Lecturer",
		Department: "Physics",
		LetterData: map[string]string{"campus": "North", "position": "ignored"},
	}
	values := req.FieldValues()
	assert.Equal(t, "Lecturer", values["position"], "named fields win over letter_data")
	assert.Equal(t, "Physics", values["department"])
	assert.Equal(t, "North", values["campus"])
	assert.NotContains(t, values, "salary", "blank fields are omitted")
}
