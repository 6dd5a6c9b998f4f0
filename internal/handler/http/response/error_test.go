package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campushr/letters-backend-go/internal/domain/auth"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/domain/template"
	"github.com/campushr/letters-backend-go/internal/domain/user"
	"github.com/campushr/letters-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"duplicate user", user.ErrUsernameOrEmailExists, http.StatusConflict, "CONFLICT"},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"letter not found", letter.ErrLetterNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"render failed", letter.ErrRenderFailed, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"template not found", template.ErrTemplateNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"template delete", template.ErrDeleteNotSupported, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown", assert.AnError, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, c.err)

			assert.Equal(t, c.status, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, c.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, validator.ValidationErrors{
		{Field: "letter_type", Message: "letter_type is required"},
		{Field: "salary", Message: "salary is required for this letter type"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "letter_type is required", body.Error.Details["letter_type"])
	assert.Equal(t, "salary is required for this letter type", body.Error.Details["salary"])
}
