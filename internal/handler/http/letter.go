package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/campushr/letters-backend-go/internal/domain/auth"
	"github.com/campushr/letters-backend-go/internal/domain/letter"
	"github.com/campushr/letters-backend-go/internal/handler/http/response"
)

type LetterHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Fields(w http.ResponseWriter, r *http.Request)
}

type letterHandlerImpl struct {
	letterService letter.LetterService
}

func NewLetterHandler(letterService letter.LetterService) LetterHandler {
	return &letterHandlerImpl{
		letterService: letterService,
	}
}

// List implements LetterHandler.
func (h *letterHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := paginationParams(r)

	letters, err := h.letterService.List(r.Context(), skip, limit)
	if err != nil {
		slog.Error("Failed to list letters", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, letters)
}

// Generate implements LetterHandler. The send_email query parameter
// controls whether the subject is notified with a link to the document.
func (h *letterHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req letter.GenerateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	generatedBy, ok := userIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	opts := letter.GenerateOptions{
		SendEmail: boolQueryParam(r, "send_email", true),
	}

	generated, err := h.letterService.Generate(r.Context(), req, opts, generatedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Letter generated successfully", generated)
}

// Fields implements LetterHandler. It exposes the per-type field contract
// so clients can build generation forms without hardcoding the rules.
func (h *letterHandlerImpl) Fields(w http.ResponseWriter, r *http.Request) {
	types := letter.ValidTypes()
	fields := make(map[string][]string, len(types))
	for _, t := range types {
		fields[string(t)] = letter.RequiredFields(t)
	}

	response.Success(w, fields)
}
