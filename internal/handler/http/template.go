package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campushr/letters-backend-go/internal/domain/auth"
	"github.com/campushr/letters-backend-go/internal/domain/template"
	"github.com/campushr/letters-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TemplateHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type templateHandlerImpl struct {
	templateService template.TemplateService
}

func NewTemplateHandler(templateService template.TemplateService) TemplateHandler {
	return &templateHandlerImpl{
		templateService: templateService,
	}
}

// List implements TemplateHandler.
func (h *templateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateService.List(r.Context())
	if err != nil {
		slog.Error("Failed to list templates", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, templates)
}

// Create implements TemplateHandler.
func (h *templateHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req template.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createdBy, ok := userIDFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	created, err := h.templateService.Create(r.Context(), req, createdBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Template created successfully", created)
}

// Delete implements TemplateHandler. Template deletion is not supported,
// so this always reports an error; the route exists to give clients a
// stable contract rather than a 404.
func (h *templateHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid template ID", nil)
		return
	}

	if err := h.templateService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Template deleted successfully", nil)
}
