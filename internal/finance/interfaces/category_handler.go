package interfaces

import (
	"encoding/json"
	"net/http"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type CategoryServiceInterface interface {
	ListCategories(userID string) ([]domain.Category, error)
	CreateCategory(userID, name string) (*domain.Category, error)
	DeleteCategory(userID string, categoryID int) error
}

type CategoryHandler struct {
	service      CategoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewCategoryHandler(
	service CategoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetCategories handles GET /api/categories?userId=X.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(callerID(r, ""))
	if err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /api/categories with body {userId, name}.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		Name   string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateCategory(callerID(r, req.UserID), req.Name)
	if err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, created)
}

// DeleteCategory handles DELETE /api/categories with body {userId, id}.
// Deleting an id that no longer exists still succeeds.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		ID     int    `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := callerID(r, req.UserID)
	if userID == "" {
		respondServiceError(w, r, h.respondError, financeErrors.ErrMissingUserID)
		return
	}
	if err := h.service.DeleteCategory(userID, req.ID); err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
