package interfaces

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type TransactionServiceInterface interface {
	ListTransactions(userID string) ([]domain.Transaction, error)
	CreateTransaction(transaction *domain.Transaction) error
	UpdateTransaction(transaction *domain.Transaction) error
	DeleteTransaction(userID string, transactionID int) error
}

// transactionRequest is the create/update payload. Amount is a pointer so a
// missing field is distinguishable from zero.
type transactionRequest struct {
	UserID      string         `json:"userId"`
	Amount      *domain.Amount `json:"amount"`
	Type        string         `json:"type"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Date        domain.Date    `json:"date"`
}

type TransactionHandler struct {
	service      TransactionServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewTransactionHandler(
	service TransactionServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *TransactionHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &TransactionHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetTransactions handles GET /api/transactions?userId=X. Results are
// ordered newest first.
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.ListTransactions(callerID(r, ""))
	if err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transactions)
}

// CreateTransaction handles POST /api/transactions.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	transaction, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}

	if err := h.service.CreateTransaction(transaction); err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, transaction)
}

// UpdateTransaction handles PUT /api/transactions/{id}.
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	transaction, ok := h.decodeTransaction(w, r)
	if !ok {
		return
	}
	transaction.ID = id

	if err := h.service.UpdateTransaction(transaction); err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE /api/transactions/{id}. The owner comes
// from the body {userId}, a query parameter, or the verified identity.
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	var req struct {
		UserID string `json:"userId"`
	}
	// body is optional for deletes
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.DeleteTransaction(callerID(r, req.UserID), id); err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// decodeTransaction parses and validates the shared create/update payload.
// On failure it writes the error response and returns false.
func (h *TransactionHandler) decodeTransaction(w http.ResponseWriter, r *http.Request) (*domain.Transaction, bool) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	userID := callerID(r, req.UserID)
	if userID == "" {
		respondServiceError(w, r, h.respondError, financeErrors.ErrMissingUserID)
		return nil, false
	}
	if req.Amount == nil {
		h.respondError(w, http.StatusBadRequest, "Amount is required")
		return nil, false
	}
	if strings.TrimSpace(req.Category) == "" {
		h.respondError(w, http.StatusBadRequest, "Category is required")
		return nil, false
	}

	// the legacy form posted no type for income entries
	rawType := req.Type
	if rawType == "" {
		rawType = domain.TypeIncome
	}
	normalized, ok := domain.NormalizeType(rawType)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Type must be 'INCOME' or 'EXPENSE'")
		return nil, false
	}

	return &domain.Transaction{
		UserID:      userID,
		Amount:      *req.Amount,
		Type:        normalized,
		Category:    strings.TrimSpace(req.Category),
		Description: strings.TrimSpace(req.Description),
		Date:        req.Date,
	}, true
}
