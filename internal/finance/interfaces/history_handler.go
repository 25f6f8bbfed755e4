package interfaces

import (
	"encoding/csv"
	"net/http"

	"pennytrack/internal/finance/application"
	"pennytrack/internal/finance/domain"
)

type HistoryServiceInterface interface {
	View(userID, rangeKey, category string) (*application.HistoryView, error)
	Export(userID string) ([]domain.Transaction, error)
}

type HistoryHandler struct {
	service      HistoryServiceInterface
	respondJSON  func(w http.ResponseWriter, status int, payload interface{})
	respondError func(w http.ResponseWriter, status int, message string)
}

func NewHistoryHandler(
	service HistoryServiceInterface,
	respondJSON func(w http.ResponseWriter, status int, payload interface{}),
	respondError func(w http.ResponseWriter, status int, message string),
) *HistoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &HistoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

// GetHistory handles GET /api/history?userId=X&range=R&category=C.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(
		callerID(r, ""),
		r.URL.Query().Get("range"),
		r.URL.Query().Get("category"),
	)
	if err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// ExportHistory handles GET /api/history/export?userId=X and streams the
// full history as a CSV attachment, ignoring view filters.
func (h *HistoryHandler) ExportHistory(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.service.Export(callerID(r, ""))
	if err != nil {
		respondServiceError(w, r, h.respondError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transaction_history.csv"`)
	w.WriteHeader(http.StatusOK)

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"Date", "Type", "Category", "Amount", "Description"})
	for _, t := range transactions {
		_ = writer.Write([]string{
			t.Date.String(),
			t.Type,
			t.Category,
			t.Amount.String(),
			t.Description,
		})
	}
	writer.Flush()
}
