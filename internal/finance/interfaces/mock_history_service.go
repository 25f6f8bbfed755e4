package interfaces

import (
	"errors"

	"pennytrack/internal/finance/application"
	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type MockHistoryService struct {
	view       *application.HistoryView
	exported   []domain.Transaction
	shouldFail bool
}

func (m *MockHistoryService) View(userID, rangeKey, category string) (*application.HistoryView, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.view, nil
}

func (m *MockHistoryService) Export(userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.exported, nil
}
