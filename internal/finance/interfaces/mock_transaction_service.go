package interfaces

import (
	"errors"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type MockTransactionService struct {
	transactions []domain.Transaction
	shouldFail   bool
	notFound     bool
	deleted      []int
}

func (m *MockTransactionService) ListTransactions(userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.transactions, nil
}

func (m *MockTransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if transaction.UserID == "" {
		return financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	transaction.ID = len(m.transactions) + 1
	m.transactions = append(m.transactions, *transaction)
	return nil
}

func (m *MockTransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	if transaction.UserID == "" {
		return financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	if m.notFound {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

func (m *MockTransactionService) DeleteTransaction(userID string, transactionID int) error {
	if userID == "" {
		return financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	m.deleted = append(m.deleted, transactionID)
	return nil
}
