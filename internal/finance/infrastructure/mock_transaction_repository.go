package infrastructure

import (
	"errors"
	"sort"
	"time"

	"pennytrack/internal/finance/domain"
)

// MockTransactionRepository is an in-memory repository for service tests. It
// mirrors the ordering and ownership semantics of the Postgres version.
type MockTransactionRepository struct {
	Transactions []domain.Transaction
	ShouldFail   bool
	nextID       int
}

var errMockRepository = errors.New("repository error")

func (m *MockTransactionRepository) Save(transaction *domain.Transaction) error {
	if m.ShouldFail {
		return errMockRepository
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	return m.FindByUserFiltered(userID, time.Time{}, time.Time{}, "")
}

func (m *MockTransactionRepository) FindByUserFiltered(userID string, from, to time.Time, category string) ([]domain.Transaction, error) {
	if m.ShouldFail {
		return nil, errMockRepository
	}
	filtered := []domain.Transaction{}
	for _, t := range m.Transactions {
		if t.UserID != userID {
			continue
		}
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		filtered = append(filtered, t)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date.Time) {
			return filtered[i].Date.After(filtered[j].Date.Time)
		}
		return filtered[i].ID > filtered[j].ID
	})
	return filtered, nil
}

func (m *MockTransactionRepository) FindByID(userID string, transactionID int) (*domain.Transaction, error) {
	if m.ShouldFail {
		return nil, errMockRepository
	}
	for _, t := range m.Transactions {
		if t.ID == transactionID && t.UserID == userID {
			found := t
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (bool, error) {
	if m.ShouldFail {
		return false, errMockRepository
	}
	for i, t := range m.Transactions {
		if t.ID == transaction.ID && t.UserID == transaction.UserID {
			m.Transactions[i] = *transaction
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTransactionRepository) Delete(userID string, transactionID int) error {
	if m.ShouldFail {
		return errMockRepository
	}
	for i, t := range m.Transactions {
		if t.ID == transactionID && t.UserID == userID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
