package application

import (
	"time"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type TransactionService struct {
	repo domain.TransactionRepository
	now  func() time.Time
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo, now: time.Now}
}

// ListTransactions returns the owner's transactions ordered by date
// descending, id descending. Callers rely on this order for "recent
// transactions" views.
func (s *TransactionService) ListTransactions(userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	return s.repo.FindByUser(userID)
}

// CreateTransaction validates and persists a transaction. A missing date
// defaults to the current calendar day. The store-assigned id is written
// back onto the transaction.
func (s *TransactionService) CreateTransaction(transaction *domain.Transaction) error {
	if transaction.UserID == "" {
		return financeErrors.ErrMissingUserID
	}
	if transaction.Date.IsZero() {
		transaction.Date = domain.DateOf(s.now())
	}
	if err := transaction.Validate(); err != nil {
		return err
	}
	return s.repo.Save(transaction)
}

// UpdateTransaction replaces amount, type, category, description and date of
// an existing transaction owned by the caller. An unset date keeps the
// stored one, matching the edit form where the date field is optional.
func (s *TransactionService) UpdateTransaction(transaction *domain.Transaction) error {
	if transaction.UserID == "" {
		return financeErrors.ErrMissingUserID
	}
	if transaction.ID <= 0 {
		return financeErrors.NewValidationError("Missing transaction id")
	}

	existing, err := s.repo.FindByID(transaction.UserID, transaction.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return financeErrors.ErrTransactionNotFound
	}
	if transaction.Date.IsZero() {
		transaction.Date = existing.Date
	}
	if err := transaction.Validate(); err != nil {
		return err
	}

	matched, err := s.repo.Update(transaction)
	if err != nil {
		return err
	}
	if !matched {
		return financeErrors.ErrTransactionNotFound
	}
	return nil
}

// DeleteTransaction removes an owner-scoped transaction. Like category
// deletion it is idempotent: a missing row is still a success.
func (s *TransactionService) DeleteTransaction(userID string, transactionID int) error {
	if userID == "" {
		return financeErrors.ErrMissingUserID
	}
	if transactionID <= 0 {
		return financeErrors.NewValidationError("Missing transaction id")
	}
	return s.repo.Delete(userID, transactionID)
}
