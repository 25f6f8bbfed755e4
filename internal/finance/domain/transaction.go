package domain

import (
	"strings"
	"time"

	financeErrors "pennytrack/internal/finance/errors"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// NormalizeType maps user input onto the canonical transaction type values.
// The legacy form vocabulary used "spending" for expenses.
func NormalizeType(raw string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case TypeIncome:
		return TypeIncome, true
	case TypeExpense, "SPENDING":
		return TypeExpense, true
	default:
		return "", false
	}
}

type Transaction struct {
	ID          int    `json:"id"`
	UserID      string `json:"userId"`
	Amount      Amount `json:"amount"`
	Type        string `json:"type"` // "INCOME" or "EXPENSE"
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Date        Date   `json:"date"`
}

func (t *Transaction) Validate() error {
	if t.UserID == "" {
		return financeErrors.ErrMissingUserID
	}
	if t.Type != TypeIncome && t.Type != TypeExpense {
		return financeErrors.NewValidationError("Type must be 'INCOME' or 'EXPENSE'")
	}
	if strings.TrimSpace(t.Category) == "" {
		return financeErrors.NewValidationError("Category is required")
	}
	if len(t.Description) > 255 {
		return financeErrors.NewValidationError("Description must be of length less than 255")
	}
	return nil
}

type TransactionRepository interface {
	Save(transaction *Transaction) error
	FindByUser(userID string) ([]Transaction, error)
	FindByID(userID string, transactionID int) (*Transaction, error)
	FindByUserFiltered(userID string, from, to time.Time, category string) ([]Transaction, error)
	Update(transaction *Transaction) (bool, error)
	Delete(userID string, transactionID int) error
}
