// Package aggregate derives summary figures from an already-fetched list of
// transactions. Everything here is a pure function recomputed on each call;
// there is no caching and no store access.
package aggregate

import (
	"time"

	"pennytrack/internal/finance/domain"
)

// Totals holds the income and expense sums of a transaction list.
type Totals struct {
	Income  domain.Amount `json:"income"`
	Expense domain.Amount `json:"expense"`
}

// Sum folds a transaction list into income and expense totals.
func Sum(transactions []domain.Transaction) Totals {
	var totals Totals
	for _, t := range transactions {
		switch t.Type {
		case domain.TypeIncome:
			totals.Income += t.Amount
		case domain.TypeExpense:
			totals.Expense += t.Amount
		}
	}
	return totals
}

// NetBalance is income minus expense. It may be negative.
func NetBalance(totals Totals) domain.Amount {
	return totals.Income - totals.Expense
}

// Summary is the shape rendered on history and dashboard views.
type Summary struct {
	Income  domain.Amount `json:"income"`
	Expense domain.Amount `json:"expense"`
	Balance domain.Amount `json:"balance"`
}

// Summarize computes totals and net balance in one pass.
func Summarize(transactions []domain.Transaction) Summary {
	totals := Sum(transactions)
	return Summary{
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: NetBalance(totals),
	}
}

// CurrentMonthLabel returns a "January 2006" label for the most recent
// transaction's month. The list is expected newest-first; an empty list
// falls back to now.
func CurrentMonthLabel(transactions []domain.Transaction, now time.Time) string {
	if len(transactions) == 0 {
		return now.Format("January 2006")
	}
	return transactions[0].Date.Format("January 2006")
}

// Recent returns the first n transactions in their given order.
func Recent(transactions []domain.Transaction, n int) []domain.Transaction {
	if n < 0 {
		n = 0
	}
	if n > len(transactions) {
		n = len(transactions)
	}
	return transactions[:n]
}
