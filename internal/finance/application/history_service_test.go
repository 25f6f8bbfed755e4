package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
	"pennytrack/internal/finance/infrastructure"
)

// 2026-08-15 is a Saturday.
func historyRepo() *infrastructure.MockTransactionRepository {
	return &infrastructure.MockTransactionRepository{
		Transactions: []domain.Transaction{
			{ID: 1, UserID: "user-1", Amount: 250000, Type: domain.TypeIncome, Category: "Salary", Date: domain.NewDate(2026, time.August, 1)},
			{ID: 2, UserID: "user-1", Amount: 4500, Type: domain.TypeExpense, Category: "Food", Date: domain.NewDate(2026, time.August, 10)},
			{ID: 3, UserID: "user-1", Amount: 1200, Type: domain.TypeExpense, Category: "Food", Date: domain.NewDate(2026, time.August, 15)},
			{ID: 4, UserID: "user-1", Amount: 8000, Type: domain.TypeExpense, Category: "Transport", Date: domain.NewDate(2026, time.June, 3)},
			{ID: 5, UserID: "user-2", Amount: 9999, Type: domain.TypeExpense, Category: "Food", Date: domain.NewDate(2026, time.August, 15)},
		},
	}
}

func TestDateRange_WeekStartsOnMonday(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC) // Saturday

	from, to, label := DateRange(RangeWeek, now)

	assert.Equal(t, "This Week", label)
	assert.Equal(t, time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)
}

func TestDateRange_MonthStartsOnFirst(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	from, _, label := DateRange(RangeMonth, now)

	assert.Equal(t, "This Month", label)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), from)
}

func TestDateRange_UnknownKeyMeansTotal(t *testing.T) {
	from, to, label := DateRange("whenever", fixedNow())

	assert.Equal(t, "Total", label)
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}

func TestHistoryView_MonthRange(t *testing.T) {
	service := NewHistoryService(historyRepo())
	service.now = fixedNow

	view, err := service.View("user-1", RangeMonth, "")

	assert.NoError(t, err)
	assert.Equal(t, "This Month", view.DateLabel)
	assert.Equal(t, RangeMonth, view.Range)
	assert.Equal(t, AllCategories, view.Category)
	assert.Equal(t, 3, len(view.Transactions))
	assert.Equal(t, domain.Amount(250000), view.Summary.Income)
	assert.Equal(t, domain.Amount(5700), view.Summary.Expense)
	assert.Equal(t, domain.Amount(244300), view.Summary.Balance)
}

func TestHistoryView_CategoryFilter(t *testing.T) {
	service := NewHistoryService(historyRepo())
	service.now = fixedNow

	view, err := service.View("user-1", RangeTotal, "Food")

	assert.NoError(t, err)
	assert.Equal(t, "Food", view.Category)
	assert.Equal(t, 2, len(view.Transactions))
	for _, transaction := range view.Transactions {
		assert.Equal(t, "Food", transaction.Category)
	}
	assert.Equal(t, domain.Amount(5700), view.Summary.Expense)
}

func TestHistoryView_EmptyRangeDefaultsToTotal(t *testing.T) {
	service := NewHistoryService(historyRepo())
	service.now = fixedNow

	view, err := service.View("user-1", "", "")

	assert.NoError(t, err)
	assert.Equal(t, RangeTotal, view.Range)
	assert.Equal(t, 4, len(view.Transactions))
}

func TestHistoryView_NewestFirst(t *testing.T) {
	service := NewHistoryService(historyRepo())
	service.now = fixedNow

	view, err := service.View("user-1", "", "")

	assert.NoError(t, err)
	assert.Equal(t, 3, view.Transactions[0].ID)
	assert.Equal(t, 4, view.Transactions[len(view.Transactions)-1].ID)
}

func TestHistoryView_MissingUserID(t *testing.T) {
	service := NewHistoryService(historyRepo())

	_, err := service.View("", RangeMonth, "")

	assert.ErrorIs(t, err, financeErrors.ErrMissingUserID)
}

func TestHistoryExport_FullListIgnoresFilters(t *testing.T) {
	service := NewHistoryService(historyRepo())
	service.now = fixedNow

	transactions, err := service.Export("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 4, len(transactions))
}

func TestHistoryExport_MissingUserID(t *testing.T) {
	service := NewHistoryService(historyRepo())

	_, err := service.Export("")

	assert.ErrorIs(t, err, financeErrors.ErrMissingUserID)
}
