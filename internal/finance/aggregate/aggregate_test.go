package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pennytrack/internal/finance/domain"
)

func TestSum_SplitsByType(t *testing.T) {
	totals := Sum([]domain.Transaction{
		{Amount: 10000, Type: domain.TypeIncome},
		{Amount: 4000, Type: domain.TypeExpense},
	})

	assert.Equal(t, domain.Amount(10000), totals.Income)
	assert.Equal(t, domain.Amount(4000), totals.Expense)
}

func TestSum_EmptyListIsZero(t *testing.T) {
	totals := Sum(nil)

	assert.Equal(t, domain.Amount(0), totals.Income)
	assert.Equal(t, domain.Amount(0), totals.Expense)
}

func TestNetBalance_CanGoNegative(t *testing.T) {
	assert.Equal(t, domain.Amount(6000), NetBalance(Totals{Income: 10000, Expense: 4000}))
	assert.Equal(t, domain.Amount(-2500), NetBalance(Totals{Income: 1500, Expense: 4000}))
}

func TestSummarize_OnePass(t *testing.T) {
	summary := Summarize([]domain.Transaction{
		{Amount: 10000, Type: domain.TypeIncome},
		{Amount: 4000, Type: domain.TypeExpense},
		{Amount: 100, Type: "UNKNOWN"},
	})

	assert.Equal(t, domain.Amount(10000), summary.Income)
	assert.Equal(t, domain.Amount(4000), summary.Expense)
	assert.Equal(t, domain.Amount(6000), summary.Balance)
}

func TestCurrentMonthLabel_UsesNewestTransaction(t *testing.T) {
	transactions := []domain.Transaction{
		{Date: domain.NewDate(2026, time.August, 20)},
		{Date: domain.NewDate(2026, time.July, 1)},
	}

	label := CurrentMonthLabel(transactions, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "August 2026", label)
}

func TestCurrentMonthLabel_EmptyListFallsBackToNow(t *testing.T) {
	label := CurrentMonthLabel(nil, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "September 2026", label)
}

func TestRecent_Clamps(t *testing.T) {
	transactions := []domain.Transaction{{ID: 3}, {ID: 2}, {ID: 1}}

	assert.Equal(t, 2, len(Recent(transactions, 2)))
	assert.Equal(t, 3, Recent(transactions, 2)[0].ID)
	assert.Equal(t, 3, len(Recent(transactions, 10)))
	assert.Empty(t, Recent(transactions, -1))
}
