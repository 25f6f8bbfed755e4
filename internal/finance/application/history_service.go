package application

import (
	"time"

	"pennytrack/internal/finance/aggregate"
	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

// Range keys accepted by the history view. Anything else means "total".
const (
	RangeToday    = "today"
	RangeWeek     = "week"
	RangeMonth    = "month"
	Range3Months  = "3m"
	Range6Months  = "6m"
	RangeYear     = "year"
	RangeTotal    = "total"
	AllCategories = "all"
)

// DateRange resolves a range key to [from, to] bounds around now. Total
// ranges return zero times, meaning unbounded.
func DateRange(key string, now time.Time) (from, to time.Time, label string) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch key {
	case RangeToday:
		return midnight, now, "Today"
	case RangeWeek:
		// Monday starts the week.
		offset := (int(now.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), now, "This Week"
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), now, "This Month"
	case Range3Months:
		return now.AddDate(0, 0, -90), now, "Last 3 Months"
	case Range6Months:
		return now.AddDate(0, 0, -180), now, "Last 6 Months"
	case RangeYear:
		return now.AddDate(0, 0, -365), now, "Last Year"
	default:
		return time.Time{}, time.Time{}, "Total"
	}
}

// HistoryView is the filtered transaction list plus its summary figures.
type HistoryView struct {
	Transactions []domain.Transaction `json:"transactions"`
	Summary      aggregate.Summary    `json:"summary"`
	DateLabel    string               `json:"dateLabel"`
	Range        string               `json:"range"`
	Category     string               `json:"category"`
}

type HistoryService struct {
	repo domain.TransactionRepository
	now  func() time.Time
}

func NewHistoryService(repo domain.TransactionRepository) *HistoryService {
	return &HistoryService{repo: repo, now: time.Now}
}

// View returns the owner's transactions for a date range and optional
// category filter, newest first, with income/expense/balance recomputed
// over exactly the filtered set.
func (s *HistoryService) View(userID, rangeKey, category string) (*HistoryView, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if rangeKey == "" {
		rangeKey = RangeTotal
	}
	if category == "" {
		category = AllCategories
	}

	from, to, label := DateRange(rangeKey, s.now())
	filter := category
	if filter == AllCategories {
		filter = ""
	}

	transactions, err := s.repo.FindByUserFiltered(userID, from, to, filter)
	if err != nil {
		return nil, err
	}

	return &HistoryView{
		Transactions: transactions,
		Summary:      aggregate.Summarize(transactions),
		DateLabel:    label,
		Range:        rangeKey,
		Category:     category,
	}, nil
}

// Export returns the owner's full history, newest first, ignoring filters.
func (s *HistoryService) Export(userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	return s.repo.FindByUser(userID)
}
