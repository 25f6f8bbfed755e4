package infrastructure

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"pennytrack/internal/finance/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

const transactionColumns = `id, user_id, amount_cents, type, category, description, date`

func scanTransaction(row interface{ Scan(...any) error }) (domain.Transaction, error) {
	var (
		transaction domain.Transaction
		cents       int64
		description sql.NullString
		date        time.Time
	)
	err := row.Scan(&transaction.ID, &transaction.UserID, &cents, &transaction.Type,
		&transaction.Category, &description, &date)
	if err != nil {
		return domain.Transaction{}, err
	}
	transaction.Amount = domain.Amount(cents)
	transaction.Description = description.String
	transaction.Date = domain.DateOf(date)
	return transaction, nil
}

func (r *TransactionRepository) Save(transaction *domain.Transaction) error {
	return r.db.QueryRow(
		`INSERT INTO transactions (user_id, amount_cents, type, category, description, date)
         VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		transaction.UserID, transaction.Amount.Cents(), transaction.Type,
		transaction.Category, transaction.Description, transaction.Date.Time,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByUser(userID string) ([]domain.Transaction, error) {
	rows, err := r.db.Query(
		`SELECT `+transactionColumns+` FROM transactions
         WHERE user_id = $1 ORDER BY date DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

// FindByUserFiltered narrows the list to a date window and optionally a
// category label. Zero bounds mean unbounded on that side.
func (r *TransactionRepository) FindByUserFiltered(userID string, from, to time.Time, category string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []any{userID}

	if !from.IsZero() {
		args = append(args, from)
		query += ` AND date >= $` + strconv.Itoa(len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += ` AND date <= $` + strconv.Itoa(len(args))
	}
	if category != "" {
		args = append(args, category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *TransactionRepository) FindByID(userID string, transactionID int) (*domain.Transaction, error) {
	transaction, err := scanTransaction(r.db.QueryRow(
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Update rewrites the mutable columns of an owner-scoped row and reports
// whether a row matched.
func (r *TransactionRepository) Update(transaction *domain.Transaction) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE transactions
         SET amount_cents = $1, type = $2, category = $3, description = $4, date = $5
         WHERE id = $6 AND user_id = $7`,
		transaction.Amount.Cents(), transaction.Type, transaction.Category,
		transaction.Description, transaction.Date.Time, transaction.ID, transaction.UserID,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *TransactionRepository) Delete(userID string, transactionID int) error {
	_, err := r.db.Exec(
		`DELETE FROM transactions WHERE id = $1 AND user_id = $2`,
		transactionID, userID,
	)
	return err
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}
