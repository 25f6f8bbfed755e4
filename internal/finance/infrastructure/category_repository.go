package infrastructure

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

const uniqueViolation = "23505"

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	rows, err := r.db.Query(
		`SELECT id, user_id, name FROM categories WHERE user_id = $1 ORDER BY name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.UserID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByName(userID, name string) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(
		`SELECT id, user_id, name FROM categories WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&category.ID, &category.UserID, &category.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Save inserts the category and writes the assigned id back. A concurrent
// insert of the same (user_id, name) pair trips the unique constraint and is
// reported as the duplicate error the pre-check would have produced.
func (r *CategoryRepository) Save(category *domain.Category) error {
	err := r.db.QueryRow(
		`INSERT INTO categories (user_id, name) VALUES ($1, $2) RETURNING id`,
		category.UserID, category.Name,
	).Scan(&category.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return financeErrors.ErrDuplicateCategory
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) Delete(userID string, categoryID int) error {
	_, err := r.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	return err
}
