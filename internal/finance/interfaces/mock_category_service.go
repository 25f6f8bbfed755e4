package interfaces

import (
	"errors"
	"strings"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type MockCategoryService struct {
	categories []domain.Category
	shouldFail bool
	deleted    []int
}

func (m *MockCategoryService) ListCategories(userID string) ([]domain.Category, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	return m.categories, nil
}

func (m *MockCategoryService) CreateCategory(userID, name string) (*domain.Category, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	if m.shouldFail {
		return nil, errors.New("service error")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, financeErrors.ErrCategoryNameMissing
	}
	for _, c := range m.categories {
		if c.UserID == userID && c.Name == trimmed {
			return nil, financeErrors.ErrDuplicateCategory
		}
	}
	created := domain.Category{ID: len(m.categories) + 1, UserID: userID, Name: trimmed}
	m.categories = append(m.categories, created)
	return &created, nil
}

func (m *MockCategoryService) DeleteCategory(userID string, categoryID int) error {
	if userID == "" {
		return financeErrors.ErrMissingUserID
	}
	if categoryID <= 0 {
		return financeErrors.ErrMissingCategoryID
	}
	if m.shouldFail {
		return errors.New("service error")
	}
	m.deleted = append(m.deleted, categoryID)
	return nil
}
