package infrastructure

import (
	"sort"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

// MockCategoryRepository is an in-memory repository for service tests,
// including the per-owner unique constraint of the real store.
type MockCategoryRepository struct {
	Categories []domain.Category
	ShouldFail bool
	nextID     int
}

func (m *MockCategoryRepository) FindByUser(userID string) ([]domain.Category, error) {
	if m.ShouldFail {
		return nil, errMockRepository
	}
	categories := []domain.Category{}
	for _, c := range m.Categories {
		if c.UserID == userID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

func (m *MockCategoryRepository) FindByName(userID, name string) (*domain.Category, error) {
	if m.ShouldFail {
		return nil, errMockRepository
	}
	for _, c := range m.Categories {
		if c.UserID == userID && c.Name == name {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) Save(category *domain.Category) error {
	if m.ShouldFail {
		return errMockRepository
	}
	for _, c := range m.Categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return financeErrors.ErrDuplicateCategory
		}
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) Delete(userID string, categoryID int) error {
	if m.ShouldFail {
		return errMockRepository
	}
	for i, c := range m.Categories {
		if c.ID == categoryID && c.UserID == userID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
