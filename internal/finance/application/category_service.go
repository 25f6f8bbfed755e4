package application

import (
	"strings"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
)

type CategoryService struct {
	repo domain.CategoryRepository
}

func NewCategoryService(repo domain.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// ListCategories returns the owner's categories sorted by name ascending.
func (s *CategoryService) ListCategories(userID string) ([]domain.Category, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	return s.repo.FindByUser(userID)
}

// CreateCategory persists a new category after trimming the name and
// rejecting per-owner duplicates. The duplicate pre-check is advisory; the
// store's unique constraint closes the race and the repository reports the
// violation as the same duplicate error.
func (s *CategoryService) CreateCategory(userID, name string) (*domain.Category, error) {
	if userID == "" {
		return nil, financeErrors.ErrMissingUserID
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, financeErrors.ErrCategoryNameMissing
	}

	existing, err := s.repo.FindByName(userID, trimmed)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, financeErrors.ErrDuplicateCategory
	}

	category := &domain.Category{UserID: userID, Name: trimmed}
	if err := s.repo.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes the category with matching id and owner. Deleting a
// row that does not exist is not an error.
func (s *CategoryService) DeleteCategory(userID string, categoryID int) error {
	if userID == "" {
		return financeErrors.ErrMissingUserID
	}
	if categoryID <= 0 {
		return financeErrors.ErrMissingCategoryID
	}
	return s.repo.Delete(userID, categoryID)
}
