package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pennytrack/internal/finance/domain"
	financeErrors "pennytrack/internal/finance/errors"
	"pennytrack/internal/finance/infrastructure"
)

func TestListCategories_SortedByName(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{
			{ID: 1, UserID: "user-1", Name: "Transport"},
			{ID: 2, UserID: "user-1", Name: "Food"},
			{ID: 3, UserID: "user-2", Name: "Bills"},
		},
	}
	service := NewCategoryService(repo)

	categories, err := service.ListCategories("user-1")

	assert.NoError(t, err)
	assert.Equal(t, 2, len(categories))
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Transport", categories[1].Name)
}

func TestListCategories_MissingUserID(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.ListCategories("")

	assert.ErrorIs(t, err, financeErrors.ErrMissingUserID)
}

func TestCreateCategory_TrimsName(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	category, err := service.CreateCategory("user-1", "  Groceries  ")

	assert.NoError(t, err)
	assert.Equal(t, "Groceries", category.Name)
	assert.NotZero(t, category.ID)
	assert.Equal(t, 1, len(repo.Categories))
}

func TestCreateCategory_BlankNameRejected(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	_, err := service.CreateCategory("user-1", "   ")

	assert.ErrorIs(t, err, financeErrors.ErrCategoryNameMissing)
}

func TestCreateCategory_DuplicateAfterTrim(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: 1, UserID: "user-1", Name: "Food"}},
	}
	service := NewCategoryService(repo)

	_, err := service.CreateCategory("user-1", " Food ")

	assert.ErrorIs(t, err, financeErrors.ErrDuplicateCategory)
}

func TestCreateCategory_SameNameDifferentOwner(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: 1, UserID: "user-1", Name: "Food"}},
	}
	service := NewCategoryService(repo)

	category, err := service.CreateCategory("user-2", "Food")

	assert.NoError(t, err)
	assert.Equal(t, "user-2", category.UserID)
}

func TestDeleteCategory_RemovesOwnRow(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: 7, UserID: "user-1", Name: "Food"}},
	}
	service := NewCategoryService(repo)

	err := service.DeleteCategory("user-1", 7)

	assert.NoError(t, err)
	assert.Empty(t, repo.Categories)
}

func TestDeleteCategory_MissingRowIsNotAnError(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	assert.NoError(t, service.DeleteCategory("user-1", 42))
}

func TestDeleteCategory_OtherOwnerRowUntouched(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{
		Categories: []domain.Category{{ID: 7, UserID: "user-2", Name: "Food"}},
	}
	service := NewCategoryService(repo)

	err := service.DeleteCategory("user-1", 7)

	assert.NoError(t, err)
	assert.Equal(t, 1, len(repo.Categories))
}

func TestDeleteCategory_InvalidID(t *testing.T) {
	service := NewCategoryService(&infrastructure.MockCategoryRepository{})

	err := service.DeleteCategory("user-1", 0)

	assert.ErrorIs(t, err, financeErrors.ErrMissingCategoryID)
}
