package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/storage"
	storagecategory "github.com/BojanNestorovic/WalletApp/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID         uuid.UUID
	Name       string
	Predefined bool
}

// CategoryService handles category read paths. Categories are seeded by
// migration; there is no mutation path here.
type CategoryService struct {
	storage storage.ReadStore
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store storage.ReadStore) *CategoryService {
	return &CategoryService{storage: store}
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*Category, error) {
	row, err := s.storage.Categories().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c := categoryFromStorage(row)
	return &c, nil
}

// ListCategories returns every category.
func (s *CategoryService) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.storage.Categories().List(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func categoryFromStorage(row *storagecategory.Category) Category {
	return Category{
		ID:         row.ID,
		Name:       row.Name,
		Predefined: row.Predefined,
	}
}
