package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/BojanNestorovic/WalletApp/internal/core"
	"github.com/BojanNestorovic/WalletApp/internal/storage/category"
)

type categoryTable struct {
	store *Store
	draft *state
}

var _ category.Reader = (*categoryTable)(nil)

func (t *categoryTable) FindByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	var found *category.Category
	viewState(t.store, t.draft, func(s *state) {
		if row, ok := s.categories[id]; ok {
			found = &row
		}
	})
	if found == nil {
		return nil, fmt.Errorf("category %v: %w", id, core.ErrNotFound)
	}
	return found, nil
}

func (t *categoryTable) FindByName(ctx context.Context, name string) (*category.Category, error) {
	var found *category.Category
	viewState(t.store, t.draft, func(s *state) {
		for _, row := range s.categories {
			if row.Name == name {
				c := row
				found = &c
				return
			}
		}
	})
	if found == nil {
		return nil, fmt.Errorf("category %q: %w", name, core.ErrNotFound)
	}
	return found, nil
}

func (t *categoryTable) List(ctx context.Context) ([]*category.Category, error) {
	var result []*category.Category
	viewState(t.store, t.draft, func(s *state) {
		for _, c := range s.categories {
			row := c
			result = append(result, &row)
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// AddCategory inserts a category directly into committed state. Category
// administration is outside the ledger, so tests and the memory backend seed
// through here rather than through a write unit.
func (s *Store) AddCategory(name string, predefined bool, ownerID uuid.UUID) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.Must(uuid.NewV4())
	s.committed.categories[id] = category.Category{
		ID:         id,
		Name:       name,
		Predefined: predefined,
		OwnerID:    ownerID,
	}
	return id
}
