package categories

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/ReactMentorship/travelblog-core/internal/store"
)

type Repository struct {
	col *store.Collection[Category]
}

func NewRepository(dataDir string) *Repository {
	return &Repository{
		col: store.NewCollection[Category](filepath.Join(dataDir, "db-categories.json"), "categories"),
	}
}

func (r *Repository) FindAll() ([]Category, error) {
	return r.col.Load()
}

// FindByID returns nil when no category matches.
func (r *Repository) FindByID(id string) (*Category, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, nil
}

func (r *Repository) Create(name string) (*Category, error) {
	now := store.Timestamp()
	cat := Category{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      slug.Make(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.col.Update(func(records []Category) ([]Category, error) {
		return append(records, cat), nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// Update applies mutate to the matching record, bumps updatedAt and persists.
// Returns nil when the id is unknown.
func (r *Repository) Update(id string, mutate func(*Category)) (*Category, error) {
	var updated *Category
	err := r.col.Update(func(records []Category) ([]Category, error) {
		for i := range records {
			if records[i].ID == id {
				createdAt := records[i].CreatedAt
				mutate(&records[i])
				records[i].ID = id
				records[i].CreatedAt = createdAt
				records[i].UpdatedAt = store.Timestamp()
				cat := records[i]
				updated = &cat
				return records, nil
			}
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the matching record and returns it, or nil if absent.
func (r *Repository) Delete(id string) (*Category, error) {
	var removed *Category
	err := r.col.Update(func(records []Category) ([]Category, error) {
		for i := range records {
			if records[i].ID == id {
				cat := records[i]
				removed = &cat
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}
