package comments

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ReactMentorship/travelblog-core/internal/store"
)

type Repository struct {
	col *store.Collection[Comment]
}

func NewRepository(dataDir string) *Repository {
	return &Repository{
		col: store.NewCollection[Comment](filepath.Join(dataDir, "db-comments.json"), "comments"),
	}
}

func (r *Repository) FindAll() ([]Comment, error) {
	return r.col.Load()
}

// FindByID returns nil when no comment matches.
func (r *Repository) FindByID(id string) (*Comment, error) {
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

func (r *Repository) FindByPostID(postID string) ([]Comment, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	matches := []Comment{}
	for _, cm := range records {
		if cm.PostID == postID {
			matches = append(matches, cm)
		}
	}
	return matches, nil
}

func (r *Repository) Create(author, content, postID string) (*Comment, error) {
	now := store.Timestamp()
	cm := Comment{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		PostID:    postID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := r.col.Update(func(records []Comment) ([]Comment, error) {
		return append(records, cm), nil
	})
	if err != nil {
		return nil, err
	}
	return &cm, nil
}

// Delete removes the matching record and returns it, or nil if absent.
func (r *Repository) Delete(id string) (*Comment, error) {
	var removed *Comment
	err := r.col.Update(func(records []Comment) ([]Comment, error) {
		for i := range records {
			if records[i].ID == id {
				cm := records[i]
				removed = &cm
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
