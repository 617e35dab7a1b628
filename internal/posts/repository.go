package posts

import (
	"path/filepath"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/ReactMentorship/travelblog-core/internal/store"
)

type Repository struct {
	col *store.Collection[Post]
}

func NewRepository(dataDir string) *Repository {
	return &Repository{
		col: store.NewCollection[Post](filepath.Join(dataDir, "db-posts.json"), "posts"),
	}
}

func (r *Repository) FindAll() ([]Post, error) {
	return r.col.Load()
}

// FindByID returns nil when no post matches.
func (r *Repository) FindByID(id string) (*Post, error) {
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

// FindByCategory scans for posts whose category name matches exactly.
func (r *Repository) FindByCategory(category string) ([]Post, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	matches := []Post{}
	for _, p := range records {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

type CreatePost struct {
	Title       string
	Image       string
	Description string
	Category    string
}

func (r *Repository) Create(in CreatePost) (*Post, error) {
	now := store.Timestamp()
	p := Post{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        slug.Make(in.Title),
		Image:       in.Image,
		Description: in.Description,
		Category:    in.Category,
		Comments:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := r.col.Update(func(records []Post) ([]Post, error) {
		return append(records, p), nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies mutate to the matching record, bumps updatedAt and persists.
// Returns nil when the id is unknown. The record's id and createdAt survive
// whatever mutate does.
func (r *Repository) Update(id string, mutate func(*Post)) (*Post, error) {
	var updated *Post
	err := r.col.Update(func(records []Post) ([]Post, error) {
		for i := range records {
			if records[i].ID == id {
				createdAt := records[i].CreatedAt
				mutate(&records[i])
				records[i].ID = id
				records[i].CreatedAt = createdAt
				records[i].UpdatedAt = store.Timestamp()
				p := records[i]
				updated = &p
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

// AppendComment links a comment id to the post's comment list.
func (r *Repository) AppendComment(postID, commentID string) (*Post, error) {
	return r.Update(postID, func(p *Post) {
		p.Comments = append(p.Comments, commentID)
	})
}

// Delete removes the matching record and returns it, or nil if absent.
func (r *Repository) Delete(id string) (*Post, error) {
	var removed *Post
	err := r.col.Update(func(records []Post) ([]Post, error) {
		for i := range records {
			if records[i].ID == id {
				p := records[i]
				removed = &p
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
