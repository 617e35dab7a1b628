package users

import (
	"errors"
	"path/filepath"

	"github.com/ReactMentorship/travelblog-core/internal/store"
)

var ErrDuplicateUsername = errors.New("username already taken")

type Repository struct {
	col *store.Collection[User]
}

func NewRepository(dataDir string) *Repository {
	return &Repository{
		col: store.NewCollection[User](filepath.Join(dataDir, "db-users.json"), "users"),
	}
}

func (r *Repository) FindAll() ([]User, error) {
	return r.col.Load()
}

// FindByUsername returns nil when no user matches.
func (r *Repository) FindByUsername(username string) (*User, error) {
	records, err := r.col.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Username == username {
			return &records[i], nil
		}
	}
	return nil, nil
}

// Create persists u, rejecting a username that is already taken. The
// uniqueness check runs inside the collection lock so two concurrent
// registrations cannot both pass it.
func (r *Repository) Create(u User) error {
	return r.col.Update(func(records []User) ([]User, error) {
		for i := range records {
			if records[i].Username == u.Username {
				return nil, ErrDuplicateUsername
			}
		}
		return append(records, u), nil
	})
}
