package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"time"
)

// TimeLayout is ISO-8601 with millisecond precision, the format every
// record's createdAt/updatedAt is stamped with. Fixed width, so timestamps
// compare correctly as strings.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

func Timestamp() string {
	return time.Now().UTC().Format(TimeLayout)
}

// StorageError wraps any read, write or parse failure of a collection file.
type StorageError struct {
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Collection persists all records of one entity type in a single JSON file
// shaped as {"<key>": [...]}. A missing file reads as an empty collection.
// The mutex serializes load-modify-save cycles within the process; nothing
// guards against other processes touching the same file.
type Collection[T any] struct {
	mu   sync.Mutex
	path string
	key  string
}

func NewCollection[T any](path, key string) *Collection[T] {
	return &Collection[T]{path: path, key: key}
}

func (c *Collection[T]) Load() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

func (c *Collection[T]) Save(records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(records)
}

// Update runs mutate over the freshly loaded records and persists whatever it
// returns, all under the collection lock.
func (c *Collection[T]) Update(mutate func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	records, err = mutate(records)
	if err != nil {
		return err
	}
	return c.save(records)
}

func (c *Collection[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &StorageError{Path: c.path, Err: err}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &StorageError{Path: c.path, Err: err}
	}
	raw, ok := doc[c.key]
	if !ok {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &StorageError{Path: c.path, Err: err}
	}
	return records, nil
}

func (c *Collection[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(map[string][]T{c.key: records}, "", "  ")
	if err != nil {
		return &StorageError{Path: c.path, Err: err}
	}

	// write-then-rename so readers never observe a partial file
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &StorageError{Path: c.path, Err: err}
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return &StorageError{Path: c.path, Err: err}
	}
	return nil
}
