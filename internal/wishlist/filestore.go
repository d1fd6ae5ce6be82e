package wishlist

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"bookshop/internal/catalog"
)

// FileStore persists each owner's wishlist as a JSON file under a directory,
// written in full on every mutation.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(owner string) string {
	return filepath.Join(f.dir, owner+".json")
}

func (f *FileStore) Load(owner string) ([]catalog.Book, error) {
	data, err := os.ReadFile(f.path(owner))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var books []catalog.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (f *FileStore) Save(owner string, books []catalog.Book) error {
	if books == nil {
		books = []catalog.Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never leaves a truncated file.
	tmp := f.path(owner) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path(owner))
}
