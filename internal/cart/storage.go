package cart

import (
	"os"
	"path/filepath"
)

// storageKey is the fixed key the cart contents are mirrored under.
const storageKey = "cart.json"

// Storage is the durable mirror of the cart contents. Implementations hold a
// single value under a fixed key, the way browser local storage does.
type Storage interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStorage mirrors the cart to a JSON file in a local data directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// Load reads the stored cart value. A missing file is not an error; it reads
// as "no cart".
func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, storageKey))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

// Save overwrites the stored cart value.
func (s *FileStorage) Save(data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, storageKey), data, 0o644)
}

// MemStorage keeps the mirrored value in memory. Used in tests.
type MemStorage struct {
	data []byte
}

func (s *MemStorage) Load() ([]byte, error) { return s.data, nil }

func (s *MemStorage) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	return nil
}
