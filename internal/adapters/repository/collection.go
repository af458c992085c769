package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

// Collection names used by the entity repositories.
const (
	productsCollection = "products"
	ordersCollection   = "orders"
)

// FileCollection persists each collection as one <name>.json array file in a
// fixed data directory. A missing file reads as an empty collection; a file
// that fails to parse is reported as corrupt rather than silently downgraded
// to empty. Writes go through a temp file and rename so a crash mid-write
// cannot leave a half-written collection behind.
type FileCollection struct {
	dir string
}

// NewFileCollection creates a file-backed collection store rooted at dir.
func NewFileCollection(dir string) (*FileCollection, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileCollection{dir: dir}, nil
}

// Load reads and decodes the named collection into out.
func (c *FileCollection) Load(ctx context.Context, name string, out interface{}) error {
	data, err := os.ReadFile(c.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read collection %s: %w", name, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("collection %s: %w: %v", name, entities.ErrCorruptCollection, err)
	}

	return nil
}

// Save encodes the full list and overwrites the named collection.
func (c *FileCollection) Save(ctx context.Context, name string, data interface{}) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(c.dir, name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), c.path(name)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace collection %s: %w", name, err)
	}

	return nil
}

func (c *FileCollection) path(name string) string {
	return filepath.Join(c.dir, name+".json")
}

var _ ports.Collection = (*FileCollection)(nil)
