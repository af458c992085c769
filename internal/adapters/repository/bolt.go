package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/ports"
)

var collectionsBucket = []byte("collections")

// BoltCollection keeps every collection in a single bbolt database, one key
// per collection. Each save happens inside a bolt transaction, so a crash can
// never corrupt the stored value the way an interrupted flat-file write can.
type BoltCollection struct {
	db *bolt.DB
}

// NewBoltCollection opens (or creates) the bolt database under dir.
func NewBoltCollection(dir string) (*BoltCollection, error) {
	db, err := bolt.Open(filepath.Join(dir, "store.db"), 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(collectionsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create collections bucket: %w", err)
	}

	return &BoltCollection{db: db}, nil
}

// Load reads and decodes the named collection into out.
func (c *BoltCollection) Load(ctx context.Context, name string, out interface{}) error {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(collectionsBucket).Get([]byte(name)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("read collection %s: %w", name, err)
	}

	if data == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("collection %s: %w: %v", name, entities.ErrCorruptCollection, err)
	}

	return nil
}

// Save encodes the full list and overwrites the named collection key.
func (c *BoltCollection) Save(ctx context.Context, name string, data interface{}) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(collectionsBucket).Put([]byte(name), encoded)
	})
	if err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}

	return nil
}

// Close closes the underlying bolt database.
func (c *BoltCollection) Close() error {
	return c.db.Close()
}

var _ ports.Collection = (*BoltCollection)(nil)
