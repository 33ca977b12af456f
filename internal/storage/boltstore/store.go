// Package boltstore keeps characters in a bbolt database file, one key per
// character name in the "characters" bucket.
package boltstore

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

// DefaultPath is used when Config.Path is empty
const DefaultPath = "characters.db"

var bucketName = []byte("characters")

// Config contains configuration for the bbolt backend
type Config struct {
	Path string
	// Timeout bounds how long Open waits for the file lock; 0 means one second
	Timeout time.Duration
}

// Store is a storage.Backend over a bbolt database
type Store struct {
	db *bolt.DB
}

var (
	_ storage.Backend   = (*Store)(nil)
	_ storage.Inspector = (*Store)(nil)
)

// Open opens or creates the database file. Close releases the file lock.
func Open(cfg *Config) (*Store, error) {
	path := DefaultPath
	timeout := time.Second
	if cfg != nil {
		if cfg.Path != "" {
			path = cfg.Path
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "failed to open %s", path)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll reads every record in the bucket. A missing bucket is an empty store.
func (s *Store) LoadAll(ctx context.Context) (map[string]*dnd5e.Character, error) {
	characters := make(map[string]*dnd5e.Character)

	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			c, err := storage.DecodeCharacter(string(k), v)
			if err != nil {
				return err
			}
			return storage.AddRecord(characters, string(k), c)
		})
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "failed to read characters")
	}

	slog.DebugContext(ctx, "loaded characters", "path", s.db.Path(), "count", len(characters))
	return characters, nil
}

// SaveAll rewrites the bucket in one transaction
func (s *Store) SaveAll(ctx context.Context, characters map[string]*dnd5e.Character) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil && !stderrors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}
		bucket, err := tx.CreateBucket(bucketName)
		if err != nil {
			return err
		}

		for name, c := range characters {
			if c == nil {
				continue
			}
			data, err := storage.EncodeCharacter(c)
			if err != nil {
				return err
			}
			if err := bucket.Put([]byte(name), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodePersistence, "failed to write characters")
	}

	slog.DebugContext(ctx, "saved characters", "path", s.db.Path(), "count", len(characters))
	return nil
}

// Inspect decodes each record in the bucket on its own
func (s *Store) Inspect(ctx context.Context) (*storage.Report, error) {
	report := &storage.Report{}
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, v []byte) error {
			report.Check(string(k), v)
			return nil
		})
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodePersistence, "failed to read characters")
	}

	slog.DebugContext(ctx, "inspected characters", "path", s.db.Path(), "checked", report.Checked, "problems", len(report.Problems))
	return report, nil
}

// Remove deletes records from the bucket in one transaction
func (s *Store) Remove(ctx context.Context, keys []string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.CodePersistence, "failed to remove characters")
	}

	slog.InfoContext(ctx, "removed character records", "path", s.db.Path(), "keys", keys)
	return nil
}
