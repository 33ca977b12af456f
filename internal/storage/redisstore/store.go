// Package redisstore keeps characters in a single Redis hash: one field per
// character name holding the encoded record.
package redisstore

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	redisclient "github.com/KirkDiggler/character-maker/internal/redis"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

// DefaultKey is the hash used when Config.Key is empty
const DefaultKey = "charmaker:characters"

// Config contains configuration for the Redis backend
type Config struct {
	Client redisclient.Client
	Key    string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Store is a storage.Backend over a Redis hash
type Store struct {
	client redisclient.Client
	key    string
}

var (
	_ storage.Backend   = (*Store)(nil)
	_ storage.Inspector = (*Store)(nil)
)

// New creates a Redis backend
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	return &Store{client: cfg.Client, key: key}, nil
}

// LoadAll reads every field of the hash. A missing hash is an empty store.
func (s *Store) LoadAll(ctx context.Context) (map[string]*dnd5e.Character, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", s.key)
	}

	characters := make(map[string]*dnd5e.Character, len(fields))
	for name, data := range fields {
		c, err := storage.DecodeCharacter(name, []byte(data))
		if err != nil {
			return nil, err
		}
		if err := storage.AddRecord(characters, name, c); err != nil {
			return nil, err
		}
	}

	slog.DebugContext(ctx, "loaded characters", "key", s.key, "count", len(characters))
	return characters, nil
}

// SaveAll replaces the hash in one transaction
func (s *Store) SaveAll(ctx context.Context, characters map[string]*dnd5e.Character) error {
	values := make([]any, 0, len(characters)*2)
	for name, c := range characters {
		if c == nil {
			continue
		}
		data, err := storage.EncodeCharacter(c)
		if err != nil {
			return err
		}
		values = append(values, name, string(data))
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key)
	if len(values) > 0 {
		pipe.HSet(ctx, s.key, values...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to write %s", s.key)
	}

	slog.DebugContext(ctx, "saved characters", "key", s.key, "count", len(characters))
	return nil
}

// Inspect decodes each field of the hash on its own
func (s *Store) Inspect(ctx context.Context) (*storage.Report, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", s.key)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &storage.Report{}
	for _, name := range names {
		report.Check(name, []byte(fields[name]))
	}

	slog.DebugContext(ctx, "inspected characters", "key", s.key, "checked", report.Checked, "problems", len(report.Problems))
	return report, nil
}

// Remove deletes fields from the hash
func (s *Store) Remove(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key, keys...).Err(); err != nil {
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to remove from %s", s.key)
	}

	slog.InfoContext(ctx, "removed character records", "key", s.key, "keys", keys)
	return nil
}
