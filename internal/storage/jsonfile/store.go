// Package jsonfile keeps the character document in a single JSON file, the
// format the tool has always written.
package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/character-maker/internal/entities/dnd5e"
	"github.com/KirkDiggler/character-maker/internal/errors"
	"github.com/KirkDiggler/character-maker/internal/storage"
)

// DefaultPath is used when Config.Path is empty
const DefaultPath = "characters.json"

// Config contains configuration for the file backend
type Config struct {
	Path string
}

// Store reads and writes the document at Path
type Store struct {
	path string
}

var (
	_ storage.Backend   = (*Store)(nil)
	_ storage.Inspector = (*Store)(nil)
)

// New creates a file backend. The file is not touched until the first load or save.
func New(cfg *Config) *Store {
	path := DefaultPath
	if cfg != nil && cfg.Path != "" {
		path = cfg.Path
	}
	return &Store{path: path}
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// LoadAll reads the document. A missing file is an empty store.
func (s *Store) LoadAll(ctx context.Context) (map[string]*dnd5e.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "load canceled")
	}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		slog.DebugContext(ctx, "no character file found, starting fresh", "path", s.path)
		return map[string]*dnd5e.Character{}, nil
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", s.path)
	}

	characters, err := storage.DecodeDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", s.path)
	}

	slog.DebugContext(ctx, "loaded characters", "path", s.path, "count", len(characters))
	return characters, nil
}

// SaveAll writes the document to a temporary file and renames it over the
// old one, so a failed write never truncates existing data
func (s *Store) SaveAll(ctx context.Context, characters map[string]*dnd5e.Character) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "save canceled")
	}

	data, err := storage.EncodeDocument(characters)
	if err != nil {
		return err
	}

	if err := s.write(data); err != nil {
		return err
	}

	slog.DebugContext(ctx, "saved characters", "path", s.path, "count", len(characters))
	return nil
}

// write replaces the file through a temporary sibling
func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to write %s", s.path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to write %s", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to write %s", s.path)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapWithCodef(err, errors.CodePersistence, "failed to replace %s", s.path)
	}
	return nil
}

// readRaw returns the document split into undecoded records. A missing file
// is an empty document.
func (s *Store) readRaw() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "failed to read %s", s.path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodePersistence, "malformed character document %s", s.path)
	}
	return doc, nil
}

// Inspect decodes each record of the document on its own. A document that is
// not a JSON object cannot be split into records and is reported as an error.
func (s *Store) Inspect(ctx context.Context) (*storage.Report, error) {
	doc, err := s.readRaw()
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &storage.Report{}
	for _, key := range keys {
		report.Check(key, doc[key])
	}

	slog.DebugContext(ctx, "inspected characters", "path", s.path, "checked", report.Checked, "problems", len(report.Problems))
	return report, nil
}

// Remove drops records from the document, keeping the others byte for byte
func (s *Store) Remove(ctx context.Context, keys []string) error {
	doc, err := s.readRaw()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(doc, key)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WrapWithCode(err, errors.CodePersistence, "failed to encode characters")
	}
	if err := s.write(data); err != nil {
		return err
	}

	slog.InfoContext(ctx, "removed character records", "path", s.path, "keys", keys)
	return nil
}
