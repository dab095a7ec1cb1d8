package pairs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FileStore keeps every entry in a single JSON document.
//
// Each Put reads the whole document, merges one key and rewrites the document.
// The mutex serializes writers within this process only; two processes sharing
// the file can still lose each other's updates. Use SQLiteStore for that case.
type FileStore struct {
	fs   afero.Fs
	path string
	log  *slog.Logger
	mu   sync.Mutex
}

// NewFileStore creates a store backed by path on fs.
func NewFileStore(fs afero.Fs, path string, log *slog.Logger) *FileStore {
	return &FileStore{fs: fs, path: path, log: log}
}

// Get returns the entry stored under key.
// A missing, empty or malformed document reads as empty.
func (s *FileStore) Get(_ context.Context, key Key) (*Entry, error) {
	s.mu.Lock()
	doc := s.load()
	s.mu.Unlock()

	raw, ok := doc[string(key)]
	if !ok {
		return nil, nil
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("decode entry %s: %w", key, err)
	}
	return &e, nil
}

// Put merges entry into the document and rewrites it.
func (s *FileStore) Put(_ context.Context, key Key, entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode entry %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc[string(key)] = raw
	return s.save(doc)
}

func (s *FileStore) load() map[string]json.RawMessage {
	doc := make(map[string]json.RawMessage)

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Error("failed to read pair cache file", "path", s.path, "error", err)
		}
		return doc
	}
	if len(data) == 0 {
		return doc
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error("failed to parse pair cache file, treating as empty", "path", s.path, "error", err)
		return make(map[string]json.RawMessage)
	}
	return doc
}

func (s *FileStore) save(doc map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode pair cache: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cache dir: %w", err)
		}
	}

	// Write then rename so readers never observe a partial document
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write pair cache: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace pair cache: %w", err)
	}
	return nil
}
