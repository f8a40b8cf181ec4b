// Package file provides the file-backed knowledge-base document store.
// The document is read once, cached for the process lifetime, and
// replaced by a sentinel when the file is missing or unparsable.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/kbserve/internal/core/domain"
	"github.com/custodia-labs/kbserve/internal/core/ports/driven"
	"github.com/custodia-labs/kbserve/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentSource = (*DocumentStore)(nil)

// DefaultDataPath is resolved against the working directory at load
// time, matching the layout of the data checkout.
const DefaultDataPath = "data/kb_data.json"

// DocumentStore lazily loads the knowledge-base JSON file and caches
// the parsed document. Load failures are cached too: the sentinel
// document stands in until the cache is invalidated.
type DocumentStore struct {
	path string

	mu     sync.RWMutex
	doc    *domain.Document
	loaded bool
}

// NewDocumentStore creates a store reading from path.
// An empty path selects DefaultDataPath.
func NewDocumentStore(path string) *DocumentStore {
	if path == "" {
		path = DefaultDataPath
	}
	return &DocumentStore{path: path}
}

// Load returns the cached document, reading the file on first use.
// It never fails; unreadable data degrades to the sentinel document.
func (s *DocumentStore) Load(_ context.Context) *domain.Document {
	s.mu.RLock()
	if s.loaded {
		doc := s.doc
		s.mu.RUnlock()
		return doc
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.doc
	}

	s.doc = s.read()
	s.loaded = true
	return s.doc
}

// read loads and parses the file, falling back to the sentinel.
func (s *DocumentStore) read() *domain.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Warn("Knowledge base unavailable: %v", err)
		return domain.SentinelDocument()
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Knowledge base unparsable: %v", err)
		return domain.SentinelDocument()
	}

	logger.Info("Knowledge base loaded: %d sections from %s", len(doc.SectionNames()), s.path)
	return &doc
}

// Invalidate drops the cached document so the next Load re-reads the file.
func (s *DocumentStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
	s.loaded = false
}

// Path returns the backing file path.
func (s *DocumentStore) Path() string {
	return s.path
}

// Watch invalidates the cache whenever the backing file changes on
// disk. It blocks until ctx is cancelled. The parent directory is
// watched so that editors replacing the file via rename are seen.
func (s *DocumentStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Info("Knowledge base changed on disk, dropping cache")
			s.Invalidate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
