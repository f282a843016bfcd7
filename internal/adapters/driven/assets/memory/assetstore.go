// Package memory provides an in-memory driven.AssetStore for tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// AssetStore stores uploaded blobs in memory and hands out fake refs.
// Setting FailWith makes every subsequent upload fail with that error,
// which tests use to exercise failure paths.
type AssetStore struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	failWith error
	count    int
}

var _ driven.AssetStore = (*AssetStore)(nil)

// NewAssetStore creates an empty in-memory asset store.
func NewAssetStore() *AssetStore {
	return &AssetStore{blobs: make(map[string][]byte)}
}

// FailWith makes all subsequent uploads return err. Pass nil to restore
// normal behaviour.
func (s *AssetStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

// Upload stores the blob and returns a mem:// ref for it.
func (s *AssetStore) Upload(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return "", s.failWith
	}
	s.count++
	ref := fmt.Sprintf("mem://%d/%s", s.count, suggestedName)
	s.blobs[ref] = append([]byte(nil), data...)
	return ref, nil
}

// Get returns a previously uploaded blob by ref.
func (s *AssetStore) Get(ref string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[ref]
	return data, ok
}

// Len returns the number of stored blobs.
func (s *AssetStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.blobs)
}
