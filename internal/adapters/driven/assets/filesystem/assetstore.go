// Package filesystem stores uploaded assets as files under a local
// directory and addresses them with file:// URLs.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// defaultUploadRate caps sustained uploads; bursts of a few quick drops
// are still accepted without waiting.
const (
	defaultUploadRate  = 5 // per second
	defaultUploadBurst = 10
)

// AssetStore writes uploads into an assets directory. File names are
// prefixed with a random id so repeated uploads of the same file never
// collide. A rate limiter keeps a paste-storm of images from saturating
// the disk.
type AssetStore struct {
	dir     string
	limiter *rate.Limiter
}

var _ driven.AssetStore = (*AssetStore)(nil)

// NewAssetStore creates an asset store rooted at dir. If dir is empty,
// defaults to ~/.markdown-ai/assets.
func NewAssetStore(dir string) (*AssetStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, ".markdown-ai", "assets")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating assets directory: %w", err)
	}
	return &AssetStore{
		dir:     dir,
		limiter: rate.NewLimiter(rate.Limit(defaultUploadRate), defaultUploadBurst),
	}, nil
}

// Dir returns the assets directory.
func (s *AssetStore) Dir() string {
	return s.dir
}

// Upload writes the blob to the assets directory and returns a file://
// URL for it.
func (s *AssetStore) Upload(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for upload slot: %w", err)
	}

	name := sanitizeName(suggestedName)
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%s", uuid.NewString()[:8], name))

	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("writing asset %s: %w", name, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving asset path: %w", err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// sanitizeName strips path separators and control characters from a
// user-supplied file name. An empty result falls back to "asset".
func sanitizeName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, r == '/', r == '\\', r == ':':
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	out := b.String()
	if out == "" || out == "." || out == ".." {
		return "asset"
	}
	return out
}
