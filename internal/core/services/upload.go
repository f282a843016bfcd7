package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// UploadCoordinator tracks in-flight asset uploads and resolves their
// placeholders when transfers finish. Every upload is addressed by a
// unique token, so a completion only ever touches its own placeholder
// even if the user has moved or deleted it meanwhile.
type UploadCoordinator struct {
	assets driven.AssetStore

	mu    sync.Mutex
	tasks map[string]*domain.UploadTask

	newToken func() string
}

// NewUploadCoordinator creates a coordinator backed by the given asset
// store.
func NewUploadCoordinator(assets driven.AssetStore) *UploadCoordinator {
	return &UploadCoordinator{
		assets:   assets,
		tasks:    make(map[string]*domain.UploadTask),
		newToken: uuid.NewString,
	}
}

// Begin registers a new pending upload for the named asset and returns
// the task carrying its token and placeholder marker. The caller inserts
// task.Placeholder into the content and then runs Transfer off the hot
// path.
func (c *UploadCoordinator) Begin(name string) *domain.UploadTask {
	token := c.newToken()
	task := &domain.UploadTask{
		Token:       token,
		Name:        name,
		Placeholder: domain.PlaceholderMarker(token, name),
		Status:      domain.UploadPending,
	}
	c.mu.Lock()
	c.tasks[token] = task
	c.mu.Unlock()
	return task
}

// Transfer performs the actual upload for a previously begun task and
// returns the result to feed into Resolve. It blocks, so callers run it
// from a goroutine.
func (c *UploadCoordinator) Transfer(ctx context.Context, token string, data []byte) domain.UploadResult {
	c.mu.Lock()
	task, ok := c.tasks[token]
	c.mu.Unlock()
	if !ok {
		return domain.UploadResult{Token: token, Err: domain.ErrUnknownToken}
	}
	if c.assets == nil {
		return domain.UploadResult{Token: token, Err: domain.ErrNotImplemented}
	}
	ref, err := c.assets.Upload(ctx, data, task.Name)
	if err != nil {
		return domain.UploadResult{
			Token: token,
			Err:   fmt.Errorf("%w: %s: %w", domain.ErrUploadFailed, task.Name, err),
		}
	}
	return domain.UploadResult{Token: token, RemoteRef: ref}
}

// Resolve applies a finished transfer to the session. On success the
// placeholder becomes real image markdown and the replacement is one
// undo step. On failure the placeholder is removed without touching the
// history and the error is returned for display. A placeholder the user
// already deleted makes the completion a silent no-op.
func (c *UploadCoordinator) Resolve(sess *Session, result domain.UploadResult) (*domain.UploadTask, error) {
	c.mu.Lock()
	task, ok := c.tasks[result.Token]
	if ok {
		delete(c.tasks, result.Token)
	}
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownToken, result.Token)
	}

	if result.Err != nil {
		task.Status = domain.UploadFailed
		sess.DiscardMarker(task.Placeholder)
		return task, result.Err
	}

	task.Status = domain.UploadSucceeded
	task.RemoteRef = result.RemoteRef
	sess.ResolveMarker(task.Placeholder, imageMarkdown(task.Name, result.RemoteRef))
	return task, nil
}

// Pending returns the number of uploads still awaiting resolution.
func (c *UploadCoordinator) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tasks)
}

func imageMarkdown(name, ref string) string {
	return fmt.Sprintf("\n![%s](%s)\n", name, ref)
}
