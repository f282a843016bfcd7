package services

import (
	"time"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
)

// DefaultSyncWindow is how long a programmatic scroll suppresses events
// from the opposite pane before the controller returns to idle.
const DefaultSyncWindow = 100 * time.Millisecond

type syncState int

const (
	syncIdle syncState = iota
	syncSyncing
)

// ScrollSyncController mirrors scroll positions between the source and
// rendered panes by relative ratio. It is a two-state machine: idle
// accepts events from either pane; after driving the opposite pane it
// sits in syncing for a fixed window, ignoring the echo events the
// programmatic scroll produces, then falls back to idle. Not safe for
// concurrent use; drive it from the UI event loop.
type ScrollSyncController struct {
	enabled bool
	state   syncState
	window  time.Duration
	until   time.Time
	now     func() time.Time
}

// NewScrollSyncController creates an enabled controller with the default
// suppression window.
func NewScrollSyncController() *ScrollSyncController {
	return &ScrollSyncController{
		enabled: true,
		window:  DefaultSyncWindow,
		now:     time.Now,
	}
}

// Enabled reports whether sync is on.
func (c *ScrollSyncController) Enabled() bool { return c.enabled }

// SetEnabled switches sync on or off. Disabling also drops any pending
// suppression window.
func (c *ScrollSyncController) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.state = syncIdle
	}
}

// Toggle flips the enabled flag and returns the new value.
func (c *ScrollSyncController) Toggle() bool {
	c.SetEnabled(!c.enabled)
	return c.enabled
}

// OnSourceScroll handles a user scroll of the source pane and returns
// the offset the rendered pane should move to. The second return is
// false when no programmatic scroll should happen: sync disabled, a
// suppression window active, or a pane without scrollable range.
func (c *ScrollSyncController) OnSourceScroll(source, rendered domain.Surface) (float64, bool) {
	return c.sync(source, rendered)
}

// OnRenderedScroll handles a user scroll of the rendered pane and
// returns the offset the source pane should move to.
func (c *ScrollSyncController) OnRenderedScroll(rendered, source domain.Surface) (float64, bool) {
	return c.sync(rendered, source)
}

func (c *ScrollSyncController) sync(from, to domain.Surface) (float64, bool) {
	if !c.enabled {
		return 0, false
	}
	if c.state == syncSyncing {
		if c.now().Before(c.until) {
			return 0, false
		}
		c.state = syncIdle
	}
	ratio, ok := from.Ratio()
	if !ok {
		return 0, false
	}
	rng := to.Range()
	if rng <= 0 {
		return 0, false
	}
	c.state = syncSyncing
	c.until = c.now().Add(c.window)
	return ratio * rng, true
}
