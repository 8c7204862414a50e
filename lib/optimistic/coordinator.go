package optimistic

import (
	"context"
	"sync"
	"time"
)

// DefaultErrorClearDelay is how long a failed mutation's message stays
// visible before it clears on its own.
const DefaultErrorClearDelay = 3000 * time.Millisecond

// Coordinator keeps a local working copy of some state S and makes
// mutations feel instantaneous: the change is applied locally first,
// then committed remotely; a failed commit restores the snapshot taken
// when the mutation started and surfaces a transient error.
//
// There is no mutation queue. Two overlapping mutations on the same
// state race and the later completion wins, each rolling back only to
// its own snapshot baseline.
type Coordinator[S any] struct {
	mu         sync.Mutex
	state      S
	lastErr    error
	clearDelay time.Duration
	clearTimer *time.Timer
}

func NewCoordinator[S any](initial S) *Coordinator[S] {
	return &Coordinator[S]{
		state:      initial,
		clearDelay: DefaultErrorClearDelay,
	}
}

// WithErrorClearDelay overrides the transient error lifetime.
func (c *Coordinator[S]) WithErrorClearDelay(d time.Duration) *Coordinator[S] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearDelay = d
	return c
}

func (c *Coordinator[S]) State() S {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the currently surfaced transient error, nil once it has
// been cleared by the timer or by a later successful mutation.
func (c *Coordinator[S]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Mutate captures a snapshot, applies the change to the local state
// immediately, then runs commit. On commit failure the snapshot is
// restored and the error is surfaced until it auto-clears.
func (c *Coordinator[S]) Mutate(ctx context.Context, apply func(S) S, commit func(context.Context) error) error {
	c.mu.Lock()
	snapshot := c.state
	c.state = apply(c.state)
	c.mu.Unlock()

	err := commit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = snapshot
		c.surfaceLocked(err)
		return err
	}
	c.clearLocked()
	return nil
}

func (c *Coordinator[S]) surfaceLocked(err error) {
	c.lastErr = err
	if c.clearTimer != nil {
		c.clearTimer.Stop()
	}
	c.clearTimer = time.AfterFunc(c.clearDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.lastErr == err {
			c.lastErr = nil
		}
	})
}

func (c *Coordinator[S]) clearLocked() {
	c.lastErr = nil
	if c.clearTimer != nil {
		c.clearTimer.Stop()
		c.clearTimer = nil
	}
}
