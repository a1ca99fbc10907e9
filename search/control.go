package search

import "sync/atomic"

// Control is the shared pause/cancel handle polled by a running algorithm
// at the top of every exploration iteration and during path reconstruction.
// The zero value is ready to use. All methods are safe to call from any
// goroutine while a run executes on another.
type Control struct {
	paused    atomic.Bool
	cancelled atomic.Bool
}

// NewControl returns an unpaused, uncancelled handle.
func NewControl() *Control { return &Control{} }

// Pause requests the running algorithm to hold at its next checkpoint.
func (c *Control) Pause() { c.paused.Store(true) }

// Resume clears a pending pause.
func (c *Control) Resume() { c.paused.Store(false) }

// TogglePause flips the pause flag and reports the new state.
func (c *Control) TogglePause() bool {
	for {
		cur := c.paused.Load()
		if c.paused.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Cancel requests the running algorithm to abort within one iteration.
// Cancellation also releases a paused run.
func (c *Control) Cancel() { c.cancelled.Store(true) }

// Paused reports whether a pause is pending.
func (c *Control) Paused() bool { return c.paused.Load() }

// Cancelled reports whether an abort is pending.
func (c *Control) Cancelled() bool { return c.cancelled.Load() }

// Rearm clears a previous cancellation so the handle can serve the next
// run. The pause flag is deliberately preserved: an operator may pre-pause
// a run before starting it.
func (c *Control) Rearm() { c.cancelled.Store(false) }
