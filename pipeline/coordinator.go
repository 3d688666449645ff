package pipeline

import (
	"go.jacobcolvin.com/asciimotion/params"
)

// ScopeAll requests conversion of every frame. Non-negative scopes request
// exactly that frame.
const ScopeAll = -1

// BulkState is the bulk channel's single-flight state.
type BulkState int

const (
	// BulkIdle means no bulk conversion is outstanding.
	BulkIdle BulkState = iota
	// BulkInFlight means exactly one bulk conversion is outstanding.
	BulkInFlight
	// BulkReplayPending means one conversion is outstanding and one replay
	// is owed. Further requests stay in this state: arbitrarily long edit
	// bursts collapse into the single trailing replay.
	BulkReplayPending
)

// Coordinator serializes conversion requests. It is not safe for concurrent
// use; every method must be called from the event loop.
//
// The zero value is ready to use.
type Coordinator struct {
	bulk    BulkState
	scope   int
	preview bool
	lastErr error
}

// BulkState returns the bulk channel state, for status display and tests.
func (c *Coordinator) BulkState() BulkState { return c.bulk }

// RequestBulk asks for a conversion of the given scope ([ScopeAll] or a
// frame index). It reports whether the caller should issue the call now,
// with a snapshot taken at issue time. When a request is already in flight
// it records that a replay is owed, remembers the newest scope, and returns
// false; no queue builds up.
func (c *Coordinator) RequestBulk(scope int) bool {
	c.scope = scope

	if c.bulk == BulkIdle {
		c.bulk = BulkInFlight
		return true
	}

	c.bulk = BulkReplayPending

	return false
}

// FinishBulk releases the in-flight slot after a response (success or
// failure) and reports whether an owed replay must be issued immediately,
// along with its scope. The replay must be issued with the latest parameter
// snapshot, not the one the superseded request carried. FinishBulk is the
// guaranteed-release point: it must run on every completion path so a failed
// call can never wedge the channel.
func (c *Coordinator) FinishBulk() (replay bool, scope int) {
	if c.bulk == BulkReplayPending {
		c.bulk = BulkInFlight
		return true, c.scope
	}

	c.bulk = BulkIdle

	return false, 0
}

// RequestPreview reports whether a preview call should be issued now. The
// preview channel has no replay: while one is outstanding further requests
// are dropped, because the response staleness check plus the debounced
// conversion already guarantee freshness.
func (c *Coordinator) RequestPreview() bool {
	if c.preview {
		return false
	}

	c.preview = true

	return true
}

// AcceptPreview releases the preview slot and reports whether a response
// issued against tag may be applied. Responses whose tag differs from the
// current snapshot are stale and must be discarded, never applied over
// newer output.
func (c *Coordinator) AcceptPreview(tag, current params.Snapshot) bool {
	c.preview = false

	return tag == current
}

// RecordFailure stores err as the latest user-visible error. Existing frame
// and playback state stay untouched; the last good frame remains on screen.
func (c *Coordinator) RecordFailure(err error) {
	c.lastErr = err
}

// ClearFailure drops the recorded error after a successful response.
func (c *Coordinator) ClearFailure() {
	c.lastErr = nil
}

// Err returns the latest recorded error, or nil.
func (c *Coordinator) Err() error { return c.lastErr }
