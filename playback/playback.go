// Package playback advances the displayed frame index on a clock that is
// independent of user interaction.
//
// The [Scheduler] is a two-state machine. In Autoplay the clock advances the
// frame index whenever at least [MinAdvanceGap] has elapsed since the last
// advance. In Interactive (the user is mid-drag on a control) the clock
// keeps running and keeps its bookkeeping current, so playback resumes
// without a jump, but never moves the index; this keeps autoplay from racing
// a user-driven single-frame refresh for the same index.
//
// The wake-up mechanism is the caller's: any recurring tick at or below the
// advance gap works, because the gap is enforced here, not by the timer.
package playback

import "time"

// MinAdvanceGap is the minimum time between two frame advances.
const MinAdvanceGap = 100 * time.Millisecond

// Scheduler tracks the displayed frame index and the autoplay clock. Not
// safe for concurrent use; call from the event loop.
//
// The zero value is an Autoplay scheduler at frame 0.
type Scheduler struct {
	index       int
	lastAdvance time.Time
	interactive bool
	paused      bool
}

// Index returns the current frame index. Callers normalize it modulo the
// frame count before slicing; with zero frames the index is meaningless.
func (s *Scheduler) Index() int { return s.index }

// SetIndex moves the displayed frame, for manual stepping. The value is kept
// as-is; slicing normalizes it.
func (s *Scheduler) SetIndex(i int) { s.index = i }

// Interactive reports whether the scheduler is in the Interactive state.
func (s *Scheduler) Interactive() bool { return s.interactive }

// SetInteractive switches between Interactive (parameter edit arrived) and
// Autoplay (debounce trailing edge fired). The frame index is preserved
// across the transition.
func (s *Scheduler) SetInteractive(v bool) { s.interactive = v }

// Paused reports whether the user paused autoplay.
func (s *Scheduler) Paused() bool { return s.paused }

// TogglePause flips the user pause state.
func (s *Scheduler) TogglePause() { s.paused = !s.paused }

// Reset prepares the scheduler for a newly loaded source: frame 0, Autoplay,
// unpaused, clock rebased to now.
func (s *Scheduler) Reset(now time.Time) {
	s.index = 0
	s.interactive = false
	s.paused = false
	s.lastAdvance = now
}

// Tick drives the clock and reports whether the frame index advanced. The
// bookkeeping timestamp moves on every elapsed gap regardless of state, but
// the index only moves in unpaused Autoplay with more than one frame.
func (s *Scheduler) Tick(now time.Time, frameCount int) bool {
	if now.Sub(s.lastAdvance) < MinAdvanceGap {
		return false
	}

	s.lastAdvance = now

	if s.interactive || s.paused || frameCount <= 1 {
		return false
	}

	s.index = (s.index + 1) % frameCount

	return true
}
