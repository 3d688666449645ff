package pipeline

import "time"

// DefaultDebounce is the quiet period after the last interactive edit before
// the final bulk conversion is issued.
const DefaultDebounce = 150 * time.Millisecond

// Debounce implements a trailing-edge debounce as a generation counter.
// Every edit arms a new generation and schedules a timer carrying it; a
// timer that arrives with a stale generation was superseded by a later edit
// and is ignored. Only the latest generation's timer fires.
//
// Not safe for concurrent use; call from the event loop.
type Debounce struct {
	seq   int
	delay time.Duration
}

// NewDebounce creates a [Debounce] with the given quiet period. Delays of
// zero or less fall back to [DefaultDebounce].
func NewDebounce(delay time.Duration) *Debounce {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debounce{delay: delay}
}

// Delay returns the quiet period to schedule the generation's timer with.
func (d *Debounce) Delay() time.Duration { return d.delay }

// Arm starts a new generation, invalidating any earlier pending timer, and
// returns the generation to stamp the timer message with.
func (d *Debounce) Arm() int {
	d.seq++
	return d.seq
}

// Fire reports whether a timer stamped with seq is still the latest
// generation and should trigger the final conversion.
func (d *Debounce) Fire(seq int) bool {
	return seq == d.seq
}
