// Package pipeline coordinates requests to the conversion service.
//
// The bulk channel is single-flight with trailing coalescing: while one
// conversion is outstanding, any number of further requests collapse into a
// single owed replay, issued with the latest parameter snapshot once the
// outstanding response lands. The replay chain is an explicit state machine
// (Idle, InFlight, InFlight with replay pending) so termination is visible
// rather than hidden in a loop.
//
// The preview channel is fire-and-forget-latest: one in-flight flag, no
// coalescing, and last-write-wins resolved by tagging each request with the
// [params.Snapshot] it was issued against. A response whose tag no longer
// matches the current snapshot is discarded rather than applied over newer
// output.
//
// [Debounce] provides the trailing-edge debounce for interactive edits as a
// generation counter: each edit arms a new generation, and only the timer
// message carrying the latest generation fires.
//
// All coordinator state lives on the event loop. Only the conversion service
// itself runs on other goroutines; its completions re-enter the loop as
// messages before touching any of this state.
package pipeline
