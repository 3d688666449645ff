// Package framebuf owns the concatenated byte payload of converted frames
// and answers frame-slice lookups without ever indexing out of bounds.
//
// A [Buffer] holds one of two layouts: a full buffer containing every frame
// back to back (len == frameCount*frameSize), or a single-frame override
// holding exactly one refreshed frame tagged with its index
// (len == frameSize). The layouts are distinguished explicitly, never
// inferred.
//
// Buffers are immutable once built. The response handler that installs a new
// payload constructs a fresh Buffer and swaps the reference; it never writes
// into a buffer a reader may be slicing. Slices returned by
// [Buffer.SliceFor] alias the underlying payload and must not be modified.
package framebuf

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalidLayout indicates the payload length is not consistent with the
// reported frame count. It signals a protocol violation by the conversion
// service rather than a transient failure: the request is abandoned, not
// retried.
var ErrInvalidLayout = errors.New("invalid frame layout")

// Buffer holds the converted frame payload and its derived layout.
//
// The zero value is an empty buffer with no frames. Build populated buffers
// with [Install] or [InstallSingle].
type Buffer struct {
	payload     []byte
	frameCount  int
	frameSize   int
	single      bool
	singleIndex int
}

// Install builds a full buffer from the concatenated payload of frameCount
// frames. It fails with [ErrInvalidLayout] when frameCount > 0 and the
// payload does not divide evenly into frameCount frames.
func Install(payload []byte, frameCount int) (*Buffer, error) {
	if frameCount <= 0 {
		return &Buffer{}, nil
	}

	if len(payload)%frameCount != 0 {
		return nil, fmt.Errorf("%w: %d bytes across %d frames", ErrInvalidLayout, len(payload), frameCount)
	}

	return &Buffer{
		payload:    payload,
		frameCount: frameCount,
		frameSize:  len(payload) / frameCount,
	}, nil
}

// InstallSingle builds a single-frame override buffer holding one refreshed
// frame, tagged with the index it replaces. frameCount carries over the
// frame count of the full buffer it overrides so playback arithmetic stays
// valid.
func InstallSingle(payload []byte, frameIndex, frameCount int) *Buffer {
	return &Buffer{
		payload:     payload,
		frameCount:  frameCount,
		frameSize:   len(payload),
		single:      true,
		singleIndex: frameIndex,
	}
}

// FrameCount returns the number of frames the buffer describes.
func (b *Buffer) FrameCount() int { return b.frameCount }

// FrameSize returns the byte size of one frame.
func (b *Buffer) FrameSize() int { return b.frameSize }

// Empty reports whether the buffer holds no payload.
func (b *Buffer) Empty() bool { return len(b.payload) == 0 }

// SingleIndex returns the overridden frame index and whether the buffer is a
// single-frame override.
func (b *Buffer) SingleIndex() (int, bool) { return b.singleIndex, b.single }

// SliceFor returns the displayable payload slice for the given frame index.
// The index is normalized modulo the frame count, so any integer is safe. A
// single-frame override returns its whole payload unconditionally; callers
// are responsible for only asking for the tagged index. An empty buffer
// returns nil.
func (b *Buffer) SliceFor(frameIndex int) []byte {
	if b.Empty() || b.frameCount == 0 {
		return nil
	}

	if b.single {
		return b.payload
	}

	idx := frameIndex % b.frameCount
	if idx < 0 {
		idx += b.frameCount
	}

	return b.payload[idx*b.frameSize : (idx+1)*b.frameSize]
}

// Grid is the measured glyph grid of one rendered frame, in glyph cells.
type Grid struct {
	Cols int
	Rows int
}

// MeasureGrid derives the glyph grid from one frame's newline-terminated
// payload. It runs off the interactive path with no visible side effect:
// the measurement is a pure computation over the sample bytes. A sample
// with no newline measures as a single row of len(sample) columns; an empty
// sample measures as zero.
func MeasureGrid(sample []byte) Grid {
	if len(sample) == 0 {
		return Grid{}
	}

	nl := bytes.IndexByte(sample, '\n')
	if nl < 0 {
		return Grid{Cols: len(sample), Rows: 1}
	}

	return Grid{
		Cols: nl,
		Rows: bytes.Count(sample, []byte{'\n'}),
	}
}
