package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/asciimotion/pipeline"
)

func TestDebounceTrailingEdge(t *testing.T) {
	t.Parallel()

	d := pipeline.NewDebounce(150 * time.Millisecond)

	// A burst of edits: each re-arms, superseding the previous timer.
	s1 := d.Arm()
	s2 := d.Arm()
	s3 := d.Arm()

	// Superseded timers arrive and are ignored.
	assert.False(t, d.Fire(s1))
	assert.False(t, d.Fire(s2))

	// Only the trailing generation fires.
	assert.True(t, d.Fire(s3))
}

func TestDebounceNewEditInvalidatesFiredGeneration(t *testing.T) {
	t.Parallel()

	d := pipeline.NewDebounce(0)
	assert.Equal(t, pipeline.DefaultDebounce, d.Delay())

	s1 := d.Arm()
	assert.True(t, d.Fire(s1))

	// An edit after the fire starts a fresh cycle.
	s2 := d.Arm()
	assert.False(t, d.Fire(s1))
	assert.True(t, d.Fire(s2))
}
