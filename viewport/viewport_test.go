package viewport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/asciimotion/viewport"
)

func TestFit(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		viewportW, viewportH int
		gridW, gridH         int
		expected             viewport.Transform
	}{
		"grid fits with room": {
			viewportW: 102, viewportH: 52,
			gridW: 50, gridH: 25,
			expected: viewport.Transform{Scale: 2.0, OffsetX: 1, OffsetY: 1},
		},
		"width bound": {
			viewportW: 52, viewportH: 102,
			gridW: 100, gridH: 100,
			expected: viewport.Transform{Scale: 0.5, OffsetX: 1, OffsetY: 26},
		},
		"height bound": {
			viewportW: 402, viewportH: 52,
			gridW: 100, gridH: 100,
			expected: viewport.Transform{Scale: 0.5, OffsetX: 176, OffsetY: 1},
		},
		"degenerate grid": {
			viewportW: 80, viewportH: 24,
			gridW: 0, gridH: 0,
			expected: viewport.Transform{},
		},
		"viewport smaller than margin": {
			viewportW: 2, viewportH: 2,
			gridW: 10, gridH: 10,
			expected: viewport.Transform{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := viewport.Fit(tc.viewportW, tc.viewportH, tc.gridW, tc.gridH)
			assert.Equal(t, tc.expected, got)

			// Idempotent: same inputs, same transform.
			assert.Equal(t, got, viewport.Fit(tc.viewportW, tc.viewportH, tc.gridW, tc.gridH))
		})
	}
}
