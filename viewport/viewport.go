// Package viewport computes the render transform that fits the measured
// glyph grid into the available viewport.
//
// [Fit] is a pure function of the viewport size and the grid size; it has no
// internal state and is recomputed whenever either input changes (terminal
// resize, new source, new width parameter).
package viewport

// Margin is the fixed number of cells kept free around the rendered grid.
const Margin = 2

// Transform is the affine transform that centers the scaled grid in the
// viewport. Offsets are in cells, relative to the viewport origin.
type Transform struct {
	Scale   float64
	OffsetX int
	OffsetY int
}

// Fit computes the transform for a gridW x gridH glyph grid inside a
// viewportW x viewportH viewport:
//
//	scale = min((viewportW-Margin)/gridW, (viewportH-Margin)/gridH)
//
// with the result centered. A degenerate grid or viewport yields the zero
// transform. Fit is idempotent and side-effect free.
func Fit(viewportW, viewportH, gridW, gridH int) Transform {
	if viewportW <= Margin || viewportH <= Margin || gridW <= 0 || gridH <= 0 {
		return Transform{}
	}

	scaleX := float64(viewportW-Margin) / float64(gridW)
	scaleY := float64(viewportH-Margin) / float64(gridH)

	scale := scaleX
	if scaleY < scaleX {
		scale = scaleY
	}

	scaledW := int(float64(gridW) * scale)
	scaledH := int(float64(gridH) * scale)

	return Transform{
		Scale:   scale,
		OffsetX: (viewportW - scaledW) / 2,
		OffsetY: (viewportH - scaledH) / 2,
	}
}
