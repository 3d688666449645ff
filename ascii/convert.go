package ascii

import (
	"fmt"
	"sync"

	"go.jacobcolvin.com/asciimotion/params"
)

// glyphRamp orders glyphs from dense to sparse; a gray value of 255 maps to
// the trailing space.
const glyphRamp = "$$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// buildLUT maps each of the 256 gray values to a glyph after applying the
// brightness offset and, when it deviates from neutral, the contrast curve
// around mid-gray.
func buildLUT(brightness int, contrast float64) [256]byte {
	var lut [256]byte

	rampMax := float64(len(glyphRamp) - 1)

	for i := range 256 {
		val := float64(i) + float64(brightness)

		if contrast > 1.01 || contrast < 0.99 {
			val = (val-128)*contrast + 128
		}

		if val < 0 {
			val = 0
		} else if val > 255 {
			val = 255
		}

		lut[i] = glyphRamp[int(val*rampMax/255)]
	}

	return lut
}

// Convert renders the loaded source at the given width with the given
// brightness and contrast. With onlyFrame < 0 it returns every frame
// concatenated; otherwise exactly the one frame, index normalized modulo
// the frame count. Each output row is newline-terminated, so the byte size
// of one frame is width*height + height. The returned frame count echoes
// the loaded source.
//
// Fails with [ErrConversionFailed] on out-of-range parameters or when no
// source is loaded.
func (s *Service) Convert(width, brightness int, contrast float64, onlyFrame int) (int, []byte, error) {
	if width < params.MinWidth || width > params.MaxWidth {
		return 0, nil, fmt.Errorf("%w: width %d out of range", ErrConversionFailed, width)
	}

	if brightness < params.MinBrightness || brightness > params.MaxBrightness {
		return 0, nil, fmt.Errorf("%w: brightness %d out of range", ErrConversionFailed, brightness)
	}

	if contrast < params.MinContrast || contrast > params.MaxContrast {
		return 0, nil, fmt.Errorf("%w: contrast %g out of range", ErrConversionFailed, contrast)
	}

	if s.FrameCount() == 0 {
		return 0, nil, fmt.Errorf("%w: no source loaded", ErrConversionFailed)
	}

	t := s.tensorFor(width)
	lut := buildLUT(brightness, contrast)

	frameCount := len(t.planes)
	frameSize := t.w*t.h + t.h

	if onlyFrame >= 0 {
		out := make([]byte, frameSize)
		renderFrame(out, t.planes[onlyFrame%frameCount], t.w, t.h, &lut)

		return frameCount, out, nil
	}

	out := make([]byte, frameSize*frameCount)

	// Frames are independent; render them in parallel into disjoint chunks.
	var wg sync.WaitGroup

	for i := range frameCount {
		wg.Add(1)

		go func() {
			defer wg.Done()
			renderFrame(out[i*frameSize:(i+1)*frameSize], t.planes[i], t.w, t.h, &lut)
		}()
	}

	wg.Wait()

	return frameCount, out, nil
}

// renderFrame fills dst with the glyphs for one plane, newline-terminating
// every row.
func renderFrame(dst, plane []byte, w, h int, lut *[256]byte) {
	p := 0

	for y := range h {
		row := plane[y*w : (y+1)*w]
		for _, gray := range row {
			dst[p] = lut[gray]
			p++
		}

		dst[p] = '\n'
		p++
	}
}
