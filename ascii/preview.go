package ascii

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"
)

// previewMaxWidth bounds the preview still's pixel width; larger sources are
// scaled down before encoding.
const previewMaxWidth = 320

// PreviewAdjust renders one frame as a brightness/contrast-adjusted
// grayscale still and returns it as a data:image/png;base64 URI for direct
// display. The frame index is normalized modulo the frame count. Preview
// responses carry no ordering guarantee; callers resolve staleness by
// snapshot tag.
//
// Fails with [ErrPreviewFailed] when no source is loaded or encoding fails.
func (s *Service) PreviewAdjust(brightness int, contrast float64, frameIndex int) (string, error) {
	s.mu.RLock()

	if s.frameCount == 0 {
		s.mu.RUnlock()
		return "", fmt.Errorf("%w: no source loaded", ErrPreviewFailed)
	}

	plane := s.planes[((frameIndex%s.frameCount)+s.frameCount)%s.frameCount]
	w, h := s.origW, s.origH
	s.mu.RUnlock()

	img := image.NewGray(image.Rect(0, 0, w, h))

	for i, gray := range plane {
		val := float64(gray) + float64(brightness)

		if contrast > 1.01 || contrast < 0.99 {
			val = (val-128)*contrast + 128
		}

		if val < 0 {
			val = 0
		} else if val > 255 {
			val = 255
		}

		img.Pix[i] = byte(val)
	}

	out := image.Image(img)

	if w > previewMaxWidth {
		scaledH := h * previewMaxWidth / w
		if scaledH < 1 {
			scaledH = 1
		}

		scaled := image.NewGray(image.Rect(0, 0, previewMaxWidth, scaledH))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
		out = scaled
	}

	var buf bytes.Buffer

	err := png.Encode(&buf, out)
	if err != nil {
		return "", fmt.Errorf("%w: encoding: %w", ErrPreviewFailed, err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
