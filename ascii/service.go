package ascii

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
	"sync"
)

var (
	// ErrSourceUnreadable indicates the source path could not be opened or
	// decoded as an animated GIF.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrConversionFailed indicates a conversion request carried invalid
	// parameters or arrived before a source was loaded.
	ErrConversionFailed = errors.New("conversion failed")
	// ErrPreviewFailed indicates a preview still could not be produced.
	ErrPreviewFailed = errors.New("preview failed")
	// ErrExportFailed indicates the export file could not be written.
	ErrExportFailed = errors.New("export failed")
)

// Service converts a loaded GIF source into ASCII frame payloads.
//
// Create instances with [NewService]. Safe for concurrent use.
type Service struct {
	mu         sync.RWMutex
	planes     [][]byte // full-resolution grayscale, one plane per frame
	origW      int
	origH      int
	aspect     float64 // source height / width
	frameCount int
	cache      map[int]*tensor // downsampled planes keyed by render width
}

// tensor holds one render width's downsampled grayscale planes.
type tensor struct {
	w      int
	h      int
	planes [][]byte
}

// NewService creates an empty [Service] with no source loaded.
func NewService() *Service {
	return &Service{cache: map[int]*tensor{}}
}

// LoadSource decodes the animated GIF at path, replacing any previously
// loaded source and invalidating the downsample cache. It returns the frame
// count, or [ErrSourceUnreadable] when the file cannot be opened or decoded.
func (s *Service) LoadSource(path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // Source path is a user-provided CLI argument.
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	defer func() {
		closeErr := f.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing %s: %v\n", path, closeErr)
		}
	}()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return 0, fmt.Errorf("%w: decoding %s: %w", ErrSourceUnreadable, path, err)
	}

	if len(g.Image) == 0 {
		return 0, fmt.Errorf("%w: %s has no frames", ErrSourceUnreadable, path)
	}

	origW := g.Config.Width
	origH := g.Config.Height

	if origW == 0 || origH == 0 {
		b := g.Image[0].Bounds()
		origW = b.Dx()
		origH = b.Dy()
	}

	// Composite each paletted frame over the previous canvas state, then
	// snapshot a grayscale plane. Pixels the GIF leaves transparent stay
	// transparent on the canvas and read as white, matching the preview.
	canvas := image.NewRGBA(image.Rect(0, 0, origW, origH))
	planes := make([][]byte, 0, len(g.Image))

	for _, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		planes = append(planes, grayPlane(canvas))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.planes = planes
	s.origW = origW
	s.origH = origH
	s.aspect = float64(origH) / float64(origW)
	s.frameCount = len(planes)
	s.cache = map[int]*tensor{}

	return s.frameCount, nil
}

// FrameCount returns the loaded source's frame count, 0 when unloaded.
func (s *Service) FrameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.frameCount
}

// grayPlane snapshots the canvas as one grayscale byte per pixel.
// Transparent pixels read as white; opaque pixels use BT.601 luma weights.
func grayPlane(canvas *image.RGBA) []byte {
	b := canvas.Bounds()
	w, h := b.Dx(), b.Dy()
	plane := make([]byte, w*h)

	for y := range h {
		row := canvas.Pix[y*canvas.Stride : y*canvas.Stride+w*4]
		for x := range w {
			r := uint32(row[x*4])
			g := uint32(row[x*4+1])
			bl := uint32(row[x*4+2])
			a := row[x*4+3]

			if a < 128 {
				plane[y*w+x] = 255
				continue
			}

			plane[y*w+x] = byte((r*19595 + g*38470 + bl*7471) >> 16)
		}
	}

	return plane
}

// tensorFor returns the downsampled planes for the given render width,
// building and caching them on first use. Glyph rows are half-height to
// compensate for terminal cell aspect.
func (s *Service) tensorFor(width int) *tensor {
	s.mu.RLock()
	t, ok := s.cache[width]
	s.mu.RUnlock()

	if ok {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have built it between the two lock acquisitions.
	if t, ok := s.cache[width]; ok {
		return t
	}

	h := int(float64(width) * s.aspect * 0.5)
	if h < 1 {
		h = 1
	}

	t = &tensor{w: width, h: h, planes: make([][]byte, len(s.planes))}

	for i, src := range s.planes {
		plane := make([]byte, width*h)
		for y := range h {
			srcY := y * s.origH / h
			for x := range width {
				srcX := x * s.origW / width
				plane[y*width+x] = src[srcY*s.origW+srcX]
			}
		}

		t.planes[i] = plane
	}

	s.cache[width] = t

	return t
}
