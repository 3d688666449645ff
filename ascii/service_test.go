package ascii_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciimotion/ascii"
	"go.jacobcolvin.com/asciimotion/stringtest"
)

// writeGIF encodes a two-color animated GIF where frame i is uniformly
// shades[i] (0 = black, 1 = white) and returns its path.
func writeGIF(t *testing.T, w, h int, shades ...int) string {
	t.Helper()

	pal := color.Palette{color.Black, color.White}
	g := &gif.GIF{
		Config: image.Config{
			ColorModel: pal,
			Width:      w,
			Height:     h,
		},
	}

	for _, shade := range shades {
		frame := image.NewPaletted(image.Rect(0, 0, w, h), pal)
		for i := range frame.Pix {
			frame.Pix[i] = byte(shade)
		}

		g.Image = append(g.Image, frame)
		g.Delay = append(g.Delay, 10)
	}

	path := filepath.Join(t.TempDir(), "anim.gif")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gif.EncodeAll(f, g))
	require.NoError(t, f.Close())

	return path
}

func TestLoadSource(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	count, err := svc.LoadSource(writeGIF(t, 8, 8, 0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, svc.FrameCount())
}

func TestLoadSourceUnreadable(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path func(t *testing.T) string
	}{
		"missing file": {
			path: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "missing.gif")
			},
		},
		"not a gif": {
			path: func(t *testing.T) string {
				t.Helper()

				path := filepath.Join(t.TempDir(), "junk.gif")
				require.NoError(t, os.WriteFile(path, []byte("not a gif"), 0o600))

				return path
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			svc := ascii.NewService()

			_, err := svc.LoadSource(tc.path(t))
			require.Error(t, err)
			require.ErrorIs(t, err, ascii.ErrSourceUnreadable)
			assert.Equal(t, 0, svc.FrameCount())
		})
	}
}

func TestConvertAllFrames(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	count, err := svc.LoadSource(writeGIF(t, 4, 4, 0, 1))
	require.NoError(t, err)
	require.Equal(t, 2, count)

	// Square source at width 20 renders 10 half-height rows, each
	// newline-terminated: frameSize = 20*10 + 10.
	echo, payload, err := svc.Convert(20, 0, 1.0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, echo)
	require.Len(t, payload, 2*210)

	frame0 := payload[:210]
	frame1 := payload[210:]

	// Black maps to the densest glyph, white to the trailing space.
	assert.Equal(t, strings.Repeat(strings.Repeat("$", 20)+"\n", 10), string(frame0))
	assert.Equal(t, strings.Repeat(strings.Repeat(" ", 20)+"\n", 10), string(frame1))
}

func TestConvertSingleFrameWraps(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, err := svc.LoadSource(writeGIF(t, 4, 4, 0, 1))
	require.NoError(t, err)

	_, direct, err := svc.Convert(20, 0, 1.0, 1)
	require.NoError(t, err)

	_, wrapped, err := svc.Convert(20, 0, 1.0, 3)
	require.NoError(t, err)

	assert.Equal(t, direct, wrapped)
	assert.Len(t, direct, 210)
}

func TestConvertAdjustments(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, err := svc.LoadSource(writeGIF(t, 4, 4, 0))
	require.NoError(t, err)

	_, neutral, err := svc.Convert(20, 0, 1.0, 0)
	require.NoError(t, err)

	// Maximum brightness lifts black off the dense end of the ramp.
	_, brightened, err := svc.Convert(20, 100, 1.0, 0)
	require.NoError(t, err)
	assert.NotEqual(t, neutral, brightened)
	assert.NotContains(t, string(brightened), "$")

	// High contrast pins mid values back toward the extremes; black stays
	// black.
	_, contrasted, err := svc.Convert(20, 0, 3.0, 0)
	require.NoError(t, err)
	assert.Equal(t, neutral, contrasted)
}

func TestConvertInvalidParameters(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, err := svc.LoadSource(writeGIF(t, 4, 4, 0))
	require.NoError(t, err)

	tcs := map[string]struct {
		width      int
		brightness int
		contrast   float64
	}{
		"width too small":   {width: 10, brightness: 0, contrast: 1.0},
		"width too large":   {width: 500, brightness: 0, contrast: 1.0},
		"brightness beyond": {width: 100, brightness: 200, contrast: 1.0},
		"contrast zero":     {width: 100, brightness: 0, contrast: 0.0},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, _, err := svc.Convert(tc.width, tc.brightness, tc.contrast, -1)
			require.Error(t, err)
			require.ErrorIs(t, err, ascii.ErrConversionFailed)
		})
	}
}

func TestConvertWithoutSource(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, _, err := svc.Convert(100, 0, 1.0, -1)
	require.Error(t, err)
	require.ErrorIs(t, err, ascii.ErrConversionFailed)
}

func TestPreviewAdjust(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, err := svc.LoadSource(writeGIF(t, 4, 4, 0))
	require.NoError(t, err)

	uri, err := svc.PreviewAdjust(100, 1.0, 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	// Black source pixels lifted by +100 brightness.
	gray := color.GrayModel.Convert(img.At(0, 0)).(color.Gray)
	assert.Equal(t, uint8(100), gray.Y)
}

func TestPreviewAdjustWithoutSource(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	_, err := svc.PreviewAdjust(0, 1.0, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, ascii.ErrPreviewFailed)
}

func TestExportFrames(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()
	path := filepath.Join(t.TempDir(), "out.txt")

	err := svc.ExportFrames(path, []string{"##\n..\n", "..\n##\n"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := stringtest.JoinLF(
		"--- FRAME 0 ---",
		"##",
		"..",
		"",
		"--- FRAME 1 ---",
		"..",
		"##",
		"",
	) + "\n"
	assert.Equal(t, want, string(data))
}

func TestExportFramesBadPath(t *testing.T) {
	t.Parallel()

	svc := ascii.NewService()

	err := svc.ExportFrames(filepath.Join(t.TempDir(), "missing", "out.txt"), []string{"#"})
	require.Error(t, err)
	require.ErrorIs(t, err, ascii.ErrExportFailed)
}
