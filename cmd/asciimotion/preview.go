package main

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
)

// previewPaneCols is the preview pane width in terminal cells.
const previewPaneCols = 24

const dataURIPrefix = "data:image/png;base64,"

// renderPreviewPane decodes a preview data URI and renders it as ANSI
// half-block cells: each terminal row carries two pixel rows via foreground
// and background colors on the "▀" character. The pane is cosmetic, so any
// decode problem yields an empty pane rather than an error.
func renderPreviewPane(uri string, cols int) string {
	raw, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return ""
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return ""
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	if srcW == 0 || srcH == 0 {
		return ""
	}

	pixW := cols
	pixH := srcH * pixW / srcW

	if pixH < 2 {
		pixH = 2
	}

	scaled := image.NewRGBA(image.Rect(0, 0, pixW, pixH))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var b strings.Builder

	for row := range pixH / 2 {
		topY := row * 2
		botY := topY + 1

		for x := range pixW {
			top := scaled.RGBAAt(x, topY)
			bot := scaled.RGBAAt(x, botY)

			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bot.R, bot.G, bot.B)
		}

		b.WriteString("\033[0m\n")
	}

	return b.String()
}
