package main

import (
	"bytes"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// View renders the current frame through the viewport transform, the
// preview pane while adjusting, and the status rows.
func (m *model) View() tea.View {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("loading " + m.source + "...\n")

	default:
		b.WriteString(m.renderFrame())
	}

	if m.previewPane != "" {
		b.WriteString(m.previewPane)
	}

	b.WriteString(m.statusBar())

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}

// renderFrame applies the transform to the displayed slice: nearest-glyph
// downsampling when the grid exceeds the viewport, centering offsets
// otherwise. Glyphs cannot be upscaled, so the scale is capped at 1.
func (m *model) renderFrame() string {
	slice := m.buf.SliceFor(m.sched.Index())
	if len(slice) == 0 {
		return ""
	}

	lines := bytes.Split(bytes.TrimRight(slice, "\n"), []byte{'\n'})

	scale := m.xform.Scale
	if scale <= 0 {
		return ""
	}

	if scale > 1 {
		scale = 1
	}

	outRows := int(float64(m.grid.Rows) * scale)
	outCols := int(float64(m.grid.Cols) * scale)

	if outRows < 1 || outCols < 1 {
		return ""
	}

	offX := (m.viewportW - outCols) / 2
	if offX < 0 {
		offX = 0
	}

	offY := (m.viewportH - statusRows - outRows) / 2
	if offY < 0 {
		offY = 0
	}

	var b strings.Builder

	for range offY {
		b.WriteByte('\n')
	}

	pad := strings.Repeat(" ", offX)

	for y := range outRows {
		src := lines[y*m.grid.Rows/outRows]
		b.WriteString(pad)

		for x := range outCols {
			sx := x * m.grid.Cols / outCols
			if sx < len(src) {
				b.WriteByte(src[sx])
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}

func (m *model) statusBar() string {
	snap := m.store.Snapshot()

	state := "playing"

	switch {
	case m.sched.Interactive():
		state = "adjusting"
	case m.sched.Paused():
		state = "paused"
	}

	frame := "-"
	if m.buf.FrameCount() > 0 {
		idx := m.sched.Index() % m.buf.FrameCount()
		if idx < 0 {
			idx += m.buf.FrameCount()
		}

		frame = fmt.Sprintf("%d/%d", idx+1, m.buf.FrameCount())
	}

	status := fmt.Sprintf("frame %s  w=%d b=%+d c=%.1f  %s",
		frame, snap.Width, snap.Brightness, snap.Contrast, state)

	if m.exportedTo != "" {
		status += "  exported: " + m.exportedTo
	}

	second := ""

	switch {
	case m.coord.Err() != nil:
		second = errorStyle.Render("error: " + m.coord.Err().Error())
	case m.tail != nil && m.tail.Last() != "":
		second = statusStyle.Render(m.tail.Last())
	}

	return statusStyle.Render(status) + "\n" + second
}
