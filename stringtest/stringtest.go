// Package stringtest holds small helpers for building expected multi-line
// strings in tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//	) // -> "line1\nline2"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// Frame joins glyph rows into a frame payload where every row, including the
// last, is newline-terminated — the shape conversion responses use.
//
// Example:
//
//	frame := stringtest.Frame(
//		"##",
//		"..",
//	) // -> "##\n..\n"
func Frame(rows ...string) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}
