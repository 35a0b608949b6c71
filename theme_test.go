// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestThemePaintsWithColorProfile(t *testing.T) {
	t.Parallel()

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.ANSI256)

	theme := NewTheme(renderer)
	got := theme.Paint(StyleTypeValue, "string")
	if got == "string" || !strings.Contains(got, "string") || !strings.Contains(got, "\x1b[") {
		t.Fatalf("themed text = %q, want ANSI sequence", got)
	}

	if theme.Paint(StyleTypeValue, "") != "" {
		t.Fatal("empty text should stay empty")
	}
}

func TestThemeAsciiProfileIsPlain(t *testing.T) {
	t.Parallel()

	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)

	tree := BuildTree(mustParse(t, `{"title":"T","enum":[1,2]}`), TreeOptions{})
	if got, want := TreeString(tree, NewTheme(renderer)), TreeString(tree, PlainPainter{}); got != want {
		t.Fatalf("ascii themed output = %q, want %q", got, want)
	}
}
