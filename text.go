// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// wrapText wraps text at word boundaries to width columns.
func wrapText(text string, width int) string {
	text = normalizeLineEndings(strings.TrimSpace(text))
	if text == "" || width <= 0 {
		return text
	}

	return wordwrap.String(text, width)
}

// sanitizeText trims and squashes repeated whitespace in one-line fields.
func sanitizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return strings.Join(strings.Fields(text), " ")
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}
