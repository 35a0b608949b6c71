// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bufio"
	"io"
	"strings"
)

const (
	guideBranch   = "├── "
	guideLast     = "└── "
	guideVertical = "│   "
	guideSpace    = "    "
)

// treeLine is one pending node with its resolved guide prefixes.
type treeLine struct {
	node        *Node
	connector   string
	childPrefix string
}

// WriteTree writes render tree as indented text lines with box-drawing guides.
func WriteTree(w io.Writer, root *Node, painter Painter) error {
	if root == nil {
		return nil
	}

	if painter == nil {
		painter = PlainPainter{}
	}

	out := bufio.NewWriter(w)
	stack := []treeLine{{node: root}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for index, line := range current.node.Lines() {
			prefix := current.connector
			if index > 0 {
				prefix = current.childPrefix
			}

			if prefix != "" {
				_, _ = out.WriteString(painter.Paint(StyleGuide, prefix))
			}

			_, _ = out.WriteString(paintSpans(line, painter))
			_ = out.WriteByte('\n')
		}

		children := current.node.Children
		for index := len(children) - 1; index >= 0; index-- {
			connector := current.childPrefix + guideBranch
			childPrefix := current.childPrefix + guideVertical
			if index == len(children)-1 {
				connector = current.childPrefix + guideLast
				childPrefix = current.childPrefix + guideSpace
			}

			stack = append(stack, treeLine{
				node:        children[index],
				connector:   connector,
				childPrefix: childPrefix,
			})
		}
	}

	return out.Flush()
}

// TreeString renders tree into a string.
func TreeString(root *Node, painter Painter) string {
	var out strings.Builder
	_ = WriteTree(&out, root, painter)
	return out.String()
}

// paintSpans paints and joins spans of one line.
func paintSpans(spans []Span, painter Painter) string {
	var out strings.Builder
	for _, span := range spans {
		out.WriteString(painter.Paint(span.Style, span.Text))
	}

	return out.String()
}
