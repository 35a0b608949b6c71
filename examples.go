// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"io"
	"strconv"
	"strings"
)

const (
	// exampleSeparatorWidth is the width of the rule drawn around example titles.
	exampleSeparatorWidth = 60
	// exampleDescriptionKey is lifted from object examples into the title.
	exampleDescriptionKey = "description"
)

// Example is one schema example prepared for display and copying.
type Example struct {
	Title string
	Data  Value
}

// CollectExamples extracts root examples. Object examples lose their
// description member, which becomes the example title.
func CollectExamples(root Value) []Example {
	examples, ok := root.Get("examples")
	if !ok {
		return nil
	}

	items := examples.Items()
	if examples.Kind() != KindArray {
		items = []Value{examples}
	}

	out := make([]Example, 0, len(items))
	for index, item := range items {
		example := Example{
			Title: "Example " + strconv.Itoa(index+1),
			Data:  item,
		}

		if item.Kind() == KindObject {
			if description, ok := item.Get(exampleDescriptionKey); ok {
				example.Title = description.Text()
			}

			example.Data = item.Without(exampleDescriptionKey)
		}

		out = append(out, example)
	}

	return out
}

// HasExamples reports whether root declares an examples member.
func HasExamples(root Value) bool {
	return root.Has("examples")
}

// JSON returns example data as pretty JSON without styling.
func (example Example) JSON() string {
	return PrettyJSON(example.Data, nil)
}

// ExamplesClipboardText returns text copied by the copy-all action:
// the only example itself, or a JSON array of all examples.
func ExamplesClipboardText(examples []Example) string {
	switch len(examples) {
	case 0:
		return ""
	case 1:
		return examples[0].JSON()
	default:
		items := make([]Value, 0, len(examples))
		for _, example := range examples {
			items = append(items, example.Data)
		}

		return PrettyJSON(Array(items...), nil)
	}
}

// WriteExamples writes numbered examples with separators and pretty JSON.
func WriteExamples(w io.Writer, examples []Example, painter Painter) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	var out bytes.Buffer
	separator := painter.Paint(StyleSeparator, strings.Repeat("─", exampleSeparatorWidth))
	for index, example := range examples {
		out.WriteString(separator)
		out.WriteByte('\n')
		out.WriteString(painter.Paint(StyleExampleTitle, "["+strconv.Itoa(index+1)+"] "+sanitizeText(example.Title)))
		out.WriteByte('\n')
		out.WriteString(separator)
		out.WriteString("\n\n")
		out.WriteString(PrettyJSON(example.Data, painter))
		out.WriteString("\n\n")
	}

	_, err := w.Write(out.Bytes())
	return err
}
