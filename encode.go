// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// jsonIndent is one nesting level in pretty JSON output.
const jsonIndent = "  "

// PrettyJSON returns value as 2-space indented JSON in source member order.
func PrettyJSON(value Value, painter Painter) string {
	if painter == nil {
		painter = PlainPainter{}
	}

	var out strings.Builder
	writePrettyJSON(&out, value, painter, 0)
	return out.String()
}

// WritePrettyJSON writes pretty JSON, optionally prefixed with line numbers.
func WritePrettyJSON(w io.Writer, value Value, painter Painter, lineNumbers bool) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	text := PrettyJSON(value, painter)
	if !lineNumbers {
		_, err := io.WriteString(w, text+"\n")
		return err
	}

	lines := strings.Split(text, "\n")
	width := len(strconv.Itoa(len(lines)))

	var out bytes.Buffer
	for index, line := range lines {
		number := fmt.Sprintf("%*d ", width, index+1)
		out.WriteString(painter.Paint(StyleLineNumber, number))
		out.WriteString(line)
		out.WriteByte('\n')
	}

	_, err := w.Write(out.Bytes())
	return err
}

// writePrettyJSON appends styled pretty JSON for value at depth.
func writePrettyJSON(out *strings.Builder, value Value, painter Painter, depth int) {
	switch value.Kind() {
	case KindObject:
		members := value.Members()
		if len(members) == 0 {
			out.WriteString(painter.Paint(StyleJSONPunct, "{}"))
			return
		}

		out.WriteString(painter.Paint(StyleJSONPunct, "{"))
		for index, member := range members {
			if index > 0 {
				out.WriteString(painter.Paint(StyleJSONPunct, ","))
			}

			out.WriteByte('\n')
			out.WriteString(strings.Repeat(jsonIndent, depth+1))
			out.WriteString(painter.Paint(StyleJSONKey, quoteJSON(member.Key)))
			out.WriteString(painter.Paint(StyleJSONPunct, ":"))
			out.WriteByte(' ')
			writePrettyJSON(out, member.Value, painter, depth+1)
		}

		out.WriteByte('\n')
		out.WriteString(strings.Repeat(jsonIndent, depth))
		out.WriteString(painter.Paint(StyleJSONPunct, "}"))
	case KindArray:
		items := value.Items()
		if len(items) == 0 {
			out.WriteString(painter.Paint(StyleJSONPunct, "[]"))
			return
		}

		out.WriteString(painter.Paint(StyleJSONPunct, "["))
		for index, item := range items {
			if index > 0 {
				out.WriteString(painter.Paint(StyleJSONPunct, ","))
			}

			out.WriteByte('\n')
			out.WriteString(strings.Repeat(jsonIndent, depth+1))
			writePrettyJSON(out, item, painter, depth+1)
		}

		out.WriteByte('\n')
		out.WriteString(strings.Repeat(jsonIndent, depth))
		out.WriteString(painter.Paint(StyleJSONPunct, "]"))
	case KindString:
		out.WriteString(painter.Paint(StyleJSONString, quoteJSON(value.text)))
	case KindNumber:
		out.WriteString(painter.Paint(StyleJSONNumber, value.text))
	case KindBool:
		out.WriteString(painter.Paint(StyleJSONBool, value.Text()))
	default:
		out.WriteString(painter.Paint(StyleJSONNull, "null"))
	}
}

// EncodeYAML returns value as YAML document in source member order.
func EncodeYAML(value Value) ([]byte, error) {
	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{yamlNodeForValue(value)},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeYAML, err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeYAML, err)
	}

	return out.Bytes(), nil
}

// yamlNodeForValue builds yaml.Node tree from ordered JSON value.
func yamlNodeForValue(value Value) *yaml.Node {
	switch value.Kind() {
	case KindObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, member := range value.Members() {
			node.Content = append(node.Content, yamlScalarNode("!!str", member.Key), yamlNodeForValue(member.Value))
		}

		return node
	case KindArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range value.Items() {
			node.Content = append(node.Content, yamlNodeForValue(item))
		}

		return node
	case KindString:
		return yamlScalarNode("!!str", value.text)
	case KindNumber:
		if _, err := strconv.ParseInt(value.text, 10, 64); err == nil {
			return yamlScalarNode("!!int", value.text)
		}

		return yamlScalarNode("!!float", value.text)
	case KindBool:
		return yamlScalarNode("!!bool", value.Text())
	default:
		return yamlScalarNode("!!null", "null")
	}
}

// yamlScalarNode creates one scalar yaml.Node with explicit tag.
func yamlScalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: value,
	}
}
