// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	// propertyDescriptionLimit caps property description length including ellipsis.
	propertyDescriptionLimit = 3000
	// propertyDescriptionWidth wraps table description column.
	propertyDescriptionWidth = 60
	// propertyTypeFallback is shown when property declares no type.
	propertyTypeFallback = "any"
	// noPropertiesText is shown when schema root has no properties.
	noPropertiesText = "No properties defined"
)

// PropertyRow is one root property summary.
type PropertyRow struct {
	Name        string
	Type        string
	Enum        []string
	Required    bool
	Description string
}

// PropertyRows flattens root properties in declaration order.
// The second result is false when root has no properties member.
func PropertyRows(root Value) ([]PropertyRow, bool) {
	properties, ok := root.Get("properties")
	if !ok {
		return nil, false
	}

	required := requiredNames(root)
	rows := make([]PropertyRow, 0, properties.Len())
	for _, member := range properties.Members() {
		info := member.Value
		row := PropertyRow{
			Name:     member.Key,
			Type:     propertyType(info),
			Required: required[member.Key],
		}

		if enum, ok := info.Get("enum"); ok {
			for _, item := range enumValues(enum) {
				row.Enum = append(row.Enum, item.Text())
			}
		}

		if description, ok := info.Get("description"); ok {
			row.Description = truncateText(description.Text(), propertyDescriptionLimit, propertyDescriptionLimit-len(ellipsis))
		}

		rows = append(rows, row)
	}

	return rows, true
}

// WritePropertiesTable writes root properties as a bordered table.
func WritePropertiesTable(w io.Writer, root Value, painter Painter) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	rows, ok := PropertyRows(root)
	if !ok {
		_, err := fmt.Fprintln(w, painter.Paint(StyleWarning, noPropertiesText))
		return err
	}

	table := newTable(w)
	table.Header("Property", "Type", "Required", "Description")
	for _, row := range rows {
		typeText := row.Type
		if len(row.Enum) > 0 {
			typeText += "\nenum: " + strings.Join(row.Enum, ", ")
		}

		cells := []string{
			painter.Paint(StyleKey, row.Name),
			painter.Paint(StyleFieldsKey, wrapText(typeText, propertyDescriptionWidth/2)),
			requiredMark(row.Required, painter),
			wrapText(row.Description, propertyDescriptionWidth),
		}

		if err := table.Append(cells); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderTable, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderTable, err)
	}

	return nil
}

// WritePropertiesList writes root properties as indented text blocks.
func WritePropertiesList(w io.Writer, root Value, painter Painter) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	rows, ok := PropertyRows(root)
	if !ok {
		_, err := fmt.Fprintln(w, painter.Paint(StyleWarning, noPropertiesText))
		return err
	}

	var out bytes.Buffer
	out.WriteString(painter.Paint(StyleHeading, "Properties Overview"))
	out.WriteString("\n\n")

	for _, row := range rows {
		out.WriteString(painter.Paint(StyleHeading, row.Name))
		out.WriteByte('\n')
		out.WriteString("  Type: " + painter.Paint(StyleFieldsKey, row.Type) + "\n")
		if len(row.Enum) > 0 {
			out.WriteString("  Enum: " + painter.Paint(StyleEnumValue, strings.Join(row.Enum, ", ")) + "\n")
		}

		out.WriteString("  Required: " + requiredMark(row.Required, painter) + "\n")
		if row.Description != "" {
			out.WriteString("  Description: " + row.Description + "\n")
		}

		out.WriteByte('\n')
	}

	_, err := w.Write(out.Bytes())
	return err
}

// newTable creates left-aligned bordered table writer.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.On, Right: tw.On, Top: tw.On, Bottom: tw.On},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.On, BetweenRows: tw.On},
			},
		}),
	)
}

// propertyType renders declared type or fallback marker.
func propertyType(info Value) string {
	value, ok := info.Get("type")
	if !ok {
		return propertyTypeFallback
	}

	if value.Kind() == KindArray {
		parts := make([]string, 0, value.Len())
		for _, item := range value.Items() {
			parts = append(parts, item.Text())
		}

		return strings.Join(parts, ", ")
	}

	return value.Text()
}

// requiredNames collects root required list as a set.
func requiredNames(root Value) map[string]bool {
	out := make(map[string]bool)
	required, ok := root.Get("required")
	if !ok {
		return out
	}

	for _, item := range required.Items() {
		out[item.Text()] = true
	}

	return out
}

// enumValues returns array items or the value itself for scalar enums.
func enumValues(enum Value) []Value {
	if enum.Kind() == KindArray {
		return enum.Items()
	}

	return []Value{enum}
}

// requiredMark renders required flag as check or cross.
func requiredMark(required bool, painter Painter) string {
	if required {
		return painter.Paint(StyleCheck, "✓")
	}

	return painter.Paint(StyleCross, "✗")
}
