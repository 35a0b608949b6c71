// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"io"
	"strconv"
)

// WriteSchemaMenu writes numbered table of discovered schemas.
func WriteSchemaMenu(w io.Writer, files []SchemaFile, cwd string, painter Painter) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n\n", painter.Paint(StyleHeading, "Available JSON Schemas:")); err != nil {
		return err
	}

	table := newTable(w)
	table.Header("#", "Schema File", "Size")
	for index, file := range files {
		row := []string{
			painter.Paint(StyleKey, strconv.Itoa(index+1)),
			painter.Paint(StyleFieldsKey, DisplayPath(file.Path, cwd)),
			painter.Paint(StyleEnumValue, FormatSize(file.Size)),
		}

		if err := table.Append(row); err != nil {
			return fmt.Errorf("%w: %w", ErrRenderTable, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("%w: %w", ErrRenderTable, err)
	}

	return nil
}
