// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

/*
Package schemaview renders JSON Schema documents for terminal display.

Documents are parsed into an ordered Value so every view keeps the member
order of the source file. Nothing is validated and references such as $ref
or $defs are shown as they are written.

Load a schema and print its tree:

	doc, err := schemaview.LoadFile("docs/config.schema.json", schemaview.LoadOptions{})
	if err != nil {
		return err
	}

	tree := schemaview.BuildTree(doc.Root, schemaview.TreeOptions{})
	if err := schemaview.WriteTree(os.Stdout, tree, schemaview.PlainPainter{}); err != nil {
		return err
	}

Discover schemas and select one by its menu number:

	files, err := schemaview.Discover("docs")
	if err != nil {
		return err
	}

	file, err := schemaview.SelectSchema(files, "2")
	if err != nil {
		return err
	}

	fmt.Println(file.Path)

Colour output through a lipgloss renderer bound to the destination:

	theme := schemaview.NewTheme(lipgloss.NewRenderer(os.Stdout))
	fmt.Print(schemaview.TreeString(tree, theme))

Other views:

	_ = schemaview.WriteOverview(os.Stdout, doc, theme)
	_ = schemaview.WritePropertiesTable(os.Stdout, doc.Root, theme)
	_ = schemaview.WriteExamples(os.Stdout, schemaview.CollectExamples(doc.Root), theme)
	_ = schemaview.WritePrettyJSON(os.Stdout, doc.Root, theme, true)
*/
package schemaview
