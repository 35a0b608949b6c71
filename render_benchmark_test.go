// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// BenchmarkParse measures ordered JSON decoding cost.
func BenchmarkParse(b *testing.B) {
	schemaBytes := readBenchmarkFile(b, filepath.Join("testdata", "config.schema.json"))

	b.ReportAllocs()
	b.SetBytes(int64(len(schemaBytes)))

	for i := 0; i < b.N; i++ {
		if _, err := Parse(schemaBytes); err != nil {
			b.Fatalf("Parse: %v", err)
		}
	}
}

// BenchmarkBuildTree measures tree construction for a parsed schema.
func BenchmarkBuildTree(b *testing.B) {
	root := parseBenchmarkFile(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = BuildTree(root, TreeOptions{})
	}
}

// BenchmarkWriteTreeThemed measures full tree rendering with lipgloss styles.
func BenchmarkWriteTreeThemed(b *testing.B) {
	tree := BuildTree(parseBenchmarkFile(b), TreeOptions{})
	theme := NewTheme(nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := WriteTree(io.Discard, tree, theme); err != nil {
			b.Fatalf("WriteTree: %v", err)
		}
	}
}

// BenchmarkWritePropertiesTable measures properties table rendering.
func BenchmarkWritePropertiesTable(b *testing.B) {
	root := parseBenchmarkFile(b)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := WritePropertiesTable(io.Discard, root, nil); err != nil {
			b.Fatalf("WritePropertiesTable: %v", err)
		}
	}
}

// BenchmarkBuildTreeWide measures tree construction for many sibling properties.
func BenchmarkBuildTreeWide(b *testing.B) {
	var source strings.Builder
	source.WriteString(`{"properties":{`)
	for i := 0; i < 2000; i++ {
		if i > 0 {
			source.WriteByte(',')
		}

		source.WriteString(`"p` + strconv.Itoa(i) + `":{"type":"string","description":"field"}`)
	}
	source.WriteString(`}}`)

	root, err := Parse([]byte(source.String()))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildTree(root, TreeOptions{})
	}
}

func TestFixtureRendersAllViews(t *testing.T) {
	t.Parallel()

	doc, err := LoadFile(filepath.Join("testdata", "config.schema.json"), LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	tree := TreeString(BuildTree(doc.Root, TreeOptions{}), nil)
	for _, want := range []string{
		"Service Config\nRuntime configuration for the demo service.\n",
		"├── type: object\n",
		"├── required: name, listen, storage\n",
		"│   ├── mode\n│   │   ├── type: string\n│   │   ├── enum: dev, staging, prod, canary, shadow...\n",
		"│   └── storage\n│       └── $ref: #/$defs/storage\n",
		"├── $defs\n│   └── storage\n",
		"│" + strings.Repeat(" ", 11) + "└── path\n" +
			"│" + strings.Repeat(" ", 15) + "├── type\n" +
			"│" + strings.Repeat(" ", 15) + "│   ├── string\n" +
			"│" + strings.Repeat(" ", 15) + "│   └── null\n",
		"└── examples\n    ├── [0]\n",
	} {
		if !strings.Contains(tree, want) {
			t.Fatalf("tree missing %q:\n%s", want, tree)
		}
	}

	if strings.Contains(tree, "$schema") || !strings.Contains(tree, "├── $id: https://example.com/config.schema.json\n") {
		t.Fatalf("root skip rules not applied:\n%s", tree)
	}

	var views strings.Builder
	if err := WriteOverview(&views, doc, nil); err != nil {
		t.Fatalf("WriteOverview: %v", err)
	}

	if err := WritePropertiesTable(&views, doc.Root, NewTheme(nil)); err != nil {
		t.Fatalf("WritePropertiesTable: %v", err)
	}

	if err := WriteExamples(&views, CollectExamples(doc.Root), NewTheme(nil)); err != nil {
		t.Fatalf("WriteExamples: %v", err)
	}

	if !strings.Contains(views.String(), "Minimal development config") {
		t.Fatalf("views missing example title:\n%s", views.String())
	}
}

func parseBenchmarkFile(b *testing.B) Value {
	b.Helper()

	root, err := Parse(readBenchmarkFile(b, filepath.Join("testdata", "config.schema.json")))
	if err != nil {
		b.Fatalf("Parse: %v", err)
	}

	return root
}

func readBenchmarkFile(b *testing.B, path string) []byte {
	b.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}

	return data
}
