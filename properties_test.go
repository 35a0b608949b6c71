// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"reflect"
	"strings"
	"testing"
)

const propertiesFixture = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "description": "Display name"},
		"mode": {"enum": ["safe", "fast"]},
		"port": {"type": ["integer", "null"]}
	}
}`

func TestPropertyRows(t *testing.T) {
	t.Parallel()

	rows, ok := PropertyRows(mustParse(t, propertiesFixture))
	if !ok {
		t.Fatal("properties not found")
	}

	want := []PropertyRow{
		{Name: "name", Type: "string", Required: true, Description: "Display name"},
		{Name: "mode", Type: "any", Enum: []string{"safe", "fast"}},
		{Name: "port", Type: "integer, null"},
	}

	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
}

func TestPropertyRowsDescriptionLimit(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("d", propertyDescriptionLimit+10)
	root := Object(Member{Key: "properties", Value: Object(
		Member{Key: "a", Value: Object(Member{Key: "description", Value: String(long)})},
	)})

	rows, _ := PropertyRows(root)
	got := rows[0].Description
	if len([]rune(got)) != propertyDescriptionLimit || !strings.HasSuffix(got, ellipsis) {
		t.Fatalf("description length = %d", len([]rune(got)))
	}
}

func TestWritePropertiesTable(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if err := WritePropertiesTable(&out, mustParse(t, propertiesFixture), nil); err != nil {
		t.Fatalf("WritePropertiesTable: %v", err)
	}

	text := out.String()
	for _, want := range []string{"Property", "Type", "Required", "Description", "name", "Display name", "enum: safe, fast", "✓", "✗"} {
		if !strings.Contains(text, want) {
			t.Fatalf("table missing %q:\n%s", want, text)
		}
	}

	if strings.Index(text, "name") > strings.Index(text, "mode") || strings.Index(text, "mode") > strings.Index(text, "port") {
		t.Fatalf("rows out of declaration order:\n%s", text)
	}

	if strings.Contains(text, "PROPERTY") || strings.Contains(text, "DESCRIPTION") {
		t.Fatalf("headers were reformatted:\n%s", text)
	}
}

func TestWritePropertiesList(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	if err := WritePropertiesList(&out, mustParse(t, propertiesFixture), nil); err != nil {
		t.Fatalf("WritePropertiesList: %v", err)
	}

	want := strings.Join([]string{
		"Properties Overview",
		"",
		"name",
		"  Type: string",
		"  Required: ✓",
		"  Description: Display name",
		"",
		"mode",
		"  Type: any",
		"  Enum: safe, fast",
		"  Required: ✗",
		"",
		"port",
		"  Type: integer, null",
		"  Required: ✗",
		"",
		"",
	}, "\n")

	if out.String() != want {
		t.Fatalf("list output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestWritePropertiesNoProperties(t *testing.T) {
	t.Parallel()

	for name, write := range map[string]func(*strings.Builder) error{
		"table": func(out *strings.Builder) error { return WritePropertiesTable(out, Object(), nil) },
		"list":  func(out *strings.Builder) error { return WritePropertiesList(out, Object(), nil) },
	} {
		var out strings.Builder
		if err := write(&out); err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		if strings.TrimSpace(out.String()) != noPropertiesText {
			t.Fatalf("%s output = %q", name, out.String())
		}
	}
}
