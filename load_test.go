// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParsePreservesMemberOrder(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `{"zeta":1,"alpha":{"b":true,"a":null},"mid":[3,"x"]}`)
	keys := memberKeys(value)
	if strings.Join(keys, ",") != "zeta,alpha,mid" {
		t.Fatalf("member order = %v", keys)
	}

	alpha, _ := value.Get("alpha")
	if strings.Join(memberKeys(alpha), ",") != "b,a" {
		t.Fatalf("nested member order = %v", memberKeys(alpha))
	}

	if got := value.Text(); got != `{"zeta":1,"alpha":{"b":true,"a":null},"mid":[3,"x"]}` {
		t.Fatalf("compact text = %s", got)
	}
}

func TestParseKeepsNumberLiterals(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `[1, 1.50, -2e10, 12345678901234567890]`)
	want := []string{"1", "1.50", "-2e10", "12345678901234567890"}
	for index, item := range value.Items() {
		literal, ok := item.Literal()
		if !ok || literal != want[index] {
			t.Fatalf("item %d literal = %q, want %q", index, literal, want[index])
		}
	}
}

func TestParseDuplicateKeysKeepFirstPositionLastValue(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `{"a":1,"b":2,"a":3}`)
	if strings.Join(memberKeys(value), ",") != "a,b" {
		t.Fatalf("member keys = %v", memberKeys(value))
	}

	a, _ := value.Get("a")
	if a.Text() != "3" {
		t.Fatalf("a = %s, want 3", a.Text())
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	cases := []string{
		``,
		`   `,
		`{`,
		`{"a":}`,
		`{"a":1}{"b":2}`,
		`[1,2,]`,
		`nope`,
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			if _, err := Parse([]byte(input)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("Parse(%q) error = %v, want ErrMalformed", input, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "schema.json", `{"title":"Demo"}`)
	doc, err := LoadFile(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Path != path || doc.Size != int64(len(`{"title":"Demo"}`)) || doc.Repaired {
		t.Fatalf("unexpected document: %+v", doc)
	}

	if title, _ := doc.Root.GetString("title"); title != "Demo" {
		t.Fatalf("title = %q", title)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := LoadFile(path, LoadOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	if !strings.Contains(err.Error(), "missing.json") {
		t.Fatalf("error does not name file: %v", err)
	}
}

func TestLoadFileMalformedWithoutRepair(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "broken.json", `{"title": "Demo",}`)
	_, err := LoadFile(path, LoadOptions{})
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("error = %v, want ErrMalformed", err)
	}
}

func TestLoadFileRepair(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "broken.json", `{"title": "Demo", "required": ["a", "b",],}`)
	doc, err := LoadFile(path, LoadOptions{Repair: true})
	if err != nil {
		t.Fatalf("LoadFile with repair: %v", err)
	}

	if !doc.Repaired {
		t.Fatal("document should be marked repaired")
	}

	required, _ := doc.Root.Get("required")
	if required.Len() != 2 {
		t.Fatalf("required = %s", required.Text())
	}
}

func TestLoadFileValidNotMarkedRepaired(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "ok.json", `{"a":1}`)
	doc, err := LoadFile(path, LoadOptions{Repair: true})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if doc.Repaired {
		t.Fatal("valid document marked repaired")
	}
}

func TestValueWithout(t *testing.T) {
	t.Parallel()

	value := mustParse(t, `{"a":1,"description":"x","b":2}`)
	got := value.Without("description")
	if strings.Join(memberKeys(got), ",") != "a,b" {
		t.Fatalf("Without keys = %v", memberKeys(got))
	}

	if !value.Has("description") {
		t.Fatal("Without modified source value")
	}
}

func TestValueTextEscaping(t *testing.T) {
	t.Parallel()

	value := Object(Member{Key: "html", Value: String(`<a href="x">`)})
	if got := value.Text(); got != `{"html":"<a href=\"x\">"}` {
		t.Fatalf("Text = %s", got)
	}

	pattern := Array(String(`^<[a-z]+>&$`), String("tab\there"))
	if got := pattern.Text(); got != `["^<[a-z]+>&$","tab\there"]` {
		t.Fatalf("Text = %s", got)
	}
}

func memberKeys(value Value) []string {
	keys := make([]string, 0, value.Len())
	for _, member := range value.Members() {
		keys = append(keys, member.Key)
	}

	return keys
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %q: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %q: %v", path, err)
	}

	return path
}
