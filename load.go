// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/kaptinlin/jsonrepair"
)

// Document is one loaded schema file.
type Document struct {
	// Path is the file path the document was loaded from.
	Path string
	// Size is the file size in bytes.
	Size int64
	// Root is the parsed JSON value.
	Root Value
	// Repaired reports whether content was fixed by JSON repair before parsing.
	Repaired bool
}

// LoadOptions configures schema file loading.
type LoadOptions struct {
	// Repair enables JSON repair fallback for malformed content.
	Repair bool
}

// LoadFile reads and parses schema file.
func LoadFile(path string, opt LoadOptions) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("file %q %w", path, ErrNotFound)
		}

		return Document{}, fmt.Errorf("%w %q: %w", ErrReadSchemaFile, path, err)
	}

	doc := Document{
		Path: path,
		Size: int64(len(data)),
	}

	root, err := Parse(data)
	if err == nil {
		doc.Root = root
		return doc, nil
	}

	if !opt.Repair {
		return Document{}, fmt.Errorf("%q: %w", path, err)
	}

	root, repairErr := ParseRepaired(data)
	if repairErr != nil {
		return Document{}, fmt.Errorf("%q: %w (%w)", path, err, repairErr)
	}

	doc.Root = root
	doc.Repaired = true
	return doc, nil
}

// ParseRepaired runs JSON repair over data and parses the result.
func ParseRepaired(data []byte) (Value, error) {
	repaired, err := jsonrepair.JSONRepair(string(data))
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrRepairSchema, err)
	}

	value, err := Parse([]byte(repaired))
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrRepairSchema, err)
	}

	return value, nil
}

// Parse decodes JSON bytes into an ordered Value.
func Parse(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	value, err := decodeValue(decoder)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}

	return value, nil
}

// decodeValue reads one complete value from token stream.
func decodeValue(decoder *json.Decoder) (Value, error) {
	token, err := decoder.Token()
	if err != nil {
		return Value{}, err
	}

	switch typed := token.(type) {
	case json.Delim:
		switch typed {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", rune(typed))
		}
	case string:
		return String(typed), nil
	case json.Number:
		return Number(string(typed)), nil
	case float64:
		return Number(strconv.FormatFloat(typed, 'g', -1, 64)), nil
	case bool:
		return Bool(typed), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", typed)
	}
}

// decodeObject reads object members until closing delimiter.
func decodeObject(decoder *json.Decoder) (Value, error) {
	members := make([]Member, 0, 8)
	positions := make(map[string]int)

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return Value{}, err
		}

		key, ok := token.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be string, got %v", token)
		}

		value, err := decodeValue(decoder)
		if err != nil {
			return Value{}, err
		}

		if index, exists := positions[key]; exists {
			members[index].Value = value
			continue
		}

		positions[key] = len(members)
		members = append(members, Member{Key: key, Value: value})
	}

	if err := expectDelim(decoder, '}'); err != nil {
		return Value{}, err
	}

	return Value{kind: KindObject, members: members}, nil
}

// decodeArray reads array elements until closing delimiter.
func decodeArray(decoder *json.Decoder) (Value, error) {
	items := make([]Value, 0, 4)
	for decoder.More() {
		value, err := decodeValue(decoder)
		if err != nil {
			return Value{}, err
		}

		items = append(items, value)
	}

	if err := expectDelim(decoder, ']'); err != nil {
		return Value{}, err
	}

	return Value{kind: KindArray, items: items}, nil
}

// expectDelim consumes closing delimiter token.
func expectDelim(decoder *json.Decoder, want json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		return err
	}

	if delim, ok := token.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", rune(want), token)
	}

	return nil
}
