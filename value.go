// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"bytes"
	"slices"
	"strings"

	json "github.com/goccy/go-json"
)

// Kind identifies which JSON type a Value holds.
type Kind uint8

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number kept as its source literal.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object with members in source order.
	KindObject
)

// String returns lowercase JSON type name.
func (kind Kind) String() string {
	switch kind {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	text    string
	boolean bool
	items   []Value
	members []Member
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean value.
func Bool(value bool) Value {
	return Value{kind: KindBool, boolean: value}
}

// Number returns a JSON number holding the literal text.
func Number(literal string) Value {
	return Value{kind: KindNumber, text: literal}
}

// String returns a JSON string value.
func String(value string) Value {
	return Value{kind: KindString, text: value}
}

// Array returns a JSON array value.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: items}
}

// Object returns a JSON object value. Duplicate keys keep the first position
// and the last value.
func Object(members ...Member) Value {
	out := Value{kind: KindObject, members: make([]Member, 0, len(members))}
	for _, member := range members {
		out.members = setMember(out.members, member.Key, member.Value)
	}

	return out
}

// Kind reports the JSON type of the value.
func (value Value) Kind() Kind {
	return value.kind
}

// IsContainer reports whether value is an object or an array.
func (value Value) IsContainer() bool {
	return value.kind == KindObject || value.kind == KindArray
}

// Str returns string content and true for string values.
func (value Value) Str() (string, bool) {
	if value.kind != KindString {
		return "", false
	}

	return value.text, true
}

// Literal returns number literal and true for number values.
func (value Value) Literal() (string, bool) {
	if value.kind != KindNumber {
		return "", false
	}

	return value.text, true
}

// Boolean returns bool content and true for boolean values.
func (value Value) Boolean() (bool, bool) {
	if value.kind != KindBool {
		return false, false
	}

	return value.boolean, true
}

// Items returns array elements, nil for other kinds.
func (value Value) Items() []Value {
	if value.kind != KindArray {
		return nil
	}

	return value.items
}

// Members returns object members in source order, nil for other kinds.
func (value Value) Members() []Member {
	if value.kind != KindObject {
		return nil
	}

	return value.members
}

// Len returns number of elements or members for containers and zero otherwise.
func (value Value) Len() int {
	switch value.kind {
	case KindArray:
		return len(value.items)
	case KindObject:
		return len(value.members)
	default:
		return 0
	}
}

// Get returns object member by key.
func (value Value) Get(key string) (Value, bool) {
	for _, member := range value.Members() {
		if member.Key == key {
			return member.Value, true
		}
	}

	return Value{}, false
}

// Has reports whether object contains key.
func (value Value) Has(key string) bool {
	_, ok := value.Get(key)
	return ok
}

// GetString returns object member text when it is a string.
func (value Value) GetString(key string) (string, bool) {
	member, ok := value.Get(key)
	if !ok {
		return "", false
	}

	return member.Str()
}

// Without returns a copy of object without the listed keys.
func (value Value) Without(keys ...string) Value {
	if value.kind != KindObject {
		return value
	}

	out := Value{kind: KindObject, members: make([]Member, 0, len(value.members))}
	for _, member := range value.members {
		if slices.Contains(keys, member.Key) {
			continue
		}

		out.members = append(out.members, member)
	}

	return out
}

// Text renders value for display: strings raw, scalars as JSON literals and
// containers as compact JSON.
func (value Value) Text() string {
	switch value.kind {
	case KindString:
		return value.text
	case KindNumber:
		return value.text
	case KindBool:
		if value.boolean {
			return "true"
		}

		return "false"
	case KindNull:
		return "null"
	default:
		return string(value.compactJSON())
	}
}

// MarshalJSON encodes value as compact JSON preserving member order.
func (value Value) MarshalJSON() ([]byte, error) {
	return value.compactJSON(), nil
}

// compactJSON writes value as single-line JSON.
func (value Value) compactJSON() []byte {
	var out strings.Builder
	writeCompactJSON(&out, value)
	return []byte(out.String())
}

// writeCompactJSON appends compact JSON text for value.
func writeCompactJSON(out *strings.Builder, value Value) {
	switch value.kind {
	case KindObject:
		out.WriteByte('{')
		for index, member := range value.members {
			if index > 0 {
				out.WriteByte(',')
			}

			out.WriteString(quoteJSON(member.Key))
			out.WriteByte(':')
			writeCompactJSON(out, member.Value)
		}
		out.WriteByte('}')
	case KindArray:
		out.WriteByte('[')
		for index, item := range value.items {
			if index > 0 {
				out.WriteByte(',')
			}

			writeCompactJSON(out, item)
		}
		out.WriteByte(']')
	case KindString:
		out.WriteString(quoteJSON(value.text))
	default:
		out.WriteString(value.Text())
	}
}

// quoteJSON returns JSON string literal without HTML escaping.
func quoteJSON(text string) string {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(text); err != nil {
		return `"` + strings.ReplaceAll(text, `"`, `\"`) + `"`
	}

	return strings.TrimSuffix(out.String(), "\n")
}

// setMember replaces value of existing key or appends new member.
func setMember(members []Member, key string, value Value) []Member {
	for index := range members {
		if members[index].Key == key {
			members[index].Value = value
			return members
		}
	}

	return append(members, Member{Key: key, Value: value})
}
