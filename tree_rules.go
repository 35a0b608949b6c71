// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"strings"
	"unicode/utf8"
)

const (
	// ellipsis marks truncated content.
	ellipsis = "..."
	// listPreviewLimit caps values shown for required and enum leaves.
	listPreviewLimit = 5
	// rootDescriptionLimit caps root description length including ellipsis.
	rootDescriptionLimit = 100
	// descriptionLimit caps nested description leaves before ellipsis.
	descriptionLimit = 500
	// scalarLimit caps generic scalar leaves including ellipsis.
	scalarLimit = 100
	// defaultTreeTitle is the root label when document has no title.
	defaultTreeTitle = "JSON Schema"
)

// rootSkippedKeys are already shown in the root label.
var rootSkippedKeys = map[string]struct{}{
	"title":       {},
	"description": {},
	"$schema":     {},
}

// branchRule describes how a container-valued structural key opens its branch.
type branchRule struct {
	style      Style
	annotation string
}

// branchRules maps structural keys to branch label styling.
var branchRules = map[string]branchRule{
	"properties":  {style: StyleFieldsKey, annotation: "(fields)"},
	"examples":    {style: StyleExamplesKey},
	"items":       {style: StyleItemsKey, annotation: "(array items)"},
	"definitions": {style: StyleDefinitionsKey},
	"$defs":       {style: StyleDefinitionsKey},
}

// summaryRules maps container keys rendered as one preview leaf.
var summaryRules = map[string][2]Style{
	"required": {StyleRequiredKey, StyleRequiredValue},
	"enum":     {StyleEnumKey, StyleEnumValue},
}

// scalarRule describes leaf styling for one scalar-valued key.
type scalarRule struct {
	key      Style
	value    Style
	limit    int
	keep     int
	truncate bool
}

// scalarRules maps scalar keys to leaf styling and truncation.
var scalarRules = map[string]scalarRule{
	"type":        {key: StyleTypeKey, value: StyleTypeValue},
	"description": {key: StyleDescriptionKey, value: StyleDescriptionValue, limit: descriptionLimit, keep: descriptionLimit, truncate: true},
	"default":     {key: StyleDefaultKey, value: StyleDefaultValue},
	"format":      {key: StyleFormatKey, value: StyleFormatValue},
	"pattern":     {key: StylePatternKey, value: StylePatternValue},
	"minimum":     {key: StyleBoundKey, value: StyleBoundValue},
	"maximum":     {key: StyleBoundKey, value: StyleBoundValue},
	"minLength":   {key: StyleBoundKey, value: StyleBoundValue},
	"maxLength":   {key: StyleBoundKey, value: StyleBoundValue},
	"minItems":    {key: StyleBoundKey, value: StyleBoundValue},
	"maxItems":    {key: StyleBoundKey, value: StyleBoundValue},
}

// genericScalarRule applies to scalar keys without a dedicated rule.
var genericScalarRule = scalarRule{
	key:      StyleKey,
	value:    StyleValue,
	limit:    scalarLimit,
	keep:     scalarLimit - len(ellipsis),
	truncate: true,
}

// branchLabel builds label for a container-valued key.
func branchLabel(key string) []Span {
	rule, ok := branchRules[key]
	if !ok {
		return []Span{{Text: key, Style: StyleBranchKey}}
	}

	label := []Span{{Text: key, Style: rule.style}}
	if rule.annotation != "" {
		label = append(label,
			Span{Text: " ", Style: StylePlain},
			Span{Text: rule.annotation, Style: StyleAnnotation},
		)
	}

	return label
}

// summaryLabel builds preview leaf for required and enum arrays.
func summaryLabel(key string, value Value, styles [2]Style) []Span {
	return []Span{
		{Text: key, Style: styles[0]},
		{Text: ": ", Style: StylePlain},
		{Text: previewList(value), Style: styles[1]},
	}
}

// scalarLabel builds key/value leaf for a scalar member.
func scalarLabel(key string, value Value) []Span {
	rule, ok := scalarRules[key]
	if !ok {
		rule = genericScalarRule
	}

	text := value.Text()
	if rule.truncate {
		text = truncateText(text, rule.limit, rule.keep)
	}

	return []Span{
		{Text: key, Style: rule.key},
		{Text: ": ", Style: StylePlain},
		{Text: text, Style: rule.value},
	}
}

// elementLabel builds leaf for a scalar array element.
func elementLabel(value Value) []Span {
	return []Span{{
		Text:  truncateText(value.Text(), scalarLimit, scalarLimit-len(ellipsis)),
		Style: StyleElement,
	}}
}

// previewList joins first listPreviewLimit values and marks the rest with ellipsis.
// Objects contribute their keys.
func previewList(value Value) string {
	items := value.Items()
	if value.Kind() == KindObject {
		items = make([]Value, 0, value.Len())
		for _, member := range value.Members() {
			items = append(items, String(member.Key))
		}
	}

	shown := items
	if len(shown) > listPreviewLimit {
		shown = shown[:listPreviewLimit]
	}

	parts := make([]string, 0, len(shown))
	for _, item := range shown {
		parts = append(parts, item.Text())
	}

	text := strings.Join(parts, ", ")
	if len(items) > listPreviewLimit {
		text += ellipsis
	}

	return text
}

// truncateText cuts text to keep runes plus ellipsis when it exceeds limit runes.
func truncateText(text string, limit, keep int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	runes := []rune(text)
	return string(runes[:keep]) + ellipsis
}
