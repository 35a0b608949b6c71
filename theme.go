// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import "github.com/charmbracelet/lipgloss"

// Style is a styling hint attached to rendered text.
type Style uint8

const (
	// StylePlain leaves text unstyled.
	StylePlain Style = iota
	// StyleGuide styles tree guide glyphs.
	StyleGuide
	// StyleRootTitle styles the root label title line.
	StyleRootTitle
	// StyleRootDescription styles the root label description lines.
	StyleRootDescription
	// StyleFieldsKey styles the properties branch label.
	StyleFieldsKey
	// StyleAnnotation styles parenthesized label annotations.
	StyleAnnotation
	// StyleRequiredKey styles the required leaf key.
	StyleRequiredKey
	// StyleRequiredValue styles the required leaf preview.
	StyleRequiredValue
	// StyleEnumKey styles the enum leaf key.
	StyleEnumKey
	// StyleEnumValue styles the enum leaf preview.
	StyleEnumValue
	// StyleExamplesKey styles the examples branch label.
	StyleExamplesKey
	// StyleItemsKey styles the items branch label.
	StyleItemsKey
	// StyleDefinitionsKey styles definitions branch labels.
	StyleDefinitionsKey
	// StyleBranchKey styles combinator branch labels.
	StyleBranchKey
	// StyleTypeKey styles the type leaf key.
	StyleTypeKey
	// StyleTypeValue styles the type leaf value.
	StyleTypeValue
	// StyleDescriptionKey styles the description leaf key.
	StyleDescriptionKey
	// StyleDescriptionValue styles the description leaf value.
	StyleDescriptionValue
	// StyleDefaultKey styles the default leaf key.
	StyleDefaultKey
	// StyleDefaultValue styles the default leaf value.
	StyleDefaultValue
	// StyleFormatKey styles the format leaf key.
	StyleFormatKey
	// StyleFormatValue styles the format leaf value.
	StyleFormatValue
	// StyleBoundKey styles numeric and length bound keys.
	StyleBoundKey
	// StyleBoundValue styles numeric and length bound values.
	StyleBoundValue
	// StylePatternKey styles the pattern leaf key.
	StylePatternKey
	// StylePatternValue styles the pattern leaf value.
	StylePatternValue
	// StyleKey styles any other leaf key.
	StyleKey
	// StyleValue styles any other leaf value.
	StyleValue
	// StyleIndex styles array element indexes.
	StyleIndex
	// StyleElement styles scalar array elements.
	StyleElement
	// StyleHeading styles section headings.
	StyleHeading
	// StyleLabel styles field labels in overview and lists.
	StyleLabel
	// StyleHint styles usage hints.
	StyleHint
	// StyleBanner styles the report banner.
	StyleBanner
	// StyleError styles error messages.
	StyleError
	// StyleWarning styles warnings.
	StyleWarning
	// StyleSeparator styles separator rules.
	StyleSeparator
	// StyleExampleTitle styles example headings.
	StyleExampleTitle
	// StyleCheck styles the required check mark.
	StyleCheck
	// StyleCross styles the optional cross mark.
	StyleCross
	// StyleLineNumber styles raw JSON line numbers.
	StyleLineNumber
	// StyleJSONKey styles raw JSON object keys.
	StyleJSONKey
	// StyleJSONString styles raw JSON strings.
	StyleJSONString
	// StyleJSONNumber styles raw JSON numbers.
	StyleJSONNumber
	// StyleJSONBool styles raw JSON booleans.
	StyleJSONBool
	// StyleJSONNull styles raw JSON null.
	StyleJSONNull
	// StyleJSONPunct styles raw JSON punctuation.
	StyleJSONPunct

	styleCount
)

// Painter converts styled text into display text.
type Painter interface {
	Paint(style Style, text string) string
}

// PlainPainter returns text without decoration.
type PlainPainter struct{}

// Paint implements Painter.
func (PlainPainter) Paint(_ Style, text string) string {
	return text
}

// Theme paints text with lipgloss styles bound to one renderer.
type Theme struct {
	styles [styleCount]lipgloss.Style
}

// NewTheme builds default colour theme for renderer.
// Nil renderer uses lipgloss default renderer.
func NewTheme(renderer *lipgloss.Renderer) *Theme {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	fg := func(color string) lipgloss.Style {
		return renderer.NewStyle().Foreground(lipgloss.Color(color))
	}

	theme := &Theme{}
	for index := range theme.styles {
		theme.styles[index] = renderer.NewStyle()
	}

	theme.styles[StyleGuide] = fg("8")
	theme.styles[StyleRootTitle] = fg("5").Bold(true)
	theme.styles[StyleRootDescription] = fg("8").Italic(true)
	theme.styles[StyleFieldsKey] = fg("2").Bold(true)
	theme.styles[StyleAnnotation] = renderer.NewStyle().Faint(true)
	theme.styles[StyleRequiredKey] = fg("1").Bold(true)
	theme.styles[StyleRequiredValue] = fg("9")
	theme.styles[StyleEnumKey] = fg("3").Bold(true)
	theme.styles[StyleEnumValue] = fg("11")
	theme.styles[StyleExamplesKey] = fg("6").Bold(true)
	theme.styles[StyleItemsKey] = fg("4").Bold(true)
	theme.styles[StyleDefinitionsKey] = fg("5").Bold(true)
	theme.styles[StyleBranchKey] = fg("12").Bold(true)
	theme.styles[StyleTypeKey] = fg("5").Bold(true)
	theme.styles[StyleTypeValue] = fg("11").Bold(true)
	theme.styles[StyleDescriptionKey] = fg("14")
	theme.styles[StyleDescriptionValue] = fg("7").Italic(true)
	theme.styles[StyleDefaultKey] = fg("10")
	theme.styles[StyleDefaultValue] = fg("2").Bold(true)
	theme.styles[StyleFormatKey] = fg("13")
	theme.styles[StyleFormatValue] = fg("5")
	theme.styles[StyleBoundKey] = fg("12")
	theme.styles[StyleBoundValue] = fg("4")
	theme.styles[StylePatternKey] = fg("11")
	theme.styles[StylePatternValue] = fg("3")
	theme.styles[StyleKey] = fg("6")
	theme.styles[StyleValue] = fg("15")
	theme.styles[StyleIndex] = fg("12")
	theme.styles[StyleElement] = fg("11")
	theme.styles[StyleHeading] = fg("6").Bold(true)
	theme.styles[StyleLabel] = renderer.NewStyle().Bold(true)
	theme.styles[StyleHint] = renderer.NewStyle().Faint(true)
	theme.styles[StyleBanner] = fg("5").Bold(true)
	theme.styles[StyleError] = fg("1").Bold(true)
	theme.styles[StyleWarning] = fg("3")
	theme.styles[StyleSeparator] = fg("13").Bold(true)
	theme.styles[StyleExampleTitle] = fg("11").Bold(true)
	theme.styles[StyleCheck] = fg("2")
	theme.styles[StyleCross] = fg("1")
	theme.styles[StyleLineNumber] = fg("8")
	theme.styles[StyleJSONKey] = fg("4").Bold(true)
	theme.styles[StyleJSONString] = fg("2")
	theme.styles[StyleJSONNumber] = fg("6").Bold(true)
	theme.styles[StyleJSONBool] = fg("1").Italic(true)
	theme.styles[StyleJSONNull] = fg("5").Italic(true)

	return theme
}

// Paint implements Painter.
func (theme *Theme) Paint(style Style, text string) string {
	if text == "" || style >= styleCount {
		return text
	}

	return theme.styles[style].Render(text)
}
