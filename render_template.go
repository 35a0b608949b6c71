// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"embed"
	"fmt"
	"text/template"
)

// templateFS stores built-in text templates embedded into the package.
//
//go:embed templates/*.txt.gotmpl
var templateFS embed.FS

// overviewTemplateFile is the embedded overview template path.
const overviewTemplateFile = "templates/overview.txt.gotmpl"

// templateStyles maps style names usable in templates to styles.
var templateStyles = map[string]Style{
	"heading": StyleHeading,
	"label":   StyleLabel,
	"hint":    StyleHint,
	"warning": StyleWarning,
	"error":   StyleError,
}

// parseEmbeddedTemplate parses one embedded template with paint helper bound to painter.
func parseEmbeddedTemplate(path string, painter Painter) (*template.Template, error) {
	data, err := templateFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseOverviewTemplate, path, err)
	}

	parsed, err := template.New(path).Funcs(templateFuncs(painter)).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrParseOverviewTemplate, path, err)
	}

	return parsed, nil
}

// templateFuncs provides utility functions available inside text templates.
func templateFuncs(painter Painter) template.FuncMap {
	return template.FuncMap{
		"paint": func(name, text string) string {
			style, ok := templateStyles[name]
			if !ok {
				return text
			}

			return painter.Paint(style, text)
		},
	}
}
