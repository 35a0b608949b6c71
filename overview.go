// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// overviewView is the view model passed to the overview template.
type overviewView struct {
	Title         string
	Description   string
	File          string
	SchemaVersion string
	Draft         string
	Type          string
	Required      []string
	HasRequired   bool
	Repaired      bool
}

// DraftInfo describes detected JSON Schema draft for a $schema value.
type DraftInfo struct {
	// Canonical is normalized draft name, for example "2020-12" or "draft-07".
	Canonical string
	// Supported reports whether draft is one of the known published drafts.
	Supported bool
}

var (
	datedDraftPattern    = regexp.MustCompile(`(\d{4}-\d{2})`)
	numberedDraftPattern = regexp.MustCompile(`draft-0?(\d+)`)
)

// supportedDatedDrafts lists dated drafts recognized as supported.
var supportedDatedDrafts = map[string]struct{}{
	"2019-09": {},
	"2020-12": {},
}

// WriteOverview writes the schema overview block.
func WriteOverview(w io.Writer, doc Document, painter Painter) error {
	if painter == nil {
		painter = PlainPainter{}
	}

	tpl, err := parseEmbeddedTemplate(overviewTemplateFile, painter)
	if err != nil {
		return err
	}

	if err := tpl.Execute(w, buildOverviewView(doc)); err != nil {
		return fmt.Errorf("%w: %w", ErrExecuteOverviewTemplate, err)
	}

	_, err = io.WriteString(w, "\n")
	return err
}

// buildOverviewView prepares overview fields with display fallbacks.
func buildOverviewView(doc Document) overviewView {
	root := doc.Root
	view := overviewView{
		Title:         "Unknown",
		Description:   "N/A",
		File:          doc.Path,
		SchemaVersion: "N/A",
		Repaired:      doc.Repaired,
	}

	if value, ok := root.Get("title"); ok {
		view.Title = value.Text()
	}

	if value, ok := root.Get("description"); ok {
		view.Description = value.Text()
	}

	if value, ok := root.Get("$schema"); ok {
		view.SchemaVersion = value.Text()
		view.Draft = draftText(DetectDraft(view.SchemaVersion))
	}

	if value, ok := root.Get("type"); ok {
		view.Type = value.Text()
	}

	if value, ok := root.Get("required"); ok {
		view.HasRequired = true
		for _, item := range enumValues(value) {
			view.Required = append(view.Required, item.Text())
		}
	}

	return view
}

// DetectDraft normalizes a $schema URI or draft name.
func DetectDraft(uri string) DraftInfo {
	value := strings.ToLower(strings.TrimSpace(uri))
	value = strings.TrimRight(value, "#/")
	if value == "" {
		return DraftInfo{}
	}

	if match := datedDraftPattern.FindStringSubmatch(value); match != nil {
		_, supported := supportedDatedDrafts[match[1]]
		return DraftInfo{Canonical: match[1], Supported: supported}
	}

	if match := numberedDraftPattern.FindStringSubmatch(value); match != nil {
		number, err := strconv.Atoi(match[1])
		if err != nil {
			return DraftInfo{}
		}

		return DraftInfo{
			Canonical: fmt.Sprintf("draft-%02d", number),
			Supported: number >= 3 && number <= 7,
		}
	}

	return DraftInfo{}
}

// draftText formats draft detection for overview output.
func draftText(info DraftInfo) string {
	if info.Canonical == "" {
		return "(unknown draft)"
	}

	if !info.Supported {
		return "(unsupported draft " + info.Canonical + ")"
	}

	return "(" + info.Canonical + ")"
}
