// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package tui

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/woozymasta/schemaview"
)

const (
	sidebarWidth = 22
	headerHeight = 2
	footerHeight = 2
)

// examplesHint is shown above examples.
const examplesHint = "Press number key (1-9) to copy that example, 'c' to copy all"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	sidebarStyle = lipgloss.NewStyle().
			Width(sidebarWidth).
			PaddingRight(1).
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	activeItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Height(m.viewport.Height).Render(m.renderSidebar()),
		" ",
		m.viewport.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderHeader renders file name and active view.
func (m Model) renderHeader() string {
	title := "Schema Viewer"
	if m.doc.Path != "" {
		title += ": " + filepath.Base(m.doc.Path)
	}

	return headerStyle.Width(max(m.width, 1)).Render(title + " · " + m.active.String())
}

// renderSidebar lists offered views with their keys.
func (m Model) renderSidebar() string {
	lines := make([]string, 0, len(m.views))
	for _, view := range m.views {
		label := keys.viewBinding(view).Help().Key + "  " + view.String()
		if view == m.active {
			lines = append(lines, activeItemStyle.Render("> "+label))
			continue
		}

		lines = append(lines, itemStyle.Render("  "+label))
	}

	return strings.Join(lines, "\n")
}

// renderFooter renders status line and key help.
func (m Model) renderFooter() string {
	help := []string{"1-" + strconv.Itoa(len(m.views)) + ": views", "↑/↓: scroll", "c: copy examples", "q: quit"}
	if m.active == ViewExamples {
		help = append([]string{"1-9: copy example"}, help...)
	}

	status := ""
	if m.status != "" {
		style := statusStyle
		if m.isError {
			style = statusErrorStyle
		}

		status = style.Render(m.status)
	}

	return status + "\n" + helpStyle.Render(strings.Join(help, " • "))
}

// render returns content of view, cached per model.
func (m Model) render(view View) string {
	if text, ok := m.content[view]; ok {
		return text
	}

	var out strings.Builder
	var err error
	switch view {
	case ViewOverview:
		err = schemaview.WriteOverview(&out, m.doc, m.painter)
	case ViewProperties:
		err = schemaview.WritePropertiesList(&out, m.doc.Root, m.painter)
	case ViewTree:
		err = schemaview.WriteTree(&out, schemaview.BuildTree(m.doc.Root, schemaview.TreeOptions{}), m.painter)
	case ViewExamples:
		out.WriteString(m.painter.Paint(schemaview.StyleHint, examplesHint))
		out.WriteString("\n\n")
		err = schemaview.WriteExamples(&out, m.examples, m.painter)
	}

	if err != nil {
		out.WriteString("\n" + m.painter.Paint(schemaview.StyleError, "Error: "+err.Error()) + "\n")
	}

	text := out.String()
	m.content[view] = text
	return text
}
