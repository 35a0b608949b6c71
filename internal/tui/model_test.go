// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/schemaview"
	"github.com/woozymasta/schemaview/internal/clipboard"
)

const panelFixture = `{
	"title": "Demo",
	"type": "object",
	"required": ["name"],
	"properties": {"name": {"type": "string"}},
	"examples": [
		{"description": "First", "name": "a"},
		{"name": "b"}
	]
}`

type fakeCopier struct {
	copied []string
	err    error
}

func (copier *fakeCopier) Copy(_ context.Context, text string) error {
	copier.copied = append(copier.copied, text)
	return copier.err
}

func newTestModel(t *testing.T, source string, copier clipboard.Copier) Model {
	t.Helper()

	root, err := schemaview.Parse([]byte(source))
	require.NoError(t, err)

	doc := schemaview.Document{Path: "docs/demo.json", Root: root}
	return New(doc, Options{Copier: copier, Painter: schemaview.PlainPainter{}})
}

func press(t *testing.T, m Model, keyText string) (Model, tea.Cmd) {
	t.Helper()

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keyText)}
	if keyText == "ctrl+c" {
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	}

	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)
	return model, cmd
}

func runCmd(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()

	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	model, ok := updated.(Model)
	require.True(t, ok)
	return model
}

func TestViewsOfferedByDocument(t *testing.T) {
	t.Parallel()

	withExamples := newTestModel(t, panelFixture, &fakeCopier{})
	assert.Equal(t, []View{ViewOverview, ViewProperties, ViewTree, ViewExamples}, withExamples.Views())

	without := newTestModel(t, `{"title":"Plain"}`, &fakeCopier{})
	assert.Equal(t, []View{ViewOverview, ViewProperties, ViewTree}, without.Views())

	without, _ = press(t, without, "4")
	assert.Equal(t, ViewOverview, without.Active())
}

func TestSwitchViews(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, panelFixture, &fakeCopier{})
	for _, tc := range []struct {
		key  string
		want View
	}{
		{key: "2", want: ViewProperties},
		{key: "3", want: ViewTree},
		{key: "1", want: ViewOverview},
		{key: "4", want: ViewExamples},
	} {
		var cmd tea.Cmd
		m, cmd = press(t, m, tc.key)
		assert.Nil(t, cmd, "key %s", tc.key)
		assert.Equal(t, tc.want, m.Active(), "key %s", tc.key)
	}
}

func TestCopyExampleInExamplesView(t *testing.T) {
	t.Parallel()

	copier := &fakeCopier{}
	m := newTestModel(t, panelFixture, copier)
	m, _ = press(t, m, "4")

	m, cmd := press(t, m, "2")
	assert.Equal(t, ViewExamples, m.Active())

	m = runCmd(t, m, cmd)
	require.Len(t, copier.copied, 1)
	assert.Equal(t, "{\n  \"name\": \"b\"\n}", copier.copied[0])
	assert.Equal(t, "Copied example 2 to clipboard", m.Status())

	m, cmd = press(t, m, "1")
	m = runCmd(t, m, cmd)
	assert.Equal(t, ViewExamples, m.Active())
	assert.Equal(t, "{\n  \"name\": \"a\"\n}", copier.copied[1])
}

func TestDigitOutOfRangeFallsBackToViewSwitch(t *testing.T) {
	t.Parallel()

	copier := &fakeCopier{}
	m := newTestModel(t, `{"examples":[1]}`, copier)
	m, _ = press(t, m, "4")

	m, cmd := press(t, m, "3")
	assert.Nil(t, cmd)
	assert.Equal(t, ViewTree, m.Active())
	assert.Empty(t, copier.copied)
}

func TestCopyAllFromAnyView(t *testing.T) {
	t.Parallel()

	copier := &fakeCopier{}
	m := newTestModel(t, panelFixture, copier)
	m, _ = press(t, m, "3")

	m, cmd := press(t, m, "c")
	m = runCmd(t, m, cmd)

	require.Len(t, copier.copied, 1)
	assert.Equal(t, "[\n  {\n    \"name\": \"a\"\n  },\n  {\n    \"name\": \"b\"\n  }\n]", copier.copied[0])
	assert.Equal(t, "Copied all examples to clipboard", m.Status())
	assert.Equal(t, ViewTree, m.Active())
}

func TestCopyAllWithoutExamples(t *testing.T) {
	t.Parallel()

	copier := &fakeCopier{}
	m := newTestModel(t, `{"type":"object"}`, copier)

	m, cmd := press(t, m, "c")
	assert.Nil(t, cmd)
	assert.Equal(t, "No examples to copy", m.Status())
	assert.Empty(t, copier.copied)
}

func TestCopyFailureIsWarning(t *testing.T) {
	t.Parallel()

	copier := &fakeCopier{err: fmt.Errorf("%w (tried clip.exe, xclip, pbcopy)", clipboard.ErrUnavailable)}
	m := newTestModel(t, panelFixture, copier)

	m, cmd := press(t, m, "c")
	m = runCmd(t, m, cmd)
	assert.Equal(t, "Warning: clipboard tool not found (tried clip.exe, xclip, pbcopy)", m.Status())

	m, _ = press(t, m, "2")
	assert.Equal(t, ViewProperties, m.Active())
	assert.Empty(t, m.Status())
}

func TestQuitKeys(t *testing.T) {
	t.Parallel()

	for _, keyText := range []string{"q", "ctrl+c"} {
		m := newTestModel(t, panelFixture, &fakeCopier{})
		_, cmd := press(t, m, keyText)
		require.NotNil(t, cmd, keyText)
		assert.IsType(t, tea.QuitMsg{}, cmd(), keyText)
	}
}

func TestViewRendersContent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, panelFixture, &fakeCopier{})
	assert.Equal(t, "Loading...", m.View())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Schema Viewer: demo.json")
	assert.Contains(t, view, "Schema Overview")
	assert.Contains(t, view, "Tree View")

	m, _ = press(t, m, "3")
	assert.Contains(t, m.View(), "properties (fields)")

	m, _ = press(t, m, "4")
	view = m.View()
	assert.Contains(t, view, examplesHint)
	assert.Contains(t, view, "[1] First")
	assert.Contains(t, view, "1-9: copy example")
}
