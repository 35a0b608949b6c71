// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// Package tui implements the interactive schema panel.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/woozymasta/schemaview"
	"github.com/woozymasta/schemaview/internal/clipboard"
)

// copyTimeout bounds one clipboard copy.
const copyTimeout = 5 * time.Second

// View identifies one panel view.
type View int

const (
	// ViewOverview shows schema metadata.
	ViewOverview View = iota
	// ViewProperties lists root properties.
	ViewProperties
	// ViewTree shows the annotated schema tree.
	ViewTree
	// ViewExamples shows numbered examples.
	ViewExamples
)

// String returns view title.
func (v View) String() string {
	switch v {
	case ViewOverview:
		return "Overview"
	case ViewProperties:
		return "Properties"
	case ViewTree:
		return "Tree View"
	case ViewExamples:
		return "Examples"
	default:
		return "Unknown"
	}
}

// Options configures the panel.
type Options struct {
	// Copier receives copy actions. Defaults to the system clipboard.
	Copier clipboard.Copier
	// Painter styles view content. Defaults to the lipgloss theme.
	Painter schemaview.Painter
}

// copyResultMsg reports a finished clipboard copy.
type copyResultMsg struct {
	what string
	err  error
}

// Model is the bubbletea model of the schema panel.
type Model struct {
	doc      schemaview.Document
	examples []schemaview.Example
	views    []View
	active   View
	copier   clipboard.Copier
	painter  schemaview.Painter
	content  map[View]string
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   string
	isError  bool
}

// New creates panel model for one loaded document.
func New(doc schemaview.Document, opt Options) Model {
	if opt.Copier == nil {
		opt.Copier = clipboard.New()
	}

	if opt.Painter == nil {
		opt.Painter = schemaview.NewTheme(nil)
	}

	views := []View{ViewOverview, ViewProperties, ViewTree}
	if schemaview.HasExamples(doc.Root) {
		views = append(views, ViewExamples)
	}

	return Model{
		doc:      doc,
		examples: schemaview.CollectExamples(doc.Root),
		views:    views,
		active:   ViewOverview,
		copier:   opt.Copier,
		painter:  opt.Painter,
		content:  make(map[View]string, len(views)),
	}
}

// Run opens the panel on the terminal and blocks until user quits.
func Run(doc schemaview.Document, opt Options) error {
	program := tea.NewProgram(New(doc, opt), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run panel: %w", err)
	}

	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case copyResultMsg:
		m.applyCopyResult(msg)
		return m, nil

	case tea.KeyMsg:
		if model, cmd, handled := m.handleKey(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// Active returns the currently shown view.
func (m Model) Active() View {
	return m.active
}

// Views returns views offered for the document.
func (m Model) Views() []View {
	return m.views
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// handleKey processes panel keys. Unhandled keys scroll the viewport.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, keys.CopyAll):
		return m, m.copyAll(), true

	case m.active == ViewExamples && key.Matches(msg, keys.CopyOne):
		index, err := strconv.Atoi(msg.String())
		if err == nil && index >= 1 && index <= len(m.examples) {
			return m, m.copyExample(index), true
		}
	}

	for _, view := range m.views {
		if key.Matches(msg, keys.viewBinding(view)) {
			m.switchView(view)
			return m, nil, true
		}
	}

	return m, nil, false
}

// switchView activates view and resets scroll position.
func (m *Model) switchView(view View) {
	m.active = view
	m.status = ""
	m.isError = false
	if m.ready {
		m.viewport.SetContent(m.render(view))
		m.viewport.GotoTop()
	}
}

// copyAll schedules copy of all examples.
func (m *Model) copyAll() tea.Cmd {
	if len(m.examples) == 0 {
		m.setStatus("No examples to copy", true)
		return nil
	}

	what := "all examples"
	if len(m.examples) == 1 {
		what = "example"
	}

	return copyCmd(m.copier, schemaview.ExamplesClipboardText(m.examples), what)
}

// copyExample schedules copy of one 1-based example.
func (m *Model) copyExample(index int) tea.Cmd {
	return copyCmd(m.copier, m.examples[index-1].JSON(), "example "+strconv.Itoa(index))
}

// copyCmd copies text off the event loop.
func copyCmd(copier clipboard.Copier, text, what string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), copyTimeout)
		defer cancel()

		return copyResultMsg{what: what, err: copier.Copy(ctx, text)}
	}
}

// applyCopyResult shows copy outcome in the status line.
func (m *Model) applyCopyResult(msg copyResultMsg) {
	switch {
	case msg.err == nil:
		m.setStatus("Copied "+msg.what+" to clipboard", false)
	case errors.Is(msg.err, clipboard.ErrUnavailable):
		m.setStatus("Warning: "+msg.err.Error(), true)
	default:
		m.setStatus("Warning: copy failed: "+msg.err.Error(), true)
	}
}

// setStatus replaces status line text.
func (m *Model) setStatus(text string, isError bool) {
	m.status = text
	m.isError = isError
}

// resize fits viewport into the window below header and above footer.
func (m *Model) resize() {
	width := max(m.width-sidebarWidth-1, 20)
	height := max(m.height-headerHeight-footerHeight, 3)

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}

	m.viewport.SetContent(m.render(m.active))
}
