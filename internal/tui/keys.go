// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines panel key bindings.
type keyMap struct {
	Overview   key.Binding
	Properties key.Binding
	Tree       key.Binding
	Examples   key.Binding
	CopyAll    key.Binding
	CopyOne    key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Overview:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
	Properties: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "properties")),
	Tree:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tree")),
	Examples:   key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "examples")),
	CopyAll:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy examples")),
	CopyOne: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "copy example"),
	),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// viewBinding returns switch binding for view.
func (k keyMap) viewBinding(view View) key.Binding {
	switch view {
	case ViewProperties:
		return k.Properties
	case ViewTree:
		return k.Tree
	case ViewExamples:
		return k.Examples
	default:
		return k.Overview
	}
}
