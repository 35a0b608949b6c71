// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// Package clipboard copies text to the system clipboard through external
// utilities with a native fallback.
package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard mechanism can be used.
var ErrUnavailable = errors.New("clipboard tool not found")

// Copier copies text to a clipboard.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// DefaultCommands are tried in order before the native fallback.
var DefaultCommands = [][]string{
	{"clip.exe"},
	{"xclip", "-selection", "clipboard"},
	{"pbcopy"},
}

// System copies through the first available external command, then through
// atotto/clipboard when the platform supports it.
type System struct {
	commands    [][]string
	lookPath    func(string) (string, error)
	runCommand  func(ctx context.Context, path string, args []string, input string) error
	native      func(string) error
	unsupported func() bool
}

// New returns System with default commands.
func New() *System {
	return &System{
		commands:    DefaultCommands,
		lookPath:    exec.LookPath,
		runCommand:  runCommand,
		native:      clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// Copy implements Copier.
func (system *System) Copy(ctx context.Context, text string) error {
	for _, command := range system.commands {
		if len(command) == 0 {
			continue
		}

		path, err := system.lookPath(command[0])
		if err != nil {
			continue
		}

		if err := system.runCommand(ctx, path, command[1:], text); err != nil {
			return fmt.Errorf("copy with %s: %w", command[0], err)
		}

		return nil
	}

	if system.native != nil && (system.unsupported == nil || !system.unsupported()) {
		if err := system.native(text); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w (tried %s)", ErrUnavailable, system.triedNames())
}

// triedNames lists command names for diagnostics.
func (system *System) triedNames() string {
	names := make([]string, 0, len(system.commands))
	for _, command := range system.commands {
		if len(command) > 0 {
			names = append(names, command[0])
		}
	}

	return strings.Join(names, ", ")
}

// runCommand pipes input into command stdin.
func runCommand(ctx context.Context, path string, args []string, input string) error {
	command := exec.CommandContext(ctx, path, args...)
	command.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return err
		}

		return fmt.Errorf("%w: %s", err, detail)
	}

	return nil
}
