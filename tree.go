// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import (
	"strconv"
	"strings"
)

// Span is one styled fragment of a node label.
type Span struct {
	Text  string
	Style Style
}

// Node is one element of the render tree.
type Node struct {
	Label    []Span
	Children []*Node
}

// TreeOptions configures root label synthesis.
type TreeOptions struct {
	// Title is used when document has no title member. Defaults to "JSON Schema".
	Title string
	// Description is used when document has no description member.
	Description string
}

// treeTask is one pending container expansion.
type treeTask struct {
	node  *Node
	value Value
	root  bool
}

// BuildTree converts a JSON value into the annotated schema tree.
// It never fails: unexpected shapes degrade into partial output.
func BuildTree(value Value, opt TreeOptions) *Node {
	root := &Node{Label: rootLabel(value, opt)}

	stack := []treeTask{{node: root, value: value, root: true}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch task.value.Kind() {
		case KindObject:
			stack = expandObject(task, stack)
		case KindArray:
			stack = expandArray(task, stack)
		}
	}

	return root
}

// expandObject appends member nodes and queues nested containers.
func expandObject(task treeTask, stack []treeTask) []treeTask {
	for _, member := range task.value.Members() {
		if task.root {
			if _, skip := rootSkippedKeys[member.Key]; skip {
				continue
			}
		}

		if !member.Value.IsContainer() {
			task.node.add(&Node{Label: scalarLabel(member.Key, member.Value)})
			continue
		}

		if styles, ok := summaryRules[member.Key]; ok {
			task.node.add(&Node{Label: summaryLabel(member.Key, member.Value, styles)})
			continue
		}

		branch := task.node.add(&Node{Label: branchLabel(member.Key)})
		stack = append(stack, treeTask{node: branch, value: member.Value})
	}

	return stack
}

// expandArray appends element nodes and queues nested containers.
func expandArray(task treeTask, stack []treeTask) []treeTask {
	for index, item := range task.value.Items() {
		if !item.IsContainer() {
			task.node.add(&Node{Label: elementLabel(item)})
			continue
		}

		branch := task.node.add(&Node{Label: []Span{{Text: "[" + strconv.Itoa(index) + "]", Style: StyleIndex}}})
		stack = append(stack, treeTask{node: branch, value: item})
	}

	return stack
}

// rootLabel builds title and optional description line for the tree root.
func rootLabel(value Value, opt TreeOptions) []Span {
	title := strings.TrimSpace(opt.Title)
	if title == "" {
		title = defaultTreeTitle
	}

	if member, ok := value.Get("title"); ok {
		title = member.Text()
	}

	label := []Span{{Text: title, Style: StyleRootTitle}}

	description := opt.Description
	if member, ok := value.Get("description"); ok {
		description = member.Text()
	}

	if description != "" {
		description = truncateText(description, rootDescriptionLimit, rootDescriptionLimit-len(ellipsis))
		label = append(label, Span{Text: "\n" + description, Style: StyleRootDescription})
	}

	return label
}

// add appends child and returns it.
func (node *Node) add(child *Node) *Node {
	node.Children = append(node.Children, child)
	return child
}

// Text returns plain label text.
func (node *Node) Text() string {
	var out strings.Builder
	for _, span := range node.Label {
		out.WriteString(span.Text)
	}

	return out.String()
}

// Lines splits label into display lines preserving span styles.
func (node *Node) Lines() [][]Span {
	lines := [][]Span{nil}
	for _, span := range node.Label {
		parts := strings.Split(span.Text, "\n")
		for index, part := range parts {
			if index > 0 {
				lines = append(lines, nil)
			}

			if part == "" {
				continue
			}

			last := len(lines) - 1
			lines[last] = append(lines[last], Span{Text: part, Style: span.Style})
		}
	}

	return lines
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (node *Node) Depth() int {
	type level struct {
		node  *Node
		depth int
	}

	maxDepth := 0
	stack := []level{{node: node}}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.depth > maxDepth {
			maxDepth = current.depth
		}

		for _, child := range current.node.Children {
			stack = append(stack, level{node: child, depth: current.depth + 1})
		}
	}

	return maxDepth
}
