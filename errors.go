// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package schemaview

import "errors"

var (
	// ErrNotFound is returned when schema file or discovery directory does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformed is returned when schema content is not valid JSON.
	ErrMalformed = errors.New("malformed json")
	// ErrInvalidSelection is returned when schema choice is not a number or out of range.
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrReadSchemaFile is returned when schema file exists but cannot be read.
	ErrReadSchemaFile = errors.New("read schema file")
	// ErrRepairSchema is returned when malformed JSON cannot be repaired.
	ErrRepairSchema = errors.New("repair schema")
	// ErrWalkDirectory is returned when discovery directory traversal fails.
	ErrWalkDirectory = errors.New("walk schema directory")
	// ErrExecuteOverviewTemplate is returned when overview template execution fails.
	ErrExecuteOverviewTemplate = errors.New("execute overview template")
	// ErrParseOverviewTemplate is returned when embedded overview template parsing fails.
	ErrParseOverviewTemplate = errors.New("parse overview template")
	// ErrRenderTable is returned when properties or menu table rendering fails.
	ErrRenderTable = errors.New("render table")
	// ErrEncodeYAML is returned when document YAML encoding fails.
	ErrEncodeYAML = errors.New("encode yaml")
)
