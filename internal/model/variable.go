// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Variable structure produced for every assignment
// statement in a Makefile.
//
// Why keep raw fragments?
//
// A value continued over several physical lines is stored as one fragment per
// line, each still carrying its trailing continuation backslash. Storing the raw
// text keeps the parse lossless; Joined produces the logical value for callers
// that want it.
package model

import "strings"

// Variable is a single `name <op> value` binding.
type Variable struct {
	Name       string
	Assignment Assignment
	// Value holds one fragment per physical line. A single-line value is a
	// one-element slice. Continuation backslashes are retained.
	Value []string
}

// Joined returns the logical value of the variable: trailing continuation
// backslashes are removed and the fragments are joined with a single space,
// the way make folds a continued line.
func (v Variable) Joined() string {
	parts := make([]string, 0, len(v.Value))
	for _, fragment := range v.Value {
		fragment = strings.TrimSuffix(fragment, `\`)
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		parts = append(parts, fragment)
	}
	return strings.Join(parts, " ")
}
