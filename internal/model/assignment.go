// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Assignment kind of a variable binding.
//
// GNU make knows five flavours of assignment and six operators that spell them
// (`:=` and `::=` are synonyms). The kind carries no payload; expansion and
// evaluation of values are out of scope for this module.
package model

// Assignment represents the flavour of a variable assignment.
type Assignment int

const (
	// Recursive is `=`: the value is expanded every time it is referenced.
	Recursive Assignment = iota
	// Simple is `:=` or `::=`: the value is expanded once, at definition.
	Simple
	// Conditional is `?=`: the binding only applies if the name is unset.
	Conditional
	// Append is `+=`.
	Append
	// Shell is `!=`: the value is a shell command whose output is assigned.
	Shell
)

// String returns the canonical operator for the assignment kind.
func (a Assignment) String() string {
	switch a {
	case Recursive:
		return "="
	case Simple:
		return ":="
	case Conditional:
		return "?="
	case Append:
		return "+="
	case Shell:
		return "!="
	default:
		return "?"
	}
}

// GoString names the constant, so structure dumps read `model.Simple`
// rather than a bare number.
func (a Assignment) GoString() string {
	switch a {
	case Recursive:
		return "model.Recursive"
	case Simple:
		return "model.Simple"
	case Conditional:
		return "model.Conditional"
	case Append:
		return "model.Append"
	case Shell:
		return "model.Shell"
	default:
		return "model.Assignment(?)"
	}
}
