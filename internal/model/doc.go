// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a parsed Makefile. It is the
// output of the parser and the input of the dependency graph builder.
//
// # Core Concepts
//
//   - Makefile: The root container. It holds every variable assignment and
//     every rule found in one build-description file, each in source order.
//
//   - Variable: A single `name <op> value` binding. The value is kept as one
//     fragment per physical line so continued values can be inspected exactly
//     as written.
//
//   - Rule: A list of targets, the prerequisites they depend on, and the recipe
//     lines that would produce them.
//
// Variables and rules are tracked as two separate sequences. The relative order
// of a variable and a rule is not recorded.
//
// Names and fragments are substrings of the parsed source. Go substrings share
// the backing array of the original string, so a Makefile keeps its source text
// alive for as long as the Makefile itself is reachable.
package model
