// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Makefile structure, the root container returned by
// the parser.
package model

// Makefile is the complete parse result of one build-description file.
type Makefile struct {
	Variables []Variable
	Rules     []Rule
}

// NewMakefile creates and returns an initialized, empty Makefile.
func NewMakefile() *Makefile {
	return &Makefile{
		Variables: []Variable{},
		Rules:     []Rule{},
	}
}

// Variable returns the last binding of name, mirroring make where a later
// assignment shadows an earlier one. The second result is false if the name
// is never assigned.
func (m *Makefile) Variable(name string) (Variable, bool) {
	for i := len(m.Variables) - 1; i >= 0; i-- {
		if m.Variables[i].Name == name {
			return m.Variables[i], true
		}
	}
	return Variable{}, false
}

// Targets returns every distinct target name in order of first appearance.
// The .PHONY pseudo-target is omitted.
func (m *Makefile) Targets() []string {
	seen := make(map[string]struct{})
	var targets []string
	for _, r := range m.Rules {
		for _, t := range r.Targets {
			if t == PhonyTarget {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			targets = append(targets, t)
		}
	}
	return targets
}

// PhonyTargets returns the prerequisites of every .PHONY rule, deduplicated,
// in order of first appearance.
func (m *Makefile) PhonyTargets() []string {
	seen := make(map[string]struct{})
	var phony []string
	for _, r := range m.Rules {
		if !r.IsPhonyDeclaration() {
			continue
		}
		for _, p := range r.Prerequisites {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			phony = append(phony, p)
		}
	}
	return phony
}
