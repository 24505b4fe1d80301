// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Rule structure: the targets a rule produces, what they
// depend on, and the recipe that would build them.
package model

// PhonyTarget is the reserved pseudo-target used to declare phony targets.
const PhonyTarget = ".PHONY"

// Rule is a single `targets: prerequisites` header plus its recipe lines.
type Rule struct {
	// Targets is never empty for a parsed rule.
	Targets       []string
	Prerequisites []string
	// Recipe lines are stored without their leading indentation.
	Recipe []string
}

// IsPhonyDeclaration reports whether the rule declares phony targets, that is,
// whether one of its targets is .PHONY.
func (r Rule) IsPhonyDeclaration() bool {
	for _, t := range r.Targets {
		if t == PhonyTarget {
			return true
		}
	}
	return false
}
