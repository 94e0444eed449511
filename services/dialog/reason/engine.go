// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package reason implements the inference engine for secondary
// restaurant attributes (touristic, romantic, child-friendly,
// assigned seats).
//
// An attribute maps to an ordered list of rule groups. Evaluation is a
// short-circuiting AND over the groups: every group must match for the
// attribute to hold, and the first failing group stops evaluation with
// its unsatisfied description as the single reason. This
// last-reason-wins policy deliberately reports the one most relevant
// disqualifier instead of an exhaustive list.
package reason

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
)

// Rule is one attribute-equality check.
//
// The check passes when (restaurant.Attribute == Value) == Equal, so
// Equal=false expresses "must not equal".
type Rule struct {
	Attribute string `yaml:"attribute" validate:"required"`
	Value     string `yaml:"value" validate:"required"`
	Equal     bool   `yaml:"equal"`
}

// RuleGroup is a conjunction of rules plus the human-readable
// justifications for either outcome.
type RuleGroup struct {
	// Rules all have to pass for the group to match.
	Rules []Rule `yaml:"rules" validate:"required,min=1,dive"`

	// GiveAsReason controls whether the descriptions are surfaced to
	// the user at all.
	GiveAsReason bool `yaml:"give_as_reason"`

	// SatisfiedDescription is appended to the justification list when
	// the group matches.
	SatisfiedDescription string `yaml:"satisfied_description"`

	// UnsatisfiedDescription replaces the justification list when the
	// group fails.
	UnsatisfiedDescription string `yaml:"unsatisfied_description"`
}

// RankedSuggestion pairs a qualifying restaurant with its joined
// justification text.
type RankedSuggestion struct {
	Restaurant datatypes.Restaurant
	Reason     string
}

// Engine evaluates rule groups against restaurants.
//
// # Thread Safety
//
// Read-only after construction; safe for concurrent use.
type Engine struct {
	rules map[string][]RuleGroup
}

// NewEngine creates an engine over the given rule table. A nil table
// gets DefaultRules. Passing a custom table is how tests isolate the
// engine from the stock configuration.
func NewEngine(rules map[string][]RuleGroup) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{rules: rules}
}

// Consequents returns the configured attribute names, sorted.
func (e *Engine) Consequents() []string {
	names := make([]string, 0, len(e.rules))
	for name := range e.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply evaluates one attribute against one restaurant.
//
// # Description
//
// Rule groups run in configured order. A matching group contributes
// its satisfied description (when marked give_as_reason) and
// evaluation continues; the first failing group replaces the
// justification list with its unsatisfied description (again only
// when give_as_reason) and evaluation stops unsatisfied.
//
// # Inputs
//
//   - restaurant: The candidate under evaluation.
//   - consequent: The secondary attribute name.
//
// # Outputs
//
//   - []string: Justification strings in rule-group order.
//   - bool: Whether the attribute holds.
//   - error: Non-nil for an unknown consequent or a rule referencing
//     an unknown restaurant attribute; both are configuration errors
//     and callers fail fast.
func (e *Engine) Apply(restaurant datatypes.Restaurant, consequent string) ([]string, bool, error) {
	groups, ok := e.rules[consequent]
	if !ok {
		return nil, false, fmt.Errorf("unknown consequent: %q", consequent)
	}

	var reasons []string
	for _, group := range groups {
		matches := true
		for _, rule := range group.Rules {
			value, ok := restaurant.Attribute(rule.Attribute)
			if !ok {
				return nil, false, fmt.Errorf("consequent %q: unknown restaurant attribute %q", consequent, rule.Attribute)
			}
			if (value == rule.Value) != rule.Equal {
				matches = false
				break
			}
		}

		if matches {
			if group.SatisfiedDescription != "" && group.GiveAsReason {
				reasons = append(reasons, group.SatisfiedDescription)
			}
			continue
		}

		if group.UnsatisfiedDescription != "" && group.GiveAsReason {
			reasons = []string{group.UnsatisfiedDescription}
		}
		return reasons, false, nil
	}

	return reasons, true, nil
}

// RankCandidates filters restaurants to those satisfying the
// consequent, preserving input order, each paired with its joined
// justification.
func (e *Engine) RankCandidates(restaurants []datatypes.Restaurant, consequent string) ([]RankedSuggestion, error) {
	var ranked []RankedSuggestion
	for _, r := range restaurants {
		reasons, satisfied, err := e.Apply(r, consequent)
		if err != nil {
			return nil, err
		}
		if satisfied {
			ranked = append(ranked, RankedSuggestion{
				Restaurant: r,
				Reason:     strings.Join(reasons, ", and "),
			})
		}
	}
	return ranked, nil
}

// DefaultRules returns the stock inference rule table.
func DefaultRules() map[string][]RuleGroup {
	return map[string][]RuleGroup{
		"touristic": {
			{
				Rules: []Rule{
					{Attribute: "pricerange", Value: "cheap", Equal: true},
					{Attribute: "food_quality", Value: "good food", Equal: true},
				},
				GiveAsReason:           true,
				SatisfiedDescription:   "a cheap restaurant with good food attracts tourists",
				UnsatisfiedDescription: "a restaurant that isn't cheap or has no good food doesn't attract tourists",
			},
			{
				Rules: []Rule{
					{Attribute: "food", Value: "romanian", Equal: false},
				},
				GiveAsReason:         false,
				SatisfiedDescription: "Romanian cuisine is unknown for most tourists and they prefer familiar food",
			},
		},
		"romantic": {
			{
				Rules: []Rule{
					{Attribute: "length_of_stay", Value: "long stay", Equal: true},
				},
				GiveAsReason:         true,
				SatisfiedDescription: "spending a long time in a restaurant is romantic",
			},
			{
				Rules: []Rule{
					{Attribute: "crowdedness", Value: "quiet", Equal: true},
				},
				GiveAsReason:           true,
				SatisfiedDescription:   "a quiet restaurant is romantic",
				UnsatisfiedDescription: "a busy restaurant is not romantic",
			},
		},
		"children": {
			{
				Rules: []Rule{
					{Attribute: "length_of_stay", Value: "long stay", Equal: false},
				},
				GiveAsReason:           true,
				SatisfiedDescription:   "spending a long time is not advised when taking children",
				UnsatisfiedDescription: "spending a short time is best when taking children",
			},
		},
		"assigned seats": {
			{
				Rules: []Rule{
					{Attribute: "crowdedness", Value: "busy", Equal: true},
				},
				GiveAsReason:           true,
				SatisfiedDescription:   "in a busy restaurant the waiter decides where you sit",
				UnsatisfiedDescription: "in a quiet restaurant the waiter often doesn't decide where you sit",
			},
		},
	}
}
