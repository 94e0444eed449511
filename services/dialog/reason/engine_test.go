// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reason

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/locales"
)

func romanticCandidate() datatypes.Restaurant {
	return datatypes.Restaurant{
		Name:         "the oak bistro",
		PriceRange:   "moderate",
		Crowdedness:  "quiet",
		LengthOfStay: "long stay",
		Food:         "british",
		FoodQuality:  "good food",
	}
}

func TestConsequents_Sorted(t *testing.T) {
	engine := NewEngine(nil)
	assert.Equal(t, []string{"assigned seats", "children", "romantic", "touristic"}, engine.Consequents())
}

func TestApply_Romantic(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("quiet long-stay restaurant is romantic with both reasons", func(t *testing.T) {
		reasons, ok, err := engine.Apply(romanticCandidate(), "romantic")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{
			"spending a long time in a restaurant is romantic",
			"a quiet restaurant is romantic",
		}, reasons)
	})

	t.Run("busy restaurant fails with the disqualifier as the only reason", func(t *testing.T) {
		r := romanticCandidate()
		r.Crowdedness = "busy"

		reasons, ok, err := engine.Apply(r, "romantic")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, []string{"a busy restaurant is not romantic"}, reasons)
	})
}

func TestApply_TouristicSilentGroup(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("cheap good romanian food is not touristic, silently", func(t *testing.T) {
		r := datatypes.Restaurant{PriceRange: "cheap", FoodQuality: "good food", Food: "romanian"}

		reasons, ok, err := engine.Apply(r, "touristic")
		require.NoError(t, err)
		assert.False(t, ok)
		// The romanian rule group is not marked give_as_reason, so the
		// earlier satisfied reason survives unreplaced.
		assert.Equal(t, []string{"a cheap restaurant with good food attracts tourists"}, reasons)
	})

	t.Run("cheap good non-romanian food is touristic", func(t *testing.T) {
		r := datatypes.Restaurant{PriceRange: "cheap", FoodQuality: "good food", Food: "italian"}

		reasons, ok, err := engine.Apply(r, "touristic")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a cheap restaurant with good food attracts tourists"}, reasons)
	})
}

func TestApply_ConfigurationErrors(t *testing.T) {
	t.Run("unknown consequent", func(t *testing.T) {
		engine := NewEngine(nil)
		_, _, err := engine.Apply(romanticCandidate(), "haunted")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown consequent")
	})

	t.Run("unknown restaurant attribute", func(t *testing.T) {
		engine := NewEngine(map[string][]RuleGroup{
			"starry": {{Rules: []Rule{{Attribute: "stars", Value: "3", Equal: true}}}},
		})
		_, _, err := engine.Apply(romanticCandidate(), "starry")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown restaurant attribute")
	})
}

func TestRankCandidates(t *testing.T) {
	engine := NewEngine(nil)
	quiet := romanticCandidate()
	busy := romanticCandidate()
	busy.Name = "charlie chan"
	busy.Crowdedness = "busy"
	quieter := romanticCandidate()
	quieter.Name = "the gardenia"

	ranked, err := engine.RankCandidates([]datatypes.Restaurant{busy, quiet, quieter}, "romantic")
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Input order preserved, reasons joined with ", and ".
	assert.Equal(t, "the oak bistro", ranked[0].Restaurant.Name)
	assert.Equal(t, "the gardenia", ranked[1].Restaurant.Name)
	assert.Equal(t,
		"spending a long time in a restaurant is romantic, and a quiet restaurant is romantic",
		ranked[0].Reason)
}

func TestLoadRules(t *testing.T) {
	const rulesYAML = `
cozy:
  - rules:
      - attribute: crowdedness
        value: quiet
        equal: true
    give_as_reason: true
    satisfied_description: a quiet spot is cozy
`

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte(rulesYAML), 0o644))

		rules, err := LoadRules(path)
		require.NoError(t, err)
		require.Contains(t, rules, "cozy")

		engine := NewEngine(rules)
		reasons, ok, err := engine.Apply(romanticCandidate(), "cozy")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a quiet spot is cozy"}, reasons)
	})

	t.Run("group without rules fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("cozy:\n  - give_as_reason: true\n"), 0o644))

		_, err := LoadRules(path)
		assert.Error(t, err)
	})
}

func TestHandleExtraRequirements(t *testing.T) {
	engine := NewEngine(nil)
	strs := locales.Neutral()
	candidates := []datatypes.Restaurant{romanticCandidate()}

	t.Run("prompts until a consequent is named", func(t *testing.T) {
		in := strings.NewReader("something nice\nmake it romantic please\n")
		var out strings.Builder

		outcome, err := engine.HandleExtraRequirements(candidates, in, &out, strs)
		require.NoError(t, err)
		require.NotNil(t, outcome)
		assert.Equal(t, "romantic", outcome.Consequent)
		assert.Equal(t, "the oak bistro", outcome.Suggestion.Restaurant.Name)
		// Two prompts: the unrecognized reply triggers a re-ask.
		assert.Equal(t, 2, strings.Count(out.String(), "additional requirement"))
	})

	t.Run("no candidate satisfies the requirement", func(t *testing.T) {
		busy := romanticCandidate()
		busy.Crowdedness = "busy"

		in := strings.NewReader("romantic\n")
		outcome, err := engine.HandleExtraRequirements([]datatypes.Restaurant{busy}, in, &strings.Builder{}, strs)
		require.NoError(t, err)
		assert.Nil(t, outcome)
	})

	t.Run("input ending early returns nil", func(t *testing.T) {
		outcome, err := engine.HandleExtraRequirements(candidates, strings.NewReader(""), &strings.Builder{}, strs)
		require.NoError(t, err)
		assert.Nil(t, outcome)
	})
}
