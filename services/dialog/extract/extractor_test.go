// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/fuzzy"
)

const threshold = 3

func newTestExtractor() *Extractor {
	return NewExtractor(
		fuzzy.NewMatcher(),
		[]string{"italian", "chinese", "indian", "thai"},
		[]string{"centre", "north", "south", "east", "west"},
		[]string{"cheap", "moderate", "expensive"},
	)
}

func TestPreferences_DirectKeywords(t *testing.T) {
	e := newTestExtractor()

	got := e.Preferences("i want cheap italian food in the north", datatypes.PreferenceAny, threshold)

	require.Contains(t, got, datatypes.SlotPriceRange)
	require.Contains(t, got, datatypes.SlotFood)
	require.Contains(t, got, datatypes.SlotArea)
	assert.Equal(t, []Match{{Keyword: "cheap", Exact: true}}, got[datatypes.SlotPriceRange])
	assert.Equal(t, []Match{{Keyword: "italian", Exact: true}}, got[datatypes.SlotFood])
	assert.Equal(t, []Match{{Keyword: "north", Exact: true}}, got[datatypes.SlotArea])
}

func TestPreferences_TypoMarkedInexact(t *testing.T) {
	e := newTestExtractor()

	got := e.Preferences("somewhere chep please", datatypes.PreferenceAny, threshold)

	require.Contains(t, got, datatypes.SlotPriceRange)
	assert.Equal(t, []Match{{Keyword: "cheap", Exact: false}}, got[datatypes.SlotPriceRange])
}

func TestPreferences_CenterNormalizesToCentre(t *testing.T) {
	e := newTestExtractor()

	got := e.Preferences("in the center of town", datatypes.PreferenceAny, threshold)

	require.Contains(t, got, datatypes.SlotArea)
	// Normalization happens before the match, so the hit is exact.
	assert.Equal(t, []Match{{Keyword: "centre", Exact: true}}, got[datatypes.SlotArea])
}

func TestPreferences_DontCareNearestCue(t *testing.T) {
	e := newTestExtractor()

	// The "doesn't matter" phrase sits next to the food cue; the price
	// keyword is still extracted independently.
	got := e.Preferences("it doesn't matter what food, i want it cheap", datatypes.PreferenceAny, threshold)

	require.Contains(t, got, datatypes.SlotFood)
	assert.Equal(t, []Match{{Keyword: datatypes.AnyPreference, Exact: true}}, got[datatypes.SlotFood])
	require.Contains(t, got, datatypes.SlotPriceRange)
	assert.Equal(t, []Match{{Keyword: "cheap", Exact: true}}, got[datatypes.SlotPriceRange])
}

func TestPreferences_DontCareFallsBackToPending(t *testing.T) {
	e := newTestExtractor()

	t.Run("pending slot receives the any value", func(t *testing.T) {
		got := e.Preferences("i don't care", datatypes.PreferenceArea, threshold)
		require.Contains(t, got, datatypes.SlotArea)
		assert.Equal(t, []Match{{Keyword: datatypes.AnyPreference, Exact: true}}, got[datatypes.SlotArea])
	})

	t.Run("no pending slot drops the phrase", func(t *testing.T) {
		got := e.Preferences("i don't care", datatypes.PreferenceAny, threshold)
		assert.Empty(t, got)
	})
}

func TestPreferences_MultipleValuesPerSlot(t *testing.T) {
	e := newTestExtractor()

	got := e.Preferences("chinese or indian is fine", datatypes.PreferenceAny, threshold)

	require.Contains(t, got, datatypes.SlotFood)
	assert.Equal(t, []Match{
		{Keyword: "chinese", Exact: true},
		{Keyword: "indian", Exact: true},
	}, got[datatypes.SlotFood])
}

func TestRequestedInfo(t *testing.T) {
	e := newTestExtractor()

	t.Run("phone and postcode", func(t *testing.T) {
		got := e.RequestedInfo("what is the phone and postcode", threshold)
		assert.True(t, got[InfoPhoneNumber])
		assert.True(t, got[InfoPostcode])
		assert.False(t, got[InfoAddress])
	})

	t.Run("misspelled address still matches", func(t *testing.T) {
		got := e.RequestedInfo("whats their adress", threshold)
		assert.True(t, got[InfoAddress])
	})

	t.Run("nothing requested", func(t *testing.T) {
		got := e.RequestedInfo("sounds lovely", threshold)
		assert.Empty(t, got)
	})
}

func TestKeywordsAndInexactWords(t *testing.T) {
	extracted := map[string][]Match{
		datatypes.SlotFood:       {{Keyword: "thai", Exact: false}},
		datatypes.SlotPriceRange: {{Keyword: "cheap", Exact: true}},
		datatypes.SlotArea:       {{Keyword: "west", Exact: false}},
	}

	assert.Equal(t, map[string][]string{
		datatypes.SlotFood:       {"thai"},
		datatypes.SlotPriceRange: {"cheap"},
		datatypes.SlotArea:       {"west"},
	}, Keywords(extracted))

	// Inexact keywords come back in slot order: price, area, food.
	assert.Equal(t, []string{"west", "thai"}, InexactWords(extracted))
}
