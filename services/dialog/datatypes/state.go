// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"slices"

	"github.com/AleutianAI/TableTalk/services/dialog/config"
)

// Slot names shared by the extractor, the state and the transcript
// snapshot format.
const (
	SlotPriceRange = "pricerange"
	SlotArea       = "area"
	SlotFood       = "food"
)

// AnyPreference is the sentinel slot value meaning the user has no
// constraint on that slot.
const AnyPreference = "any"

// PreferenceRequest identifies which slot the system is currently
// waiting for the user to fill. PreferenceAny means no specific slot
// was last asked for, which affects where a bare "don't care" lands.
type PreferenceRequest string

const (
	PreferenceAny        PreferenceRequest = ""
	PreferencePriceRange PreferenceRequest = SlotPriceRange
	PreferenceArea       PreferenceRequest = SlotArea
	PreferenceFood       PreferenceRequest = SlotFood
)

// DialogState is the mutable per-session conversation state.
//
// # Description
//
// One DialogState exists per active session. All mutation funnels
// through the setter methods here and the dialog manager; the setters
// reset the suggestion cursor whenever a slot or the exclusion set
// changes, which keeps the cursor a valid index into the recomputed
// candidate list.
//
// # Thread Safety
//
// Owned by a single session. Not safe for concurrent mutation; a
// multi-session server must serialize turns per session.
type DialogState struct {
	priceRange      []string
	area            []string
	food            []string
	excluded        []Restaurant
	suggestionIndex int

	// Config is the per-session configuration, injected at session
	// creation and orthogonal to the conversation state proper.
	Config *config.Config

	// ConversationOver marks the terminal state.
	ConversationOver bool

	// CurrentSuggestion is the restaurant last offered to the user,
	// nil before the first suggestion.
	CurrentSuggestion *Restaurant

	// SystemMessage is the current outbound message. It persists
	// across turns so a "repeat" act re-emits it verbatim.
	SystemMessage string

	// CurrentRequest is the slot the system last asked for.
	CurrentRequest PreferenceRequest

	// ExtraRequirementSuggestions captures the full candidate list at
	// the moment the user hands control to the inference layer.
	ExtraRequirementSuggestions []Restaurant

	// LastAct records the classified act of the most recent turn, for
	// transcript snapshots and debugging.
	LastAct string

	// Typo-confirmation sub-flow. When ConfirmTypo is set the next
	// "affirm" act replays PreviousPreferences/PreviousAct; any other
	// act discards the stash. The flow is one level deep only.
	ConfirmTypo         bool
	TypoList            []string
	PreviousPreferences map[string][]string
	PreviousAct         string
}

// NewDialogState creates the state for a fresh session.
//
// A nil cfg gets the defaults.
func NewDialogState(cfg *config.Config) *DialogState {
	if cfg == nil {
		c := config.Default()
		cfg = &c
	}
	return &DialogState{
		Config:         cfg,
		CurrentRequest: PreferenceAny,
	}
}

// SetPriceRange replaces the price preference and resets the
// suggestion cursor.
func (s *DialogState) SetPriceRange(values []string) {
	s.priceRange = values
	s.suggestionIndex = 0
}

// SetArea replaces the area preference and resets the suggestion
// cursor.
func (s *DialogState) SetArea(values []string) {
	s.area = values
	s.suggestionIndex = 0
}

// SetFood replaces the food preference and resets the suggestion
// cursor.
func (s *DialogState) SetFood(values []string) {
	s.food = values
	s.suggestionIndex = 0
}

// AddExcludedRestaurant marks a rejected suggestion so it is never
// offered again this session, and resets the suggestion cursor.
func (s *DialogState) AddExcludedRestaurant(r Restaurant) {
	s.excluded = append(s.excluded, r)
	s.suggestionIndex = 0
}

// PriceRange returns the current price preference values.
func (s *DialogState) PriceRange() []string { return s.priceRange }

// Area returns the current area preference values.
func (s *DialogState) Area() []string { return s.area }

// Food returns the current food preference values.
func (s *DialogState) Food() []string { return s.food }

// Excluded returns the rejected restaurants.
func (s *DialogState) Excluded() []Restaurant { return s.excluded }

// SuggestionIndex returns the current suggestion cursor.
func (s *DialogState) SuggestionIndex() int { return s.suggestionIndex }

// UpdatePreferences overwrites each slot present in extracted with a
// non-empty value list. This is a replace, not a merge: the newest
// extraction for a slot fully supersedes the previous value.
//
// # Outputs
//
//   - bool: True when at least one slot was replaced.
func (s *DialogState) UpdatePreferences(extracted map[string][]string) bool {
	updated := false
	if values := extracted[SlotPriceRange]; len(values) > 0 {
		s.SetPriceRange(values)
		updated = true
	}
	if values := extracted[SlotArea]; len(values) > 0 {
		s.SetArea(values)
		updated = true
	}
	if values := extracted[SlotFood]; len(values) > 0 {
		s.SetFood(values)
		updated = true
	}
	return updated
}

// CanSuggest reports whether all three slots hold at least one value.
func (s *DialogState) CanSuggest() bool {
	return len(s.priceRange) > 0 && len(s.area) > 0 && len(s.food) > 0
}

// CalculateCandidates returns the restaurants matching the current
// preferences, in catalog order.
//
// A restaurant qualifies iff for each of price, area and food the
// preference set contains either the restaurant's value or the "any"
// sentinel, and the restaurant has not been excluded.
func (s *DialogState) CalculateCandidates(restaurants []Restaurant) []Restaurant {
	var candidates []Restaurant
	for _, r := range restaurants {
		if (slices.Contains(s.priceRange, r.PriceRange) || slices.Contains(s.priceRange, AnyPreference)) &&
			(slices.Contains(s.area, r.Area) || slices.Contains(s.area, AnyPreference)) &&
			(slices.Contains(s.food, r.Food) || slices.Contains(s.food, AnyPreference)) &&
			!slices.Contains(s.excluded, r) {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// NextSuggestion returns the candidate at the suggestion cursor and
// advances the cursor.
//
// # Outputs
//
//   - Restaurant: The suggestion, valid only when ok is true.
//   - bool: False when the candidate list is exhausted at the current
//     cursor position.
func (s *DialogState) NextSuggestion(restaurants []Restaurant) (Restaurant, bool) {
	candidates := s.CalculateCandidates(restaurants)
	if s.suggestionIndex >= len(candidates) {
		return Restaurant{}, false
	}
	suggestion := candidates[s.suggestionIndex]
	s.suggestionIndex++
	s.CurrentSuggestion = &suggestion
	return suggestion, true
}
