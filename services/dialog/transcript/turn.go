// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package transcript persists conversation turn snapshots.
//
// Two stores exist: a JSON-array file used for regression-testing
// replay of single sessions, and an embedded Badger store used by
// server deployments that track many sessions.
package transcript

import (
	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
)

// Turn is one dialog turn snapshot. The field layout matches the
// replay format consumed by regression tooling; do not rename the
// JSON keys.
type Turn struct {
	SystemMessage            string   `json:"system_message"`
	UserInput                string   `json:"user_input"`
	Act                      string   `json:"act"`
	PriceRange               []string `json:"pricerange"`
	Area                     []string `json:"area"`
	Food                     []string `json:"food"`
	ExcludedRestaurants      []string `json:"excluded_restaurants"`
	CurrentSuggestion        string   `json:"current_suggestion"`
	CurrentPreferenceRequest string   `json:"current_preference_request"`
}

// Snapshot captures the post-transition state of one turn.
func Snapshot(state *datatypes.DialogState, userInput string) Turn {
	turn := Turn{
		SystemMessage:            state.SystemMessage,
		UserInput:                userInput,
		Act:                      state.LastAct,
		PriceRange:               state.PriceRange(),
		Area:                     state.Area(),
		Food:                     state.Food(),
		CurrentPreferenceRequest: string(state.CurrentRequest),
	}
	for _, r := range state.Excluded() {
		turn.ExcludedRestaurants = append(turn.ExcludedRestaurants, r.Name)
	}
	if state.CurrentSuggestion != nil {
		turn.CurrentSuggestion = state.CurrentSuggestion.Name
	}
	return turn
}
