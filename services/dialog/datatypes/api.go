// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

// CreateSessionRequest configures a new dialog session. All fields
// are optional; zero values fall back to the session defaults.
// Settings are fixed for the lifetime of a server session — the
// interactive settings sub-dialog is a CLI-only feature.
type CreateSessionRequest struct {
	CapsLock    bool    `json:"caps_lock"`
	TypoCheck   bool    `json:"typo_check"`
	Levenshtein int     `json:"levenshtein" binding:"omitempty,gte=1,lte=10"`
	SystemDelay float64 `json:"system_delay" binding:"omitempty,gte=0"`
	Informal    bool    `json:"informal"`
}

// CreateSessionResponse returns the new session handle and the
// opening system message.
type CreateSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// MessageRequest carries one user utterance.
type MessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// MessageResponse is the system's reply to one utterance.
//
// HandoffReady signals that the conversation terminated into the
// extra-requirements hand-off; the candidate restaurants are listed in
// Candidates and the session accepts no further messages.
type MessageResponse struct {
	Message          string   `json:"message"`
	Act              string   `json:"act"`
	ConversationOver bool     `json:"conversation_over"`
	HandoffReady     bool     `json:"handoff_ready,omitempty"`
	Candidates       []string `json:"candidates,omitempty"`
}

// SessionInfo is the inspectable state of a session.
type SessionInfo struct {
	SessionID         string   `json:"session_id"`
	PriceRange        []string `json:"pricerange"`
	Area              []string `json:"area"`
	Food              []string `json:"food"`
	CurrentSuggestion string   `json:"current_suggestion,omitempty"`
	ConversationOver  bool     `json:"conversation_over"`
}
