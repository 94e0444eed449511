// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the HTTP and WebSocket handlers for the
// dialog service.
package handlers

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
)

// Session is one hosted conversation. The mutex serializes turns:
// the dialog state machine is single-threaded per session by
// contract.
type Session struct {
	ID string

	mu    sync.Mutex
	state *datatypes.DialogState
}

// WithState runs fn with exclusive access to the session state. The
// returned state replaces the held one, so a transition that builds a
// fresh state (restart) is visible to the next turn.
func (s *Session) WithState(fn func(state *datatypes.DialogState) *datatypes.DialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fn(s.state)
}

// Registry holds the live sessions of one server process.
//
// # Thread Safety
//
// Safe for concurrent use. Lookup returns the session; callers
// serialize turns through Session.WithState.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create registers a new session around the given state and returns
// it with a fresh UUID.
func (r *Registry) Create(state *datatypes.DialogState) *Session {
	session := &Session{
		ID:    uuid.New().String(),
		state: state,
	}
	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()
	return session
}

// Get looks up a session by ID.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	return session, ok
}

// Delete removes a session. Reports whether it existed.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
