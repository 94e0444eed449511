// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/TableTalk/services/dialog/config"
	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/manager"
	"github.com/AleutianAI/TableTalk/services/dialog/observability"
	"github.com/AleutianAI/TableTalk/services/dialog/transcript"
)

// Recorder persists turn snapshots. Satisfied by
// transcript.BadgerStore; nil disables recording.
type Recorder interface {
	Append(sessionID string, turn transcript.Turn) error
}

// CreateSession starts a new dialog session.
//
// POST /v1/sessions with an optional CreateSessionRequest body.
func CreateSession(mgr *manager.Manager, registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req datatypes.CreateSessionRequest
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		cfg := config.Default()
		cfg.CapsLock = req.CapsLock
		cfg.TypoCheck = req.TypoCheck
		cfg.Informal = req.Informal
		if req.Levenshtein > 0 {
			cfg.Levenshtein = req.Levenshtein
		}
		if req.SystemDelay > 0 {
			cfg.SystemDelay = req.SystemDelay
		}

		state := mgr.NewSession(&cfg)
		session := registry.Create(state)
		slog.Info("session created", "session_id", session.ID)

		if observability.DefaultMetrics != nil {
			observability.DefaultMetrics.SessionsStartedTotal.Inc()
			observability.DefaultMetrics.ActiveSessions.Set(float64(registry.Len()))
		}

		c.JSON(http.StatusCreated, datatypes.CreateSessionResponse{
			SessionID: session.ID,
			Message:   manager.Render(state),
		})
	}
}

// PostMessage runs one dialog turn.
//
// POST /v1/sessions/:id/messages with a MessageRequest body.
func PostMessage(mgr *manager.Manager, registry *Registry, recorder Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := registry.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		var req datatypes.MessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var resp datatypes.MessageResponse
		session.WithState(func(state *datatypes.DialogState) *datatypes.DialogState {
			state = mgr.Transition(c.Request.Context(), state, req.Message)

			resp = datatypes.MessageResponse{
				Message:          manager.Render(state),
				Act:              state.LastAct,
				ConversationOver: state.ConversationOver,
			}
			if state.ExtraRequirementSuggestions != nil {
				resp.HandoffReady = true
				for _, r := range state.ExtraRequirementSuggestions {
					resp.Candidates = append(resp.Candidates, r.Name)
				}
			}

			if recorder != nil {
				if err := recorder.Append(session.ID, transcript.Snapshot(state, req.Message)); err != nil {
					slog.Error("failed to record turn", "session_id", session.ID, "error", err)
				}
			}
			return state
		})

		if resp.ConversationOver {
			outcome := "bye"
			if resp.HandoffReady {
				outcome = "handoff"
			}
			if observability.DefaultMetrics != nil {
				observability.DefaultMetrics.SessionsCompletedTotal.WithLabelValues(outcome).Inc()
			}
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetSession returns the inspectable state of a session.
//
// GET /v1/sessions/:id
func GetSession(registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := registry.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		var info datatypes.SessionInfo
		session.WithState(func(state *datatypes.DialogState) *datatypes.DialogState {
			info = datatypes.SessionInfo{
				SessionID:        session.ID,
				PriceRange:       state.PriceRange(),
				Area:             state.Area(),
				Food:             state.Food(),
				ConversationOver: state.ConversationOver,
			}
			if state.CurrentSuggestion != nil {
				info.CurrentSuggestion = state.CurrentSuggestion.Name
			}
			return state
		})

		c.JSON(http.StatusOK, info)
	}
}

// DeleteSession removes a session.
//
// DELETE /v1/sessions/:id
func DeleteSession(registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !registry.Delete(id) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		slog.Info("session deleted", "session_id", id)

		if observability.DefaultMetrics != nil {
			observability.DefaultMetrics.SessionsCompletedTotal.WithLabelValues("deleted").Inc()
			observability.DefaultMetrics.ActiveSessions.Set(float64(registry.Len()))
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "deleted_session_id": id})
	}
}

// FoodList returns all known food types, sorted.
//
// GET /v1/foodlist
func FoodList(catalog *datatypes.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		foods := append([]string(nil), catalog.FoodTypes()...)
		sort.Strings(foods)
		c.JSON(http.StatusOK, gin.H{"foods": foods})
	}
}

// HealthCheck reports liveness.
//
// GET /health
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
