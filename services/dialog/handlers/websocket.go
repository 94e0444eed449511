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

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/manager"
	"github.com/AleutianAI/TableTalk/services/dialog/transcript"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func sendJSON(ws *websocket.Conn, v interface{}) error {
	err := ws.WriteJSON(v)
	if err != nil {
		slog.Warn("failed to write WebSocket JSON", "error", err)
	}
	return err
}

// SessionStream runs a session's turns over a WebSocket.
//
// GET /v1/sessions/:id/stream
//
// The client sends MessageRequest frames and receives MessageResponse
// frames. The server closes the connection once the conversation is
// over.
func SessionStream(mgr *manager.Manager, registry *Registry, recorder Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := registry.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("failed to upgrade the websocket", "error", err)
			return
		}
		defer ws.Close()
		slog.Info("websocket client connected", "session_id", session.ID)

		// Replay the current system message so a client attaching
		// mid-session sees the pending prompt.
		session.WithState(func(state *datatypes.DialogState) *datatypes.DialogState {
			_ = sendJSON(ws, datatypes.MessageResponse{
				Message:          manager.Render(state),
				Act:              state.LastAct,
				ConversationOver: state.ConversationOver,
			})
			return state
		})

		for {
			var req datatypes.MessageRequest
			if err := ws.ReadJSON(&req); err != nil {
				slog.Info("websocket client disconnected", "session_id", session.ID, "error", err.Error())
				return
			}

			over := false
			session.WithState(func(state *datatypes.DialogState) *datatypes.DialogState {
				state = mgr.Transition(c.Request.Context(), state, req.Message)

				resp := datatypes.MessageResponse{
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

				over = state.ConversationOver
				_ = sendJSON(ws, resp)
				return state
			})

			if over {
				return
			}
		}
	}
}
