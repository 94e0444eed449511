// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package routes wires the dialog service HTTP surface.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/handlers"
	"github.com/AleutianAI/TableTalk/services/dialog/manager"
)

// SetupRoutes registers all dialog service routes on the router.
//
// recorder may be nil to disable transcript recording.
func SetupRoutes(router *gin.Engine, mgr *manager.Manager, catalog *datatypes.Catalog,
	registry *handlers.Registry, recorder handlers.Recorder) {

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	{
		v1.GET("/foodlist", handlers.FoodList(catalog))

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handlers.CreateSession(mgr, registry))
			sessions.GET("/:id", handlers.GetSession(registry))
			sessions.DELETE("/:id", handlers.DeleteSession(registry))
			sessions.POST("/:id/messages", handlers.PostMessage(mgr, registry, recorder))
			sessions.GET("/:id/stream", handlers.SessionStream(mgr, registry, recorder))
		}
	}
}
