// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/TableTalk/pkg/logging"
	"github.com/AleutianAI/TableTalk/services/dialog/handlers"
	"github.com/AleutianAI/TableTalk/services/dialog/manager"
	"github.com/AleutianAI/TableTalk/services/dialog/observability"
	"github.com/AleutianAI/TableTalk/services/dialog/routes"
	"github.com/AleutianAI/TableTalk/services/dialog/transcript"
)

// runServe hosts the dialog system as an HTTP/WebSocket service.
func runServe(cmd *cobra.Command, args []string) error {
	logger := logging.New(logging.Config{Service: "tabletalk-server", JSON: true})

	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	classifier, err := buildClassifier()
	if err != nil {
		return err
	}

	observability.InitMetrics()

	// No settings IO: server sessions fix their settings at creation.
	mgr := manager.New(catalog, classifier, manager.WithLogger(logger))
	registry := handlers.NewRegistry()

	var recorder handlers.Recorder
	if storeDir != "" {
		store, err := transcript.OpenBadger(transcript.BadgerConfig{Path: storeDir})
		if err != nil {
			return fmt.Errorf("open transcript store: %w", err)
		}
		defer store.Close()
		recorder = store
		logger.Info("transcript recording enabled", "dir", storeDir)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, mgr, catalog, registry, recorder)

	srv := &http.Server{
		Addr:              serveAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", serveAddr, "restaurants", catalog.Len())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
