// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package logging

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestNew_TextOutput(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Service: "dialog", Output: &buf})

	logger.Info("session created", "session_id", "abc-123")

	out := buf.String()
	assert.Contains(t, out, "session created")
	assert.Contains(t, out, "service=dialog")
	assert.Contains(t, out, "session_id=abc-123")
}

func TestNew_JSONOutput(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Service: "dialog", JSON: true, Output: &buf})

	logger.Warn("act classification failed", "error", "model unavailable")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(buf.String()), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "act classification failed", entry["msg"])
	assert.Equal(t, "dialog", entry["service"])
	assert.Equal(t, "model unavailable", entry["error"])
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Run("default level drops debug", func(t *testing.T) {
		var buf strings.Builder
		logger := New(Config{Output: &buf})

		logger.Debug("verbose detail")
		assert.Empty(t, buf.String())

		logger.Info("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("debug level keeps everything", func(t *testing.T) {
		var buf strings.Builder
		logger := New(Config{Level: LevelDebug, Output: &buf})

		logger.Debug("verbose detail")
		assert.Contains(t, buf.String(), "verbose detail")
	})

	t.Run("error level drops warnings", func(t *testing.T) {
		var buf strings.Builder
		logger := New(Config{Level: LevelError, Output: &buf})

		logger.Warn("recoverable")
		assert.Empty(t, buf.String())

		logger.Error("failed")
		assert.Contains(t, buf.String(), "failed")
	})
}

func TestNew_QuietDiscardsOutput(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Quiet: true, Output: &buf})

	logger.Error("should not appear")
	assert.Empty(t, buf.String())
}

func TestWith(t *testing.T) {
	var buf strings.Builder
	logger := New(Config{Output: &buf}).With("session_id", "abc-123")

	logger.Info("turn")
	assert.Contains(t, buf.String(), "session_id=abc-123")
}
