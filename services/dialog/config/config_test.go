// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3, cfg.Levenshtein)
	assert.Zero(t, cfg.SystemDelay)
	assert.False(t, cfg.CapsLock)
	assert.False(t, cfg.TypoCheck)
	assert.False(t, cfg.DebugMode)
	assert.False(t, cfg.Informal)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Bounds(t *testing.T) {
	cfg := Default()

	cfg.Levenshtein = 0
	assert.Error(t, cfg.Validate())

	cfg.Levenshtein = 11
	assert.Error(t, cfg.Validate())

	cfg.Levenshtein = 10
	assert.NoError(t, cfg.Validate())

	cfg.SystemDelay = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	t.Run("valid file with partial keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("caps_lock: true\nlevenshtein: 2\n"), 0o644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.True(t, cfg.CapsLock)
		assert.Equal(t, 2, cfg.Levenshtein)
		// Missing keys keep their defaults.
		assert.False(t, cfg.TypoCheck)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("out of bounds value fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("levenshtein: 42\n"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "capslock true",
			line: "capslock true",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.CapsLock)
			},
		},
		{
			name: "capslock case insensitive",
			line: "capslock TRUE",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.CapsLock)
			},
		},
		{
			name: "anything but true disables",
			line: "typochecker yes",
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.TypoCheck)
			},
		},
		{
			name: "levenshtein takes first integer token",
			line: "levenshtein about 2 maybe",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 2, cfg.Levenshtein)
			},
		},
		{
			name: "levenshtein without a number is ignored",
			line: "levenshtein lots",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Levenshtein)
			},
		},
		{
			name: "system delay takes first float",
			line: "system-delay 0.5",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0.5, cfg.SystemDelay)
			},
		},
		{
			name: "debug toggles",
			line: "debug true",
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.DebugMode)
			},
		},
		{
			name: "unrecognized setting is ignored",
			line: "volume 11",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "empty line is ignored",
			line: "   ",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), *cfg)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			done := cfg.ApplySetting(tc.line)
			assert.False(t, done)
			tc.check(t, &cfg)
		})
	}

	t.Run("return ends the dialog", func(t *testing.T) {
		cfg := Default()
		assert.True(t, cfg.ApplySetting("return"))
	})
}

func TestUpdateInteractive(t *testing.T) {
	cfg := Default()
	in := strings.NewReader("capslock true\nlevenshtein 5\nreturn\n")
	var out strings.Builder

	cfg.UpdateInteractive(in, &out)

	assert.True(t, cfg.CapsLock)
	assert.Equal(t, 5, cfg.Levenshtein)
	assert.Contains(t, out.String(), "Current settings:")

	t.Run("eof exits the loop", func(t *testing.T) {
		cfg := Default()
		cfg.UpdateInteractive(strings.NewReader("capslock true\n"), &strings.Builder{})
		assert.True(t, cfg.CapsLock)
	})
}
