// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config holds the per-session dialog configuration and the
// interactive settings sub-dialog used to change it mid-conversation.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults for a fresh session.
const (
	DefaultLevenshtein = 3
	DefaultSystemDelay = 0
)

// Config is the per-session dialog configuration.
//
// # Description
//
// Injected once at session creation and orthogonal to the conversation
// state. Mutable afterwards only through the settings sub-dialog.
//
// # Fields
//
//   - CapsLock: Emit system messages in upper case.
//   - TypoCheck: Confirm fuzzy-matched (non-exact) keywords with the
//     user before committing them as preferences.
//   - Levenshtein: Strict upper bound on edit distance for a keyword
//     match (a word matches when distance < Levenshtein).
//   - SystemDelay: Seconds to sleep before emitting a message. Pure
//     UX pacing, skipped when zero.
//   - DebugMode: Log act and preference details on every turn.
//   - Informal: Select the informal string set instead of the neutral
//     one.
type Config struct {
	CapsLock    bool    `yaml:"caps_lock"`
	TypoCheck   bool    `yaml:"typo_check"`
	Levenshtein int     `yaml:"levenshtein" validate:"gte=1,lte=10"`
	SystemDelay float64 `yaml:"system_delay" validate:"gte=0"`
	DebugMode   bool    `yaml:"debug_mode"`
	Informal    bool    `yaml:"informal"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Levenshtein: DefaultLevenshtein,
		SystemDelay: DefaultSystemDelay,
	}
}

// LoadFile reads and validates a YAML config file.
//
// # Inputs
//
//   - path: Path to the YAML file. Missing keys keep their defaults.
//
// # Outputs
//
//   - Config: The merged configuration.
//   - error: Non-nil when the file is unreadable, malformed, or fails
//     validation. Callers should fail fast; a bad config file is a
//     deployment error.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
