// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// --- Global Command Variables ---
var (
	dataPath       string
	configPath     string
	rulesPath      string
	classifierKind string
	transcriptPath string

	capsLock    bool
	typoCheck   bool
	levenshtein int
	systemDelay float64
	debugMode   bool
	informal    bool

	serveAddr string
	storeDir  string

	rootCmd = &cobra.Command{
		Use:   "tabletalk",
		Short: "A text-based restaurant recommendation dialog agent",
		Long: `TableTalk is a slot-filling dialog system: it asks for your price
range, area and food preferences, suggests matching restaurants, and
can reason about additional requirements like "romantic" or
"touristic".`,
	}

	chatCmd = &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive recommendation conversation",
		RunE:  runChat, // Defined in cmd_chat.go
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the dialog system as an HTTP/WebSocket service",
		RunE:  runServe, // Defined in cmd_serve.go
	}

	foodlistCmd = &cobra.Command{
		Use:   "foodlist",
		Short: "Print all food types known to the catalog",
		RunE:  runFoodlist, // Defined in cmd_chat.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the TableTalk version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("tabletalk", Version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "",
		"Path to the restaurant catalog CSV (default: bundled catalog)")

	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML session config file")
	chatCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a YAML inference rules file (default: built-in rules)")
	chatCmd.Flags().StringVar(&classifierKind, "classifier", "rules",
		"Dialog act classifier: 'rules' (offline keyword rules) or 'llm' (OpenAI-compatible endpoint)")
	chatCmd.Flags().StringVar(&transcriptPath, "transcript", "", "Record turn snapshots to a JSON transcript file")
	chatCmd.Flags().BoolVar(&capsLock, "caps-lock", false, "Emit system messages in upper case")
	chatCmd.Flags().BoolVar(&typoCheck, "typo-check", false, "Confirm fuzzy-matched keywords before applying them")
	chatCmd.Flags().IntVar(&levenshtein, "levenshtein", 0, "Fuzzy match threshold (1-10, default 3)")
	chatCmd.Flags().Float64Var(&systemDelay, "system-delay", 0, "Seconds to wait before each system message")
	chatCmd.Flags().BoolVar(&debugMode, "debug", false, "Log act and preference details on every turn")
	chatCmd.Flags().BoolVar(&informal, "informal", false, "Use the informal message set")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":12240", "Listen address")
	serveCmd.Flags().StringVar(&storeDir, "store-dir", "", "Directory for the transcript store (empty disables recording)")
	serveCmd.Flags().StringVar(&classifierKind, "classifier", "rules",
		"Dialog act classifier: 'rules' or 'llm'")

	rootCmd.AddCommand(foodlistCmd)
	rootCmd.AddCommand(versionCmd)
}
