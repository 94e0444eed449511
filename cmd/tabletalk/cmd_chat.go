// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/TableTalk/data"
	"github.com/AleutianAI/TableTalk/pkg/logging"
	"github.com/AleutianAI/TableTalk/pkg/ux"
	"github.com/AleutianAI/TableTalk/services/dialog/classify"
	"github.com/AleutianAI/TableTalk/services/dialog/config"
	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/locales"
	"github.com/AleutianAI/TableTalk/services/dialog/manager"
	"github.com/AleutianAI/TableTalk/services/dialog/reason"
	"github.com/AleutianAI/TableTalk/services/dialog/transcript"
)

// loadCatalog reads the catalog from --data, or the bundled one.
func loadCatalog() (*datatypes.Catalog, error) {
	if dataPath != "" {
		return datatypes.LoadCatalog(dataPath)
	}
	return datatypes.ReadCatalog(bytes.NewReader(data.RestaurantInfo))
}

// buildSessionConfig merges the config file and the command flags.
// Flags win over the file, but only when actually set.
func buildSessionConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("caps-lock") {
		cfg.CapsLock = capsLock
	}
	if cmd.Flags().Changed("typo-check") {
		cfg.TypoCheck = typoCheck
	}
	if cmd.Flags().Changed("levenshtein") {
		cfg.Levenshtein = levenshtein
	}
	if cmd.Flags().Changed("system-delay") {
		cfg.SystemDelay = systemDelay
	}
	if cmd.Flags().Changed("debug") {
		cfg.DebugMode = debugMode
	}
	if cmd.Flags().Changed("informal") {
		cfg.Informal = informal
	}
	return cfg, cfg.Validate()
}

// buildClassifier selects the act classifier implementation.
func buildClassifier() (classify.ActClassifier, error) {
	switch classifierKind {
	case "", "rules":
		return classify.NewRuleBased(), nil
	case "llm":
		return classify.NewLLMClassifier()
	default:
		return nil, fmt.Errorf("unknown classifier %q (want 'rules' or 'llm')", classifierKind)
	}
}

// runChat drives the interactive conversation loop.
func runChat(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	cfg, err := buildSessionConfig(cmd)
	if err != nil {
		return err
	}

	classifier, err := buildClassifier()
	if err != nil {
		return err
	}

	// Debug logs go to stderr; everything else stays quiet so log
	// lines don't interleave with the conversation.
	logCfg := logging.Config{Service: "tabletalk", Quiet: !cfg.DebugMode}
	if cfg.DebugMode {
		logCfg.Level = logging.LevelDebug
	}
	logger := logging.New(logCfg)

	mgr := manager.New(catalog, classifier,
		manager.WithSettingsIO(os.Stdin, os.Stdout),
		manager.WithLogger(logger),
	)

	var store *transcript.FileStore
	if transcriptPath != "" {
		store = transcript.NewFileStore(transcriptPath)
	}

	state := mgr.NewSession(&cfg)
	fmt.Println(ux.Styles.Title.Render("TableTalk"))
	manager.Emit(os.Stdout, state)

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for !state.ConversationOver {
		fmt.Print(ux.PromptMarker())
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()

		state = mgr.Transition(ctx, state, input)
		manager.Emit(os.Stdout, state)

		if store != nil {
			if err := store.Append(transcript.Snapshot(state, strings.ToLower(strings.TrimSpace(input)))); err != nil {
				logger.Error("failed to record turn", "error", err)
			}
		}
	}

	if state.ExtraRequirementSuggestions != nil {
		return runReasoning(state)
	}
	return nil
}

// runReasoning runs the post-dialog extra-requirements hand-off.
func runReasoning(state *datatypes.DialogState) error {
	rules := reason.DefaultRules()
	if rulesPath != "" {
		loaded, err := reason.LoadRules(rulesPath)
		if err != nil {
			return fmt.Errorf("load rules: %w", err)
		}
		rules = loaded
	}
	engine := reason.NewEngine(rules)
	strs := locales.ForConfig(state.Config.Informal)

	outcome, err := engine.HandleExtraRequirements(
		state.ExtraRequirementSuggestions, os.Stdin, os.Stdout, strs)
	if err != nil {
		return err
	}
	if outcome == nil {
		fmt.Println(strs.NoInferenceMatch)
		return nil
	}

	r := outcome.Suggestion.Restaurant
	fmt.Println(manager.SuggestionString(r, strs))
	fmt.Println(fmt.Sprintf(strs.SuggestionDetails, r.Crowdedness, r.LengthOfStay, r.FoodQuality))
	fmt.Println(fmt.Sprintf(strs.InferenceOutcome, outcome.Consequent, outcome.Suggestion.Reason))
	return nil
}

// runFoodlist prints the sorted food vocabulary.
func runFoodlist(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	foods := append([]string(nil), catalog.FoodTypes()...)
	sort.Strings(foods)
	for _, food := range foods {
		fmt.Println(food)
	}
	return nil
}
