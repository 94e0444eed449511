// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package manager implements the slot-filling dialog state machine.
//
// # Description
//
// The Manager is the orchestrator of one conversation turn: it runs
// the global override checks (reasoning hand-off, food list, settings
// entry), classifies the utterance into a dialog act, extracts slot
// preferences, resolves the typo-confirmation sub-flow, and dispatches
// on the act to produce the next state and outbound message.
//
// State lives entirely on datatypes.DialogState; the Manager itself is
// read-only after construction and shared across sessions.
package manager

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/AleutianAI/TableTalk/pkg/logging"
	"github.com/AleutianAI/TableTalk/services/dialog/classify"
	"github.com/AleutianAI/TableTalk/services/dialog/config"
	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/extract"
	"github.com/AleutianAI/TableTalk/services/dialog/fuzzy"
	"github.com/AleutianAI/TableTalk/services/dialog/locales"
	"github.com/AleutianAI/TableTalk/services/dialog/observability"
)

// ConfigSentinel is the exact utterance that enters the settings
// sub-dialog. Checked verbatim, no fuzzy matching.
const ConfigSentinel = "-config"

// Phrases matched fuzzily against the whole utterance by the global
// override checks.
const (
	handoffPhrase  = "additional requirements"
	foodlistPhrase = "foodlist"
)

// Manager drives dialog transitions over a fixed catalog.
//
// # Thread Safety
//
// Read-only after construction; safe to share across sessions. The
// DialogState passed to Transition is not — callers must serialize
// turns per session.
type Manager struct {
	catalog    *datatypes.Catalog
	classifier classify.ActClassifier
	extractor  *extract.Extractor
	matcher    *fuzzy.Matcher
	logger     *logging.Logger

	// Settings sub-dialog IO. Nil in server deployments, where the
	// sub-dialog is unavailable and -config answers with a refusal.
	settingsIn  io.Reader
	settingsOut io.Writer
}

// Option configures a Manager.
type Option func(*Manager)

// WithSettingsIO enables the interactive settings sub-dialog on the
// given channel. Without it, "-config" answers that settings are
// locked.
func WithSettingsIO(in io.Reader, out io.Writer) Option {
	return func(m *Manager) {
		m.settingsIn = in
		m.settingsOut = out
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger *logging.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager over a catalog and an act classifier.
//
// The fuzzy matcher and slot extractor are derived from the catalog's
// vocabularies.
func New(catalog *datatypes.Catalog, classifier classify.ActClassifier, opts ...Option) *Manager {
	matcher := fuzzy.NewMatcher()
	m := &Manager{
		catalog:    catalog,
		classifier: classifier,
		extractor:  extract.NewCatalogExtractor(matcher, catalog),
		matcher:    matcher,
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewSession creates the state for a fresh conversation: greeting plus
// the first missing-info prompt.
//
// A nil cfg gets the defaults.
func (m *Manager) NewSession(cfg *config.Config) *datatypes.DialogState {
	s := datatypes.NewDialogState(cfg)
	strs := locales.ForConfig(s.Config.Informal)

	greeting := strs.Greeting
	m.askForMissingInfo(s, strs)
	s.SystemMessage = greeting + "\n" + s.SystemMessage
	return s
}

// Transition processes one user utterance against the session state.
//
// # Description
//
// Order of evaluation, matching the state-machine contract:
//
//  1. Global overrides: reasoning hand-off ("additional
//     requirements"), food list, settings entry. These bypass act
//     classification entirely.
//  2. Act classification (a classifier error degrades to "null" with
//     a warning; the turn never fails).
//  3. Slot extraction against the pending preference request.
//  4. Typo-confirmation sub-flow: inexact matches suspend dispatch
//     and ask for confirmation; a pending confirmation replays the
//     stash on "affirm" and discards it on anything else.
//  5. Act dispatch.
//
// # Inputs
//
//   - ctx: Bounds the classifier call.
//   - s: The session state, mutated in place.
//   - utterance: Raw user input; lower-cased and trimmed here.
//
// # Outputs
//
//   - *datatypes.DialogState: The post-turn state. Usually s itself; a
//     "restart" act returns a fresh state carrying the same Config.
func (m *Manager) Transition(ctx context.Context, s *datatypes.DialogState, utterance string) *datatypes.DialogState {
	utterance = strings.ToLower(strings.TrimSpace(utterance))
	strs := locales.ForConfig(s.Config.Informal)

	if m.matcher.Distance(handoffPhrase, utterance) < s.Config.Levenshtein {
		s.ExtraRequirementSuggestions = s.CalculateCandidates(m.catalog.Restaurants())
		s.SystemMessage = ""
		s.ConversationOver = true
		return s
	}

	if m.matcher.Distance(foodlistPhrase, utterance) < s.Config.Levenshtein {
		foods := append([]string(nil), m.catalog.FoodTypes()...)
		sort.Strings(foods)
		s.SystemMessage = strs.FoodListHeader + "\n" + strings.Join(foods, "\n")
		return s
	}

	if utterance == ConfigSentinel {
		if m.settingsIn == nil || m.settingsOut == nil {
			s.SystemMessage = strs.SettingsLocked
		} else {
			s.Config.UpdateInteractive(m.settingsIn, m.settingsOut)
		}
		return s
	}

	act := m.classifyAct(ctx, utterance)
	extracted := m.extractor.Preferences(utterance, s.CurrentRequest, s.Config.Levenshtein)

	if s.Config.TypoCheck {
		if typos := extract.InexactWords(extracted); len(typos) > 0 {
			s.TypoList = append(s.TypoList, typos...)
			s.ConfirmTypo = true
			s.PreviousPreferences = extract.Keywords(extracted)
			s.PreviousAct = string(act)
			s.SystemMessage = fmt.Sprintf(strs.TypoConfirm, strings.Join(s.TypoList, " and "))
			s.TypoList = nil
			s.LastAct = string(act)
			return s
		}
	}

	keywords := extract.Keywords(extracted)

	if s.ConfirmTypo {
		if act == classify.ActAffirm {
			keywords = s.PreviousPreferences
			act = classify.Act(s.PreviousAct)
		}
		// One level deep: anything but an affirm discards the stash.
		s.ConfirmTypo = false
		s.PreviousPreferences = nil
		s.PreviousAct = ""
	}

	if s.Config.DebugMode {
		m.logger.Info("turn",
			"act", act,
			"pricerange", s.PriceRange(),
			"area", s.Area(),
			"food", s.Food(),
			"extracted", keywords,
		)
	}

	s = m.dispatch(s, act, keywords, utterance, strs)
	s.LastAct = string(act)
	observability.RecordTurn(string(act))

	if s.Config.DebugMode {
		m.logger.Info("turn complete",
			"pricerange", s.PriceRange(),
			"area", s.Area(),
			"food", s.Food(),
		)
	}
	return s
}

// classifyAct runs the classifier, degrading errors to the null act.
func (m *Manager) classifyAct(ctx context.Context, utterance string) classify.Act {
	start := time.Now()
	act, err := m.classifier.Classify(ctx, utterance)
	observability.RecordClassifierLatency(time.Since(start).Seconds())
	if err != nil {
		m.logger.Warn("act classification failed", "error", err)
		return classify.ActNull
	}
	return classify.Normalize(act)
}

// dispatch applies the act table. Unknown acts are no-ops: the state
// and message pass through unchanged.
func (m *Manager) dispatch(s *datatypes.DialogState, act classify.Act, keywords map[string][]string, utterance string, strs *locales.Strings) *datatypes.DialogState {
	switch act {
	case classify.ActRepeat:
		// SystemMessage persists across turns; leaving it untouched
		// re-emits the previous message verbatim.

	case classify.ActHello, classify.ActAffirm, classify.ActAck:
		m.tryToMakeSuggestion(s, strs)

	case classify.ActBye:
		s.ConversationOver = true
		s.SystemMessage = strs.Goodbye

	case classify.ActInform:
		s.UpdatePreferences(keywords)
		if s.CanSuggest() {
			s.SystemMessage = confirmationString(s, strs)
		} else {
			m.askForMissingInfo(s, strs)
		}

	case classify.ActNegate, classify.ActDeny:
		changed := s.UpdatePreferences(keywords)
		if s.CurrentSuggestion == nil {
			// The user is rejecting the preference confirmation.
			switch {
			case !s.CanSuggest():
				m.askForMissingInfo(s, strs)
			case changed:
				s.SystemMessage = confirmationString(s, strs)
			default:
				s.SystemMessage = strs.MisunderstandPref
			}
		} else {
			// The user is rejecting the suggestion itself.
			if changed {
				s.SystemMessage = confirmationString(s, strs)
			} else {
				s.AddExcludedRestaurant(*s.CurrentSuggestion)
			}
		}

	case classify.ActReqAlts, classify.ActReqMore:
		changed := s.UpdatePreferences(keywords)
		if changed && s.CanSuggest() {
			s.SystemMessage = confirmationString(s, strs)
		} else {
			m.tryToMakeSuggestion(s, strs)
		}

	case classify.ActThankYou:
		if s.CanSuggest() {
			s.SystemMessage = strs.YoureWelcome
			s.ConversationOver = true
		} else {
			m.askForMissingInfo(s, strs)
		}

	case classify.ActConfirm:
		s.SystemMessage = confirmationString(s, strs)

	case classify.ActRequest:
		if s.CurrentSuggestion != nil {
			requested := m.extractor.RequestedInfo(utterance, s.Config.Levenshtein)
			s.SystemMessage = requestString(s.CurrentSuggestion, requested, strs)
		} else {
			s.SystemMessage = strs.NoSuggestionYet
		}

	case classify.ActNull:
		s.SystemMessage = strs.DidNotUnderstand

	case classify.ActRestart:
		fresh := datatypes.NewDialogState(s.Config)
		m.askForMissingInfo(fresh, strs)
		return fresh
	}
	return s
}

// tryToMakeSuggestion advances to the next candidate, or prompts for
// whichever slot is still missing.
func (m *Manager) tryToMakeSuggestion(s *datatypes.DialogState, strs *locales.Strings) {
	if !s.CanSuggest() {
		m.askForMissingInfo(s, strs)
		return
	}

	if suggestion, ok := s.NextSuggestion(m.catalog.Restaurants()); ok {
		s.SystemMessage = suggestionString(suggestion, strs, true)
	} else {
		s.SystemMessage = strs.NoSuggestion
	}
}

// askForMissingInfo prompts for the first empty slot in precedence
// order (price, area, food) and records it as the pending request.
func (m *Manager) askForMissingInfo(s *datatypes.DialogState, strs *locales.Strings) {
	switch {
	case len(s.PriceRange()) == 0:
		s.SystemMessage = strs.AskPriceRange
		s.CurrentRequest = datatypes.PreferencePriceRange
	case len(s.Area()) == 0:
		s.SystemMessage = strs.AskArea
		s.CurrentRequest = datatypes.PreferenceArea
	case len(s.Food()) == 0:
		s.SystemMessage = strs.AskFood
		s.CurrentRequest = datatypes.PreferenceFood
	default:
		s.SystemMessage = strs.AskOther
	}
}
