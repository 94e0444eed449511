// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package classify

import (
	"context"
	"strings"
)

// actRule maps token or phrase evidence to an act. Rules are checked
// in order; the first hit wins.
type actRule struct {
	act     Act
	tokens  []string // whole-token matches
	phrases []string // substring matches
}

// ruleTable orders the keyword rules. More specific intents come
// before the generic yes/no rules so "no, anything else?" classifies
// as reqalts rather than negate.
var ruleTable = []actRule{
	{act: ActRestart, phrases: []string{"start over", "start again", "reset"}, tokens: []string{"restart"}},
	{act: ActRepeat, tokens: []string{"repeat", "again", "pardon"}},
	{act: ActBye, tokens: []string{"bye", "goodbye", "cya"}},
	{act: ActThankYou, tokens: []string{"thanks", "thank", "thankyou"}},
	{act: ActReqAlts, phrases: []string{"anything else", "what else", "what about", "how about", "other option", "something else", "next one", "another one"}},
	{act: ActReqMore, tokens: []string{"more"}},
	{act: ActRequest, tokens: []string{"phone", "phonenumber", "number", "address", "postcode", "post"}, phrases: []string{"can i get", "could i get", "what is the", "whats the"}},
	{act: ActConfirm, phrases: []string{"is it", "is that", "does it", "do they", "is there"}},
	{act: ActHello, tokens: []string{"hi", "hello", "hey", "halo"}},
	{act: ActNegate, tokens: []string{"no", "nope", "nah"}, phrases: []string{"not really"}},
	{act: ActDeny, phrases: []string{"dont want", "don't want", "i hate", "not that"}, tokens: []string{"wrong"}},
	{act: ActAffirm, tokens: []string{"yes", "yeah", "yep", "ye", "correct", "right", "perfect", "exactly"}},
	{act: ActAck, tokens: []string{"ok", "okay", "kay", "fine", "good", "um", "uhhu"}},
}

// RuleBased is a keyword dialog-act classifier.
//
// # Description
//
// A deterministic baseline that needs no model or network: it checks
// an ordered rule table of whole-token and phrase evidence and falls
// back to the majority class "inform" (most user turns in this domain
// state a preference). An empty utterance classifies as "null".
//
// # Thread Safety
//
// Stateless; safe for concurrent use.
type RuleBased struct{}

// NewRuleBased returns the keyword classifier.
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Classify maps an utterance onto the act set. Never returns an error.
func (c *RuleBased) Classify(_ context.Context, utterance string) (Act, error) {
	utterance = strings.ToLower(strings.TrimSpace(utterance))
	if utterance == "" {
		return ActNull, nil
	}

	tokens := strings.Fields(utterance)
	for _, rule := range ruleTable {
		for _, phrase := range rule.phrases {
			if strings.Contains(utterance, phrase) {
				return rule.act, nil
			}
		}
		for _, token := range tokens {
			for _, match := range rule.tokens {
				if token == match {
					return rule.act, nil
				}
			}
		}
	}

	return ActInform, nil
}
