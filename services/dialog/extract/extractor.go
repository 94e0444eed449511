// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package extract scans user utterances for restaurant preference
// mentions (price range, area, food type), "don't care" phrasing, and
// requested-detail keywords (phone number, address, postcode).
//
// Keyword vocabularies are injected at construction from the catalog
// rather than read from package globals, so tests can run with a
// custom vocabulary.
package extract

import (
	"regexp"
	"strings"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/fuzzy"
)

// Match is one keyword hit for a slot. Exact records whether the
// utterance token equalled the keyword; inexact matches are the
// candidates for typo confirmation.
type Match struct {
	Keyword string
	Exact   bool
}

// Requested-detail keys returned by RequestedInfo.
const (
	InfoPhoneNumber = "phone number"
	InfoAddress     = "address"
	InfoPostcode    = "postcode"
)

// anyPatterns match "no preference" phrasing. Checked in order; a
// later pattern can override an earlier slot assignment.
var anyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(doesn'?t|don'?t|does not|do not)\s?\w*?\s?(matter|care|mind)`),
	regexp.MustCompile(`\bany`),
	regexp.MustCompile(`no\spref(?:erence)?s?`),
}

// Cue words used to decide which slot a "don't care" phrase refers to,
// by character proximity to the phrase.
var (
	foodCueWords  = []string{"food", "type", "cuisine"}
	priceCueWords = []string{"price", "pricerange", "money", "cost"}
	areaCueWords  = []string{"part", "town", "city", "location", "area"}
)

// Fixed vocabularies for requested-detail extraction.
var (
	postcodeKeywords = []string{"postcode", "post", "postal"}
	addressKeywords  = []string{"address", "where", "location"}
	phoneKeywords    = []string{"phone", "number", "phonenumber"}
)

// Extractor finds slot values in utterances using the fuzzy matcher
// and catalog-derived keyword lists.
//
// # Thread Safety
//
// Read-only after construction; safe for concurrent use.
type Extractor struct {
	matcher *fuzzy.Matcher
	foods   []string
	areas   []string
	prices  []string
}

// NewExtractor builds an extractor over the given vocabularies.
//
// # Inputs
//
//   - matcher: The fuzzy matcher to score tokens with.
//   - foods, areas, prices: Keyword lists in a stable order; the first
//     matching keyword per list wins for a token, so order matters.
func NewExtractor(matcher *fuzzy.Matcher, foods, areas, prices []string) *Extractor {
	return &Extractor{
		matcher: matcher,
		foods:   foods,
		areas:   areas,
		prices:  prices,
	}
}

// NewCatalogExtractor builds an extractor from a catalog's derived
// vocabularies.
func NewCatalogExtractor(matcher *fuzzy.Matcher, catalog *datatypes.Catalog) *Extractor {
	return NewExtractor(matcher, catalog.FoodTypes(), catalog.Areas(), catalog.PriceRanges())
}

// Preferences extracts slot mentions from an utterance.
//
// # Description
//
// Two passes over the utterance:
//
//  1. "Don't care" detection. For each any-pattern that matches, the
//     character offset of the matched phrase is located and the cue
//     word (food, area or price) nearest to it decides which slot is
//     set to the "any" sentinel. When no cue word occurs anywhere in
//     the utterance, the slot named by pending wins instead — but
//     only if a specific slot was last asked for.
//
//  2. Token scan. Each whitespace token is tested against the food,
//     area and price vocabularies through the fuzzy matcher. The
//     first keyword to match wins per category ("center" is
//     normalized to "centre" before the area test); a token can match
//     at most once per category but independently across categories.
//
// # Inputs
//
//   - utterance: The lower-cased user input.
//   - pending: The slot the system last asked for; the fallback
//     target for a bare "don't care".
//   - threshold: Strict upper bound for fuzzy match distance.
//
// # Outputs
//
//   - map[string][]Match: Only slots that received at least one match
//     are present. The cue-adjacent slot of a "don't care" can differ
//     from pending by design.
func (e *Extractor) Preferences(utterance string, pending datatypes.PreferenceRequest, threshold int) map[string][]Match {
	result := make(map[string][]Match)
	pendingAny := false

	for _, pattern := range anyPatterns {
		phrase := pattern.FindString(utterance)
		if phrase == "" {
			continue
		}
		anyLocation := strings.Index(utterance, phrase)
		if slot := nearestCueSlot(utterance, anyLocation); slot != "" {
			result[slot] = []Match{{Keyword: datatypes.AnyPreference, Exact: true}}
		} else {
			pendingAny = true
		}
	}

	var foodMatches, areaMatches, priceMatches []Match
	for _, word := range strings.Fields(utterance) {
		for _, keyword := range e.foods {
			if e.matcher.Distance(keyword, word) < threshold {
				foodMatches = append(foodMatches, Match{Keyword: keyword, Exact: keyword == word})
				result[datatypes.SlotFood] = foodMatches
				break
			}
		}

		areaWord := word
		if areaWord == "center" {
			areaWord = "centre"
		}
		for _, keyword := range e.areas {
			if e.matcher.Distance(keyword, areaWord) < threshold {
				areaMatches = append(areaMatches, Match{Keyword: keyword, Exact: keyword == areaWord})
				result[datatypes.SlotArea] = areaMatches
				break
			}
		}

		for _, keyword := range e.prices {
			if e.matcher.Distance(keyword, word) < threshold {
				priceMatches = append(priceMatches, Match{Keyword: keyword, Exact: keyword == word})
				result[datatypes.SlotPriceRange] = priceMatches
				break
			}
		}
	}

	if pendingAny && pending != datatypes.PreferenceAny {
		result[string(pending)] = []Match{{Keyword: datatypes.AnyPreference, Exact: true}}
	}

	return result
}

// nearestCueSlot finds the slot whose cue word sits closest to the
// "don't care" phrase at anyLocation, or "" when no cue word occurs
// in the utterance. Ties keep the earlier list (food, then area, then
// price), matching the strict less-than comparison.
func nearestCueSlot(utterance string, anyLocation int) string {
	smallest := -1
	slot := ""

	consider := func(words []string, candidate string) {
		for _, word := range words {
			if word == "center" {
				word = "centre"
			}
			idx := strings.Index(utterance, word)
			if idx < 0 {
				continue
			}
			distance := idx - anyLocation
			if distance < 0 {
				distance = -distance
			}
			if smallest < 0 || distance < smallest {
				smallest = distance
				slot = candidate
			}
		}
	}

	consider(foodCueWords, datatypes.SlotFood)
	consider(areaCueWords, datatypes.SlotArea)
	consider(priceCueWords, datatypes.SlotPriceRange)
	return slot
}

// RequestedInfo extracts which restaurant details an utterance asks
// for (phone number, address, postcode) by fuzzy-matching tokens
// against three small fixed keyword lists.
//
// # Outputs
//
//   - map[string]bool: Set of InfoPhoneNumber / InfoAddress /
//     InfoPostcode keys that were requested.
func (e *Extractor) RequestedInfo(utterance string, threshold int) map[string]bool {
	requested := make(map[string]bool)
	vocabularies := map[string][]string{
		InfoPostcode:    postcodeKeywords,
		InfoAddress:     addressKeywords,
		InfoPhoneNumber: phoneKeywords,
	}

	for _, word := range strings.Fields(utterance) {
		for info, keywords := range vocabularies {
			for _, keyword := range keywords {
				if e.matcher.Distance(keyword, word) < threshold {
					requested[info] = true
					break
				}
			}
		}
	}
	return requested
}

// Keywords strips match metadata, leaving only the keyword lists per
// slot. This is the shape the preference store consumes once typo
// confirmation is resolved.
func Keywords(extracted map[string][]Match) map[string][]string {
	plain := make(map[string][]string, len(extracted))
	for slot, matches := range extracted {
		values := make([]string, len(matches))
		for i, m := range matches {
			values[i] = m.Keyword
		}
		plain[slot] = values
	}
	return plain
}

// InexactWords returns the matched words that were not exact keyword
// hits, in slot order (price, area, food), for typo confirmation.
func InexactWords(extracted map[string][]Match) []string {
	var words []string
	for _, slot := range []string{datatypes.SlotPriceRange, datatypes.SlotArea, datatypes.SlotFood} {
		for _, m := range extracted[slot] {
			if !m.Exact {
				words = append(words, m.Keyword)
			}
		}
	}
	return words
}
