// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package fuzzy implements the edit-distance keyword matcher used for
// typo-tolerant slot extraction.
//
// Naive Levenshtein over short domain words produces many false
// positives ("the" would correct to "thai"). The matcher therefore
// applies two guards before computing the distance, both returning a
// sentinel cost well above any usable threshold:
//
//  1. A candidate word found in a general English dictionary is never
//     corrected to a different keyword.
//  2. A candidate whose first letter differs from the keyword's is
//     never treated as a typo.
//
// These guards are domain-tuned and load-bearing for extraction
// accuracy; they must hold bit-for-bit, not just in spirit.
package fuzzy

import (
	_ "embed"
	"strings"
	"unicode/utf8"
)

//go:embed english_words.txt
var englishWordsData string

// SentinelCost is returned when one of the false-positive guards
// fires. It exceeds every usable threshold (thresholds are small,
// default 3, compared with strict less-than).
const SentinelCost = 10

// Matcher scores candidate words against domain keywords.
//
// # Thread Safety
//
// Read-only after construction; safe for concurrent use.
type Matcher struct {
	dictionary map[string]struct{}
}

// NewMatcher returns a matcher backed by the embedded English
// dictionary.
func NewMatcher() *Matcher {
	var words []string
	for _, line := range strings.Split(englishWordsData, "\n") {
		word := strings.TrimSpace(strings.ToLower(line))
		if word != "" && !strings.HasPrefix(word, "#") {
			words = append(words, word)
		}
	}
	return NewMatcherWithDictionary(words)
}

// NewMatcherWithDictionary returns a matcher with a custom dictionary.
// Useful for tests that need full control over the guard behavior.
func NewMatcherWithDictionary(words []string) *Matcher {
	dict := make(map[string]struct{}, len(words))
	for _, w := range words {
		dict[strings.ToLower(w)] = struct{}{}
	}
	return &Matcher{dictionary: dict}
}

// Distance returns the adjusted edit distance between a domain keyword
// and a candidate word. Lower is more similar; callers treat the pair
// as a match when the result is strictly below their threshold.
//
// # Inputs
//
//   - keyword: The domain keyword (catalog value or fixed cue phrase).
//   - word: The candidate token from the utterance.
//
// # Outputs
//
//   - int: SentinelCost when a guard fires, otherwise the Levenshtein
//     distance. Equal strings always score 0: the dictionary guard
//     only blocks corrections to a different keyword.
func (m *Matcher) Distance(keyword, word string) int {
	if _, inDictionary := m.dictionary[word]; inDictionary && word != keyword {
		return SentinelCost
	}
	if firstRune(keyword) != firstRune(word) {
		return SentinelCost
	}
	return Levenshtein(keyword, word)
}

// firstRune returns the first rune of s, or utf8.RuneError for the
// empty string (which can never equal a keyword's first rune).
func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Levenshtein computes the standard edit distance between two strings
// with unit-cost insertions, deletions and substitutions.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
