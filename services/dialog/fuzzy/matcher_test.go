// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "phone", "phone", 0},
		{"empty left", "", "food", 4},
		{"empty right", "food", "", 4},
		{"single deletion", "address", "adress", 1},
		{"single substitution", "thai", "thao", 1},
		{"transposition costs two", "centre", "cetnre", 2},
		{"unrelated words", "kitten", "sitting", 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Levenshtein(tc.a, tc.b))
		})
	}
}

func TestMatcherDistance_Boundaries(t *testing.T) {
	m := NewMatcher()

	t.Run("exact match is zero", func(t *testing.T) {
		assert.Equal(t, 0, m.Distance("phone", "phone"))
	})

	t.Run("first letter mismatch hits the sentinel", func(t *testing.T) {
		assert.Equal(t, SentinelCost, m.Distance("phone", "hello"))
	})

	t.Run("one deletion stays under the default threshold", func(t *testing.T) {
		assert.Less(t, m.Distance("address", "adress"), 3)
	})

	t.Run("dictionary word is never a typo of a keyword", func(t *testing.T) {
		// "want" is a common English word; it must not fuzzy-match the
		// keyword "west" even though both start with 'w'.
		assert.Equal(t, SentinelCost, m.Distance("west", "want"))
	})

	t.Run("dictionary guard exempts equality", func(t *testing.T) {
		// "centre" sits in the dictionary and is also a domain keyword;
		// an exact hit must still score zero.
		assert.Equal(t, 0, m.Distance("centre", "centre"))
	})
}

func TestMatcherWithDictionary(t *testing.T) {
	m := NewMatcherWithDictionary([]string{"cheep"})

	// The custom dictionary knows "cheep", so it cannot be treated as
	// a typo of "cheap"; "chep" is not a word and can.
	assert.Equal(t, SentinelCost, m.Distance("cheap", "cheep"))
	assert.Equal(t, 1, m.Distance("cheap", "chep"))
}
