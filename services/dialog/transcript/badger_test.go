// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package transcript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenBadger(BadgerConfig{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestBadgerStore_AppendAndTurns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		err := store.Append("session-a", Turn{
			UserInput: fmt.Sprintf("utterance %d", i),
			Act:       "inform",
		})
		require.NoError(t, err)
	}

	turns, err := store.Turns("session-a")
	require.NoError(t, err)
	require.Len(t, turns, 3)
	for i, turn := range turns {
		assert.Equal(t, fmt.Sprintf("utterance %d", i), turn.UserInput)
	}
}

func TestBadgerStore_SessionsAreIsolated(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Append("session-a", Turn{UserInput: "cheap"}))
	require.NoError(t, store.Append("session-b", Turn{UserInput: "expensive"}))
	require.NoError(t, store.Append("session-a", Turn{UserInput: "centre"}))

	a, err := store.Turns("session-a")
	require.NoError(t, err)
	require.Len(t, a, 2)
	assert.Equal(t, "cheap", a[0].UserInput)
	assert.Equal(t, "centre", a[1].UserInput)

	b, err := store.Turns("session-b")
	require.NoError(t, err)
	require.Len(t, b, 1)
	assert.Equal(t, "expensive", b[0].UserInput)
}

func TestBadgerStore_UnknownSessionIsEmpty(t *testing.T) {
	store := openTestStore(t)

	turns, err := store.Turns("never-seen")
	require.NoError(t, err)
	assert.Empty(t, turns)
}
