// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore appends turn snapshots to a JSON array in a single file.
//
// # Description
//
// The whole array is rewritten on every append; transcripts are short
// (one conversation) and the format is consumed by replay tooling
// that wants one self-contained JSON document, so append-only framing
// is not worth the incompatibility.
//
// # Thread Safety
//
// Not safe for concurrent use. One store per session.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path. The file is created
// on first append.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append adds one turn to the transcript.
func (s *FileStore) Append(turn Turn) error {
	turns, err := s.Turns()
	if err != nil {
		return err
	}
	turns = append(turns, turn)

	data, err := json.MarshalIndent(turns, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// Turns reads the current transcript. A missing file is an empty
// transcript, not an error.
func (s *FileStore) Turns() ([]Turn, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	return turns, nil
}
