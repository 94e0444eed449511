// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package manager

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
)

// Render returns the outbound message with the session's presentation
// settings applied. Empty when the state has nothing to say.
func Render(s *datatypes.DialogState) string {
	msg := s.SystemMessage
	if s.Config.CapsLock {
		msg = strings.ToUpper(msg)
	}
	return msg
}

// Emit writes the rendered message to w, honoring the configured
// system delay. A state with no message emits nothing.
func Emit(w io.Writer, s *datatypes.DialogState) {
	msg := Render(s)
	if msg == "" {
		return
	}
	if s.Config.SystemDelay > 0 {
		time.Sleep(time.Duration(s.Config.SystemDelay * float64(time.Second)))
	}
	fmt.Fprintln(w, msg)
}
