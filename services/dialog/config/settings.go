// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// UpdateInteractive runs the settings sub-dialog until the user types
// "return".
//
// # Description
//
// The grammar is a simple "key value" line protocol:
//
//	return              exit the settings dialog
//	capslock <bool>     toggle upper-case output
//	typochecker <bool>  toggle typo confirmation
//	levenshtein <int>   set the fuzzy-match threshold
//	system-delay <float> set the output delay in seconds
//	debug <bool>        toggle debug logging
//
// Unrecognized lines are ignored. Boolean values follow the original
// system's rule: exactly "true" (case-insensitive) enables, anything
// else disables. Numeric settings take the first parseable token on
// the line and are ignored when none is present.
//
// # Inputs
//
//   - in: Source of user lines (typically stdin).
//   - out: Destination for the settings display and prompt.
func (c *Config) UpdateInteractive(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Current settings:\n"+
			"capslock:\t\t%v\n"+
			"typochecker:\t\t%v\n"+
			"levenshtein distance:\t%d\n"+
			"system delay:\t\t%g seconds\n"+
			"debug:\t\t\t%v\n",
			c.CapsLock, c.TypoCheck, c.Levenshtein, c.SystemDelay, c.DebugMode)
		fmt.Fprint(out, "To change a setting, type \"[setting] [value]\", e.g. \"capslock true\".\nTo go back, type 'return':\n")

		if !scanner.Scan() {
			return
		}
		if c.ApplySetting(scanner.Text()) {
			return
		}
	}
}

// ApplySetting applies one settings line in place.
//
// # Outputs
//
//   - bool: True when the line was "return" and the dialog should end.
func (c *Config) ApplySetting(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch fields[0] {
	case "return":
		return true
	case "capslock":
		if len(fields) > 1 {
			c.CapsLock = strings.EqualFold(fields[1], "true")
		}
	case "typochecker":
		if len(fields) > 1 {
			c.TypoCheck = strings.EqualFold(fields[1], "true")
		}
	case "levenshtein":
		for _, f := range fields[1:] {
			if v, err := strconv.Atoi(f); err == nil {
				c.Levenshtein = v
				break
			}
		}
	case "system-delay":
		for _, f := range fields[1:] {
			if v, err := strconv.ParseFloat(f, 64); err == nil {
				c.SystemDelay = v
				break
			}
		}
	case "debug":
		if len(fields) > 1 {
			c.DebugMode = strings.EqualFold(fields[1], "true")
		}
	}
	return false
}
