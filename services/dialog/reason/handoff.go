// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package reason

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/locales"
)

// Outcome is the result of the extra-requirements hand-off: the first
// candidate satisfying the chosen consequent, with its justification.
type Outcome struct {
	Suggestion RankedSuggestion
	Consequent string
}

// HandleExtraRequirements runs the post-dialog reasoning sub-dialog.
//
// # Description
//
// Control arrives here after the dialog controller terminates on an
// "additional requirements" command, carrying the candidate list it
// captured. The user is prompted until their reply names a configured
// consequent (substring match, so "make it romantic please" works),
// then the candidates are ranked and the first satisfying restaurant
// is returned.
//
// # Inputs
//
//   - candidates: The candidate list captured at hand-off time.
//   - in, out: The interactive prompt channel.
//   - strs: String set for the prompt.
//
// # Outputs
//
//   - *Outcome: Nil when no candidate satisfies the requirement, or
//     when input ends before a consequent is named.
//   - error: Non-nil only on configuration errors from Apply.
func (e *Engine) HandleExtraRequirements(candidates []datatypes.Restaurant, in io.Reader, out io.Writer, strs *locales.Strings) (*Outcome, error) {
	consequents := e.Consequents()
	alternation := make([]string, len(consequents))
	for i, c := range consequents {
		alternation[i] = regexp.QuoteMeta(c)
	}
	pattern := regexp.MustCompile("(" + strings.Join(alternation, "|") + ")")

	scanner := bufio.NewScanner(in)
	consequent := ""
	for consequent == "" {
		fmt.Fprintln(out, fmt.Sprintf(strs.AskConsequent, strings.Join(consequents, ", ")))
		if !scanner.Scan() {
			return nil, nil
		}
		consequent = pattern.FindString(strings.ToLower(scanner.Text()))
	}

	ranked, err := e.RankCandidates(candidates, consequent)
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}
	return &Outcome{Suggestion: ranked[0], Consequent: consequent}, nil
}
