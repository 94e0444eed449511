// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package manager

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AleutianAI/TableTalk/services/dialog/datatypes"
	"github.com/AleutianAI/TableTalk/services/dialog/extract"
	"github.com/AleutianAI/TableTalk/services/dialog/locales"
)

// suggestionString renders a suggestion. askForAdditional appends the
// extra-requirements hint; the post-dialog reasoning layer renders
// without it.
func suggestionString(r datatypes.Restaurant, strs *locales.Strings, askForAdditional bool) string {
	msg := fmt.Sprintf(strs.SuggestionInitial, r.Name, r.PriceRange, r.Food, r.Area)
	if askForAdditional {
		msg += " " + strs.AskAdditionalReqs
	}
	return msg
}

// SuggestionString renders a suggestion without the
// extra-requirements hint, for callers outside the turn loop.
func SuggestionString(r datatypes.Restaurant, strs *locales.Strings) string {
	return suggestionString(r, strs, false)
}

// confirmationString re-states the current slot values as a yes/no
// question. Slots holding the "any" sentinel get the dedicated
// phrasing instead of echoing "any" back.
func confirmationString(s *datatypes.DialogState, strs *locales.Strings) string {
	priceLine := fmt.Sprintf(strs.ConfirmPriceRange, strings.Join(s.PriceRange(), ", "))
	if slices.Contains(s.PriceRange(), datatypes.AnyPreference) {
		priceLine = strs.ConfirmPriceRangeAny
	}

	areaLine := fmt.Sprintf(strs.ConfirmArea, strings.Join(s.Area(), ", "))
	if slices.Contains(s.Area(), datatypes.AnyPreference) {
		areaLine = strs.ConfirmAreaAny
	}

	foodLine := fmt.Sprintf(strs.ConfirmFood, strings.Join(s.Food(), ", "))

	return strs.ConfirmationInitial + "\n" + priceLine + "\n" + areaLine + "\n" + foodLine
}

// requestString answers a detail request for the suggested
// restaurant, covering only the fields actually asked for and
// substituting the unknown phrase for empty fields.
func requestString(r *datatypes.Restaurant, requested map[string]bool, strs *locales.Strings) string {
	orUnknown := func(value string) string {
		if value == "" {
			return strs.RequestUnknown
		}
		return value
	}

	msg := fmt.Sprintf(strs.RequestInitial, r.Name)
	if requested[extract.InfoPhoneNumber] {
		msg += "\n- " + fmt.Sprintf(strs.RequestPhone, orUnknown(r.Phone))
	}
	if requested[extract.InfoAddress] {
		msg += "\n- " + fmt.Sprintf(strs.RequestAddress, orUnknown(r.Address))
	}
	if requested[extract.InfoPostcode] {
		msg += "\n- " + fmt.Sprintf(strs.RequestPostcode, orUnknown(r.Postcode))
	}
	return msg
}
