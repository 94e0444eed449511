// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes defines the core data model for the TableTalk
// dialog system: restaurant records, the immutable catalog they are
// loaded into, and the per-session dialog state.
package datatypes

// Restaurant is a single immutable catalog record.
//
// # Description
//
// Identity is the full value: two records are the same restaurant only
// when every field matches. This makes the struct directly comparable,
// which the exclusion set and candidate dedup rely on.
//
// # Thread Safety
//
// Restaurant values are immutable after loading and safe to share.
type Restaurant struct {
	Name         string `json:"name"`
	PriceRange   string `json:"pricerange"`
	Area         string `json:"area"`
	Crowdedness  string `json:"crowdedness"`
	LengthOfStay string `json:"length_of_stay"`
	Food         string `json:"food"`
	FoodQuality  string `json:"food_quality"`
	Phone        string `json:"phone"`
	Address      string `json:"addr"`
	Postcode     string `json:"postcode"`
}

// Attribute returns the named field value for rule evaluation.
//
// # Inputs
//
//   - name: One of "pricerange", "area", "food", "crowdedness",
//     "length_of_stay", "food_quality", "name", "phone", "addr",
//     "postcode".
//
// # Outputs
//
//   - string: The field value.
//   - bool: False when the attribute name is unknown. An unknown name
//     is a configuration error, not user input; callers fail fast.
func (r Restaurant) Attribute(name string) (string, bool) {
	switch name {
	case "name":
		return r.Name, true
	case "pricerange":
		return r.PriceRange, true
	case "area":
		return r.Area, true
	case "crowdedness":
		return r.Crowdedness, true
	case "length_of_stay":
		return r.LengthOfStay, true
	case "food":
		return r.Food, true
	case "food_quality":
		return r.FoodQuality, true
	case "phone":
		return r.Phone, true
	case "addr", "address":
		return r.Address, true
	case "postcode":
		return r.Postcode, true
	default:
		return "", false
	}
}
