// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package data bundles the default restaurant catalog so the CLI
// works out of the box with no external files.
package data

import _ "embed"

// RestaurantInfo is the bundled catalog CSV. First row is a header;
// columns are name, pricerange, area, crowdedness, length_of_stay,
// food, food_quality, phone, addr, postcode.
//
//go:embed restaurant_info.csv
var RestaurantInfo []byte
