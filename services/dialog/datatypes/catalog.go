// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// catalogColumns is the expected CSV width. Columns map positionally
// to the Restaurant fields, first row is a header and is skipped.
const catalogColumns = 10

// Catalog holds the full restaurant list plus the keyword vocabularies
// derived from it (food types, areas, price ranges).
//
// # Description
//
// Loaded once at startup and never mutated afterwards. Vocabularies
// preserve first-appearance order from the source file, because the
// slot extractor's first-keyword-wins tie-break depends on a stable
// iteration order. Empty attribute values are skipped.
//
// # Thread Safety
//
// Read-only after construction; safe to share across sessions.
type Catalog struct {
	restaurants []Restaurant
	foods       []string
	areas       []string
	prices      []string
}

// NewCatalog builds a catalog from already-loaded records.
//
// Useful for tests and for callers with a non-CSV source.
func NewCatalog(restaurants []Restaurant) *Catalog {
	c := &Catalog{restaurants: restaurants}
	seenFood := make(map[string]bool)
	seenArea := make(map[string]bool)
	seenPrice := make(map[string]bool)
	for _, r := range restaurants {
		if r.Food != "" && !seenFood[r.Food] {
			seenFood[r.Food] = true
			c.foods = append(c.foods, r.Food)
		}
		if r.Area != "" && !seenArea[r.Area] {
			seenArea[r.Area] = true
			c.areas = append(c.areas, r.Area)
		}
		if r.PriceRange != "" && !seenPrice[r.PriceRange] {
			seenPrice[r.PriceRange] = true
			c.prices = append(c.prices, r.PriceRange)
		}
	}
	return c
}

// LoadCatalog reads a restaurant CSV file into a Catalog.
//
// # Inputs
//
//   - path: Path to the CSV file. The first row is a header.
//
// # Outputs
//
//   - *Catalog: The loaded catalog.
//   - error: Non-nil if the file is missing or malformed. A missing
//     catalog is a deployment error and callers should fail fast.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadCatalog(f)
}

// ReadCatalog parses restaurant CSV records from a reader.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	restaurants := make([]Restaurant, 0, len(rows)-1)
	for i, row := range rows[1:] { // first row is the header
		if len(row) != catalogColumns {
			return nil, fmt.Errorf("catalog row %d: expected %d columns, got %d", i+2, catalogColumns, len(row))
		}
		restaurants = append(restaurants, Restaurant{
			Name:         row[0],
			PriceRange:   row[1],
			Area:         row[2],
			Crowdedness:  row[3],
			LengthOfStay: row[4],
			Food:         row[5],
			FoodQuality:  row[6],
			Phone:        row[7],
			Address:      row[8],
			Postcode:     row[9],
		})
	}

	return NewCatalog(restaurants), nil
}

// Restaurants returns the catalog records in file order.
//
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Restaurants() []Restaurant {
	return c.restaurants
}

// FoodTypes returns the known food values in first-appearance order.
func (c *Catalog) FoodTypes() []string { return c.foods }

// Areas returns the known area values in first-appearance order.
func (c *Catalog) Areas() []string { return c.areas }

// PriceRanges returns the known price values in first-appearance order.
func (c *Catalog) PriceRanges() []string { return c.prices }

// Len returns the number of restaurants in the catalog.
func (c *Catalog) Len() int { return len(c.restaurants) }
