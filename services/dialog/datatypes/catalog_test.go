// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package datatypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCSV = `restaurantname,pricerange,area,crowdedness,length_of_stay,food,food_quality,phone,addr,postcode
golden wok,cheap,centre,busy,short stay,chinese,not good food,01223 350688,191 histon road,c.b 4
cocum,expensive,west,quiet,long stay,indian,good food,01223 366668,71 castle street,c.b 3
rice house,cheap,centre,quiet,long stay,chinese,good food,,88 mill road,
`

func TestReadCatalog(t *testing.T) {
	catalog, err := ReadCatalog(strings.NewReader(testCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.Len())

	t.Run("header row is skipped", func(t *testing.T) {
		assert.Equal(t, "golden wok", catalog.Restaurants()[0].Name)
	})

	t.Run("fields map positionally", func(t *testing.T) {
		r := catalog.Restaurants()[1]
		assert.Equal(t, "cocum", r.Name)
		assert.Equal(t, "expensive", r.PriceRange)
		assert.Equal(t, "west", r.Area)
		assert.Equal(t, "quiet", r.Crowdedness)
		assert.Equal(t, "long stay", r.LengthOfStay)
		assert.Equal(t, "indian", r.Food)
		assert.Equal(t, "good food", r.FoodQuality)
		assert.Equal(t, "01223 366668", r.Phone)
		assert.Equal(t, "71 castle street", r.Address)
		assert.Equal(t, "c.b 3", r.Postcode)
	})

	t.Run("empty fields are preserved", func(t *testing.T) {
		assert.Empty(t, catalog.Restaurants()[2].Phone)
	})

	t.Run("vocabularies keep first-appearance order and dedupe", func(t *testing.T) {
		assert.Equal(t, []string{"chinese", "indian"}, catalog.FoodTypes())
		assert.Equal(t, []string{"centre", "west"}, catalog.Areas())
		assert.Equal(t, []string{"cheap", "expensive"}, catalog.PriceRanges())
	})
}

func TestReadCatalog_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("wrong column count", func(t *testing.T) {
		_, err := ReadCatalog(strings.NewReader("h1,h2\nshort,row\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns")
	})
}

func TestRestaurantAttribute(t *testing.T) {
	r := Restaurant{Crowdedness: "busy", LengthOfStay: "long stay", FoodQuality: "good food", PriceRange: "cheap", Food: "thai"}

	for attr, want := range map[string]string{
		"crowdedness":    "busy",
		"length_of_stay": "long stay",
		"food_quality":   "good food",
		"pricerange":     "cheap",
		"food":           "thai",
	} {
		got, ok := r.Attribute(attr)
		require.True(t, ok, attr)
		assert.Equal(t, want, got)
	}

	_, ok := r.Attribute("stars")
	assert.False(t, ok)
}
