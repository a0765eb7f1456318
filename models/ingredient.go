// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Ingredient is an entry of the static ingredient catalog.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FridgeItem is one ingredient saved in a user's fridge.
type FridgeItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// FridgeEntryRequest is the body of POST /profile_ingredient_list.
//
// Quantity is a pointer so that a missing value can be told apart from zero.
type FridgeEntryRequest struct {
	Name     string   `json:"name"`
	Quantity *FlexInt `json:"quantity"`
}

// DeleteIngredientRequest is the body of DELETE /delete_ingredient.
type DeleteIngredientRequest struct {
	Name string `json:"name"`
}
