package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexInt
		wantErr bool
	}{
		{name: "number", input: `7`, want: 7},
		{name: "numeric string", input: `"12"`, want: 12},
		{name: "padded string", input: `" 3 "`, want: 3},
		{name: "negative", input: `-4`, want: -4},
		{name: "float", input: `1.5`, wantErr: true},
		{name: "word", input: `"two"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexInt_NullKeepsZero(t *testing.T) {
	var ref RecipeRef
	require.NoError(t, json.Unmarshal([]byte(`{"recipeID": null}`), &ref))
	assert.Zero(t, ref.RecipeID)
}

func TestLabelIDs_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *LabelIDs
		wantErr bool
	}{
		{name: "single number", input: `{"selectedRestrictions": 4}`, want: &LabelIDs{4}},
		{name: "single string", input: `{"selectedRestrictions": "4"}`, want: &LabelIDs{4}},
		{name: "list", input: `{"selectedRestrictions": [2, "5"]}`, want: &LabelIDs{2, 5}},
		{name: "empty list", input: `{"selectedRestrictions": []}`, want: &LabelIDs{}},
		{name: "missing", input: `{}`, want: nil},
		{name: "null", input: `{"selectedRestrictions": null}`, want: nil},
		{name: "object", input: `{"selectedRestrictions": {"id": 1}}`, wantErr: true},
		{name: "list of words", input: `{"selectedRestrictions": ["vegan"]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req DietaryRestrictionsRequest
			err := json.Unmarshal([]byte(tt.input), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.SelectedRestrictions)
		})
	}
}

func TestUser_PasswordHashIsNeverSerialized(t *testing.T) {
	picture := "1_profile_picture"
	user := User{UserID: 1, Username: "ana", Email: "a@x.com", PasswordHash: "$2a$10$secret", ProfilePicture: &picture}

	data, err := json.Marshal(RegisterResponse{User: user})
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), `"username":"ana"`)
}
