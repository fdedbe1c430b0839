package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_UnmarshalJSON(t *testing.T) {
	var req UpdateUserHobbyRequest

	require.NoError(t, json.Unmarshal([]byte(`{"rating": null}`), &req))
	assert.False(t, req.Interested.Set)
	assert.True(t, req.Rating.Set)
	assert.True(t, req.Rating.Null)

	input := req.ToInput()
	assert.Nil(t, input.Interested)
	assert.True(t, input.Rating.Set)
	assert.Nil(t, input.Rating.Value)
}

func TestField_PresentValue(t *testing.T) {
	var req UpdateUserHobbyRequest

	require.NoError(t, json.Unmarshal([]byte(`{"interested": false, "rating": 4}`), &req))

	input := req.ToInput()
	require.NotNil(t, input.Interested)
	assert.False(t, *input.Interested)
	require.NotNil(t, input.Rating.Value)
	assert.Equal(t, 4, *input.Rating.Value)
}

func TestField_WrongType(t *testing.T) {
	var req UpdateUserRequest

	err := json.Unmarshal([]byte(`{"username": 12}`), &req)

	assert.Error(t, err)
}

func TestUpdateUserRequest_ToInput(t *testing.T) {
	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Kiko", "email": null}`), &req))

	input := req.ToInput()

	assert.Nil(t, input.Username)
	require.NotNil(t, input.Name)
	assert.Equal(t, "Kiko", *input.Name)
	assert.True(t, input.Email.Set)
	assert.Nil(t, input.Email.Value)
	assert.Nil(t, input.Password)
	assert.Empty(t, req.NullFields())
}

func TestUpdateUserRequest_EmptyBodyChangesNothing(t *testing.T) {
	var req UpdateUserRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	input := req.ToInput()

	assert.Nil(t, input.Username)
	assert.Nil(t, input.Name)
	assert.False(t, input.Email.Set)
	assert.Nil(t, input.Password)
}
