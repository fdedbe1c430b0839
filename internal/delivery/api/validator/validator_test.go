package validator

import (
	"encoding/json"
	"testing"

	"hobbyexplorer/internal/delivery/api/request"
	domainerrors "hobbyexplorer/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationDetails(t *testing.T, err error) string {
	t.Helper()

	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	return baseErr.Details()
}

func TestValidate_CreateUserRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		req      request.CreateUserRequest
		expected []string
	}{
		{
			name: "valid without email",
			req:  request.CreateUserRequest{Username: "kiko", Name: "K", Password: "ultrasecure"},
		},
		{
			name:     "missing required fields",
			req:      request.CreateUserRequest{},
			expected: []string{"username: field required", "name: field required", "password: field required"},
		},
		{
			name:     "password too short",
			req:      request.CreateUserRequest{Username: "kiko", Name: "K", Password: "short"},
			expected: []string{"password: must be at least 8 characters"},
		},
		{
			name:     "password too long",
			req:      request.CreateUserRequest{Username: "kiko", Name: "K", Password: "this-password-is-definitely-longer-than-forty"},
			expected: []string{"password: must be at most 40 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if len(tt.expected) == 0 {
				assert.NoError(t, err)

				return
			}

			details := validationDetails(t, err)
			for _, problem := range tt.expected {
				assert.Contains(t, details, problem)
			}
		})
	}
}

func TestValidate_UpdateUserRequest(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{name: "empty body", body: `{}`},
		{name: "email cleared", body: `{"email": null}`},
		{name: "valid password", body: `{"password": "longenough"}`},
		{name: "short password", body: `{"password": "short"}`, expected: []string{"password: must be at least 8 characters"}},
		{name: "empty username", body: `{"username": ""}`, expected: []string{"username: must not be empty"}},
		{
			name:     "null on required columns",
			body:     `{"username": null, "name": null, "password": null}`,
			expected: []string{"username: must not be null", "name: must not be null", "password: must not be null"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req request.UpdateUserRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := v.Validate(&req)
			if len(tt.expected) == 0 {
				assert.NoError(t, err)

				return
			}

			details := validationDetails(t, err)
			for _, problem := range tt.expected {
				assert.Contains(t, details, problem)
			}
		})
	}
}

func TestValidate_UpdateUserHobbyRequest(t *testing.T) {
	v := New()

	var req request.UpdateUserHobbyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"rating": null}`), &req))
	assert.NoError(t, v.Validate(&req))

	req = request.UpdateUserHobbyRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"interested": null}`), &req))
	assert.Contains(t, validationDetails(t, v.Validate(&req)), "interested: must not be null")
}

func TestValidate_CreateUserHobbyRequest_RequiresHobbyID(t *testing.T) {
	v := New()

	err := v.Validate(&request.CreateUserHobbyRequest{})

	assert.Contains(t, validationDetails(t, err), "hobby_id: field required")
}
