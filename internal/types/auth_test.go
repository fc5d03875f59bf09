//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request LoginRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: LoginRequest{Username: "ada", Password: "secret"},
		},
		{
			name:    "missing username",
			request: LoginRequest{Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: LoginRequest{Username: "ada"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSessionUser_DisplayName(t *testing.T) {
	u := &SessionUser{Username: "abc123", FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.DisplayName())

	u = &SessionUser{Username: "abc123"}
	assert.Equal(t, "abc123", u.DisplayName())

	var nilUser *SessionUser
	assert.Equal(t, "", nilUser.DisplayName())
}

func TestSessionUser_JSONOmitsEmptyOptionalFields(t *testing.T) {
	data, err := json.Marshal(SessionUser{ID: "1", Username: "ada", Provider: ProviderLocal})
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"1","username":"ada","provider":"local"}`, string(data))
}
