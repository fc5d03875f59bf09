package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsers_EmptyPath(t *testing.T) {
	users, err := LoadUsers("")
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadUsers_YAML(t *testing.T) {
	path := writeFile(t, "users.yaml", `
users:
  - username: Ada
    password_hash: "$2a$10$abcdefghijklmnopqrstuv"
    first_name: Ada
    last_name: Lovelace
    email: ada@example.com
  - username: grace
    password_hash: "$2a$10$vutsrqponmlkjihgfedcba"
`)

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)

	ada, ok := users.Find("ADA")
	require.True(t, ok)
	assert.Equal(t, "Lovelace", ada.LastName)

	_, ok = users.Find("linus")
	assert.False(t, ok)
}

func TestLoadUsers_JSON(t *testing.T) {
	path := writeFile(t, "users.json", `{"users": [{"username": "ada", "password_hash": "hash"}]}`)

	users, err := LoadUsers(path)
	require.NoError(t, err)
	_, ok := users.Find("ada")
	assert.True(t, ok)
}

func TestLoadUsers_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "missing hash",
			content: "users:\n  - username: ada\n",
			wantMsg: "users[0]",
		},
		{
			name:    "bad email",
			content: "users:\n  - username: ada\n    password_hash: h\n    email: not-an-email\n",
			wantMsg: "users[0]",
		},
		{
			name:    "duplicate username",
			content: "users:\n  - username: ada\n    password_hash: h\n  - username: ADA\n    password_hash: h\n",
			wantMsg: "duplicate username",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadUsers(writeFile(t, "users.yaml", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
