package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocalUser is a username/password account accepted by the web login form when
// LinkedIn sign-in is unavailable.
type LocalUser struct {
	Username     string `json:"username" yaml:"username" validate:"required,max=150"`
	PasswordHash string `json:"password_hash" yaml:"password_hash" validate:"required"`
	FirstName    string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	Email        string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
}

// LocalUsers is the set of local accounts keyed by lowercase username.
type LocalUsers map[string]LocalUser

// Find looks a user up case-insensitively.
func (u LocalUsers) Find(username string) (LocalUser, bool) {
	user, ok := u[strings.ToLower(strings.TrimSpace(username))]
	return user, ok
}

type usersFile struct {
	Users []LocalUser `json:"users" yaml:"users"`
}

// LoadUsers reads the local users file. An empty path yields no users.
func LoadUsers(path string) (LocalUsers, error) {
	users := LocalUsers{}
	if path == "" {
		return users, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read users file %s: %w", path, err)
	}

	var file usersFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", path, err)
	}

	validate := newValidator()
	for i, user := range file.Users {
		if err := validate.Struct(user); err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("users[%d]", i), Message: err.Error()}
		}
		key := strings.ToLower(user.Username)
		if _, dup := users[key]; dup {
			return nil, &ValidationError{Field: fmt.Sprintf("users[%d]", i), Message: fmt.Sprintf("duplicate username %q", user.Username)}
		}
		users[key] = user
	}
	return users, nil
}
