package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for local account password hashing and verification.
type PasswordConfig struct {
	BcryptCost int    `json:"bcrypt_cost" yaml:"bcrypt_cost" env:"BCRYPT_COST"`
	Pepper     string `json:"pepper,omitempty" yaml:"pepper,omitempty" env:"PASSWORD_PEPPER"` // optional global secret
}

// normalize validates the configuration.
func (c *PasswordConfig) normalize() error {
	if c.BcryptCost < 10 || c.BcryptCost > 14 {
		return &ValidationError{
			Field:   "BCRYPT_COST",
			Message: fmt.Sprintf("bcrypt cost out of range: %d (must be 10-14)", c.BcryptCost),
		}
	}
	return nil
}

// HashPassword hashes a password using bcrypt (with optional pepper).
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(c.peppered(pw)), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash (with optional pepper).
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(c.peppered(pw)))
	return err == nil
}

func (c *PasswordConfig) peppered(pw string) string {
	if c.Pepper == "" {
		return pw
	}
	return pw + c.Pepper
}
