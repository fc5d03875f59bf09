// Package config provides configuration loading and validation for the career advisor.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied before the config file and environment are read.
const (
	DefaultProvider         = "gemini"
	DefaultModel            = "gemini-2.0-flash"
	DefaultTimeout          = 30 * time.Second
	DefaultRedirectURI      = "http://127.0.0.1:8000/social-auth/complete/linkedin-oauth2/"
	DefaultLinkedInScopes   = "r_liteprofile r_emailaddress"
	DefaultPort             = 8000
	DefaultSessionTTLHours  = 24
	DefaultBcryptCost       = 12
	DefaultShutdownDeadline = 30 * time.Second
)

// Config is the explicit configuration object handed to every component.
// Values come from defaults, then an optional config file, then the environment.
type Config struct {
	LLM      LLMConfig      `json:"llm" yaml:"llm"`
	LinkedIn LinkedInConfig `json:"linkedin" yaml:"linkedin"`
	Server   ServerConfig   `json:"server" yaml:"server"`
	Session  SessionConfig  `json:"session" yaml:"session"`
	Password PasswordConfig `json:"password" yaml:"password"`
	Verbose  bool           `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// LLMConfig selects and authenticates the completion provider.
type LLMConfig struct {
	Provider string   `json:"provider" yaml:"provider" env:"LLM_PROVIDER" validate:"required,oneof=gemini genai"`
	APIKey   string   `json:"api_key" yaml:"api_key" env:"GOOGLE_API_KEY" validate:"required"`
	Model    string   `json:"model" yaml:"model" env:"LLM_MODEL" validate:"required"`
	Timeout  Duration `json:"timeout" yaml:"timeout" env:"LLM_TIMEOUT"`
}

// LinkedInConfig holds the OAuth application registered with LinkedIn.
type LinkedInConfig struct {
	ClientID     string `json:"client_id" yaml:"client_id" env:"LINKEDIN_CLIENT_ID" validate:"required"`
	ClientSecret string `json:"client_secret" yaml:"client_secret" env:"LINKEDIN_CLIENT_SECRET" validate:"required"`
	RedirectURI  string `json:"redirect_uri" yaml:"redirect_uri" env:"LINKEDIN_REDIRECT_URI" validate:"required,url"`
	Scopes       string `json:"scopes" yaml:"scopes" env:"LINKEDIN_SCOPES"`
}

// ScopeList splits the space separated scope string.
func (c LinkedInConfig) ScopeList() []string {
	return strings.Fields(c.Scopes)
}

// ServerConfig configures the web application.
type ServerConfig struct {
	Port       int    `json:"port" yaml:"port" env:"PORT" validate:"gt=0,lt=65536"`
	UsersFile  string `json:"users_file,omitempty" yaml:"users_file,omitempty" env:"LOCAL_USERS_FILE"`
	CORSOrigin string `json:"cors_origin,omitempty" yaml:"cors_origin,omitempty" env:"CORS_ALLOWED_ORIGIN"`
}

// Duration is a time.Duration that reads "30s" style strings from config files.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts a duration string or a number of seconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return d.set(s)
	}
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err != nil {
		return fmt.Errorf("invalid duration %s", string(data))
	}
	d.Duration = time.Duration(seconds * float64(time.Second))
	return nil
}

// UnmarshalYAML accepts a duration string or a number of seconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration at line %d: %w", value.Line, err)
	}
	return d.set(s)
}

// MarshalJSON writes the duration in its string form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		d.Duration = 0
		return nil
	}
	if seconds, err := strconv.ParseFloat(s, 64); err == nil {
		d.Duration = time.Duration(seconds * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// Default returns a configuration populated with built-in defaults only.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider: DefaultProvider,
			Model:    DefaultModel,
			Timeout:  Duration{DefaultTimeout},
		},
		LinkedIn: LinkedInConfig{
			RedirectURI: DefaultRedirectURI,
			Scopes:      DefaultLinkedInScopes,
		},
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Session: SessionConfig{
			TTLHours: DefaultSessionTTLHours,
		},
		Password: PasswordConfig{
			BcryptCost: DefaultBcryptCost,
		},
	}
}

// Load builds the configuration. path is optional; when set, the file is read
// as YAML (.yaml, .yml) or JSON (anything else) and environment variables are
// applied on top of it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	envString("LLM_PROVIDER", &c.LLM.Provider)
	envString("GEMINI_API_KEY", &c.LLM.APIKey)
	envString("GOOGLE_API_KEY", &c.LLM.APIKey)
	envString("LLM_MODEL", &c.LLM.Model)
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if err := c.LLM.Timeout.set(v); err != nil {
			return &ValidationError{Field: "LLM_TIMEOUT", Message: err.Error()}
		}
	}

	envString("LINKEDIN_CLIENT_ID", &c.LinkedIn.ClientID)
	envString("LINKEDIN_CLIENT_SECRET", &c.LinkedIn.ClientSecret)
	envString("LINKEDIN_REDIRECT_URI", &c.LinkedIn.RedirectURI)
	envString("LINKEDIN_SCOPES", &c.LinkedIn.Scopes)

	if err := envInt("PORT", &c.Server.Port); err != nil {
		return err
	}
	envString("LOCAL_USERS_FILE", &c.Server.UsersFile)
	envString("CORS_ALLOWED_ORIGIN", &c.Server.CORSOrigin)

	envString("SESSION_SECRET", &c.Session.Secret)
	if err := envInt("SESSION_TTL_HOURS", &c.Session.TTLHours); err != nil {
		return err
	}

	if err := envInt("BCRYPT_COST", &c.Password.BcryptCost); err != nil {
		return err
	}
	envString("PASSWORD_PEPPER", &c.Password.Pepper)
	return nil
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &ValidationError{Field: key, Message: fmt.Sprintf("invalid integer %q", v)}
	}
	*dst = n
	return nil
}

// normalize fills zero values left by a sparse config file and checks ranges.
func (c *Config) normalize() error {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = DefaultProvider
	}
	if c.LLM.Model == "" {
		c.LLM.Model = DefaultModel
	}
	if c.LLM.Timeout.Duration <= 0 {
		c.LLM.Timeout = Duration{DefaultTimeout}
	}
	if c.LinkedIn.RedirectURI == "" {
		c.LinkedIn.RedirectURI = DefaultRedirectURI
	}
	if c.LinkedIn.Scopes == "" {
		c.LinkedIn.Scopes = DefaultLinkedInScopes
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Session.TTLHours == 0 {
		c.Session.TTLHours = DefaultSessionTTLHours
	}
	if c.Password.BcryptCost == 0 {
		c.Password.BcryptCost = DefaultBcryptCost
	}

	if err := c.Session.normalize(); err != nil {
		return err
	}
	return c.Password.normalize()
}
