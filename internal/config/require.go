package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports field errors by their environment variable name.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("env")
		if name == "" {
			return fld.Name
		}
		return name
	})
	return validate
}

// RequireLLM checks that a completion provider can be constructed.
func (c *Config) RequireLLM() error {
	return check("the LLM client", c.LLM)
}

// RequireLinkedIn checks that the LinkedIn OAuth client can be constructed.
func (c *Config) RequireLinkedIn() error {
	return check("LinkedIn sign-in", c.LinkedIn)
}

// RequireServer checks everything the web application needs.
func (c *Config) RequireServer() error {
	return check("the web server", c.Server, c.Session, c.LinkedIn)
}

// RequireAdvisor checks the credentials of the profile advisor, which talks to
// both the LLM and LinkedIn.
func (c *Config) RequireAdvisor() error {
	return check("the career advisor", c.LLM, c.LinkedIn)
}

// check validates each section and folds every "required" failure into one
// MissingCredentialsError so the user sees the full list at once.
func check(feature string, sections ...any) error {
	validate := newValidator()
	var missing []string
	var invalid []string

	for _, section := range sections {
		err := validate.Struct(section)
		if err == nil {
			continue
		}
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &ValidationError{Message: err.Error()}
		}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
				continue
			}
			invalid = append(invalid, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
		}
	}

	if len(missing) > 0 {
		return &MissingCredentialsError{Feature: feature, Missing: missing}
	}
	if len(invalid) > 0 {
		return &ValidationError{Message: strings.Join(invalid, "; ")}
	}
	return nil
}
