package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field constraints and returns one error listing every violation
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate config: %w", err)
	}

	problems := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		problems = append(problems, describe(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}

// describe maps a field error back to the environment variable the user sets
func describe(e validator.FieldError) string {
	name := envNames[e.Field()]
	if name == "" {
		name = e.Field()
	}

	switch e.Tag() {
	case "required":
		return name + " is required"
	case "url":
		return name + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, e.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", name, e.Tag())
	}
}
