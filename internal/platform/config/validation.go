package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf key, so messages name the same path
// an operator writes in YAML or derives an APP_ variable from.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	return v
}

// ValidationError lists every invalid setting found by Validate.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "config validation failed:\n  " + strings.Join(e.Problems, "\n  ")
}

// Validate checks field constraints and the rules that span sections.
// The service must not start with an invalid config.
func (c *Config) Validate() error {
	var problems []string

	var fieldErrs validator.ValidationErrors
	if err := validate.Struct(c); err != nil {
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			problems = append(problems, describeFieldError(fe))
		}
	}

	problems = append(problems, c.crossSectionProblems()...)

	if len(problems) == 0 {
		return nil
	}

	return &ValidationError{Problems: problems}
}

// crossSectionProblems covers constraints struct tags cannot express.
func (c *Config) crossSectionProblems() []string {
	var problems []string

	// An upstream call that outlives the request deadline can never succeed.
	if c.Server.RequestTimeout > 0 && c.Client.Timeout > c.Server.RequestTimeout {
		problems = append(problems, fmt.Sprintf(
			"client.timeout (%s) must not exceed server.request_timeout (%s)",
			c.Client.Timeout, c.Server.RequestTimeout))
	}

	return problems
}

func describeFieldError(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", path, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", path, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", path, fe.Param())
	case "http_url":
		return path + " must be an http or https URL"
	default:
		return fmt.Sprintf("%s failed validation: %s", path, fe.Tag())
	}
}

// fieldPath drops the root type from a namespace such as
// "Config.services.upstream.base_url".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}
