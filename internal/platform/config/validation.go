package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key, so messages name the
// same path an operator writes in YAML.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	return v
}

// fieldMessages renders one validation tag. %s is the field path, %p the
// tag parameter.
var fieldMessages = map[string]string{
	"required":    "%s is required",
	"required_if": "%s is required when %p",
	"min":         "%s must be at least %p",
	"max":         "%s must be at most %p",
	"oneof":       "%s must be one of: %p",
	"url":         "%s must be a valid URL",
}

// Validate checks field constraints, then the rules that only apply in
// prod. Every problem found is reported in one error.
func (c *Config) Validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		for _, fe := range fieldErrs {
			problems = append(problems, describe(fe))
		}
	}

	if c.App.Environment == "prod" {
		problems = append(problems, c.prodProblems()...)
	}

	if len(problems) == 0 {
		return nil
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(problems, "\n  "))
}

func (c *Config) prodProblems() []string {
	var problems []string

	if c.Session.Secret == DefaultSessionSecret {
		problems = append(problems, "session.secret must be set in prod")
	}

	if !c.Session.Secure {
		problems = append(problems, "session.secure must be true in prod")
	}

	return problems
}

func describe(fe validator.FieldError) string {
	path := fieldPath(fe.Namespace())

	msg, ok := fieldMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", path, fe.Tag())
	}

	return strings.NewReplacer("%s", path, "%p", fe.Param()).Replace(msg)
}

// fieldPath drops the root struct name: "Config.server.port" -> "server.port".
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
