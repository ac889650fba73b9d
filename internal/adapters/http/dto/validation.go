package dto

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/storefront-web/internal/domain"
)

var (
	formValidator     *validator.Validate
	formValidatorOnce sync.Once
)

// Validator returns the validator used for posted forms. Field errors are
// reported under the form field name, not the Go field name.
func Validator() *validator.Validate {
	formValidatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		formValidator = v
	})

	return formValidator
}

// BindForm decodes a url-encoded body into form and validates it.
// Any failure is returned as a *domain.ValidationError naming the first
// offending field, so it maps to 400 like every other validation failure.
func BindForm(c *gin.Context, form any) error {
	if err := c.ShouldBindWith(form, binding.Form); err != nil {
		return domain.NewValidationError("", "malformed form: "+err.Error())
	}

	return Validate(form)
}

// Validate checks form against its validate tags.
func Validate(form any) error {
	err := Validator().Struct(form)
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	if len(fields) == 0 {
		return fmt.Errorf("validating form: %w", err)
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	return &fieldErrors{
		ValidationError: domain.ValidationError{Field: names[0], Message: fields[names[0]]},
		fields:          fields,
	}
}

// fieldErrors keeps every field message behind the first one.
type fieldErrors struct {
	domain.ValidationError
	fields map[string]string
}

func (e *fieldErrors) Unwrap() error {
	return &e.ValidationError
}

// FieldErrors returns a message per invalid form field, or nil when err
// carries no field information.
func FieldErrors(err error) map[string]string {
	var fe *fieldErrors
	if errors.As(err, &fe) {
		return fe.fields
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, v := range verrs {
		fields[v.Field()] = fieldMessage(v)
	}

	return fields
}

var tagMessages = map[string]string{
	"required": "this field is required",
	"email":    "must be a valid email address",
	"notblank": "must not be empty",
	"oneof":    "must be one of: %s",
}

func fieldMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "min", "max":
		unit := ""
		if v.Kind() == reflect.String {
			unit = " characters"
		}

		bound := "at least"
		if v.Tag() == "max" {
			bound = "at most"
		}

		return fmt.Sprintf("must be %s %s%s", bound, v.Param(), unit)
	}

	msg, ok := tagMessages[v.Tag()]
	if !ok {
		return "failed validation: " + v.Tag()
	}

	if strings.Contains(msg, "%s") {
		return fmt.Sprintf(msg, v.Param())
	}

	return msg
}
