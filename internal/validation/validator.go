// Package validation wraps go-playground/validator with the rules shared by
// the usecases and the echo binder.
package validation

import (
	"reflect"
	"strings"

	"tasker/internal/domain/entity"
	"tasker/internal/errors"

	"github.com/go-playground/validator/v10"
)

// TagTaskStatus validates that a value is one of the accepted task statuses.
const TagTaskStatus = "task_status"

// Validator validates structs. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator that reports fields by their json name.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Registration only fails for an empty tag or nil func.
	_ = validate.RegisterValidation(TagTaskStatus, func(fl validator.FieldLevel) bool {
		return entity.TaskStatus(fl.Field().String()).Valid()
	})

	return &Validator{validate: validate}
}

// Validate checks a struct against its `validate` tags. It satisfies echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Describe renders validation failures as "field is required; other must be ...".
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err == nil {
			return ""
		}

		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}

	return strings.Join(msgs, "; ")
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case TagTaskStatus:
		return fe.Field() + " must be one of pending, in-progress, completed"
	default:
		return fe.Field() + " failed " + fe.Tag() + " validation"
	}
}
