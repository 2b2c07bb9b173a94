package validation

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	apierrors "github.com/pablotzeliks/todolist-api/internal/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name so clients can match errors to payload keys
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Date rules are evaluated against the server clock
	_ = v.RegisterValidation("future", isFuture)
	_ = v.RegisterValidation("futureorpresent", isFutureOrPresent)

	return v
}

func isFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.After(time.Now())
}

func isFutureOrPresent(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !t.Before(time.Now())
}

// Check validates a request struct and returns every violation as a
// field/message pair. Violations are collected, not short-circuited.
func Check(s any) []apierrors.ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apierrors.ValidationError{{Field: "", Message: err.Error()}}
	}

	violations := make([]apierrors.ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, apierrors.ValidationError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return violations
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", fe.Field(), fe.Param())
	case "future":
		return fmt.Sprintf("%s must be in the future", fe.Field())
	case "futureorpresent":
		return fmt.Sprintf("%s must not be in the past", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
