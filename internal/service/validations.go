package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/studytrack/internal/error_values"
	"github.com/limbo/studytrack/pkg/timefmt"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// HH:MM or HH:MM:SS
		validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			return clockPattern.MatchString(fl.Field().String())
		})
		// YYYY-MM-DD
		validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(timefmt.DateLayout, fl.Field().String())
			return err == nil
		})
	})
}

// validateStruct turns validator field errors into a single validation failure.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		msgs := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			msgs = append(msgs, fieldMessage(fieldErr))
		}
		return errorvalues.Validation("validation error: " + strings.Join(msgs, "; "))
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "hexcolor":
		return field + " must be a hex color"
	case "clock":
		return field + " must look like HH:MM"
	case "isodate":
		return field + " must look like YYYY-MM-DD"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", field, fe.Tag())
	}
}
