package utils

import (
	"errors"
	"reflect"
	"strings"

	"event-booking-terminal/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	_ = v.RegisterValidation("event_date", func(fl validator.FieldLevel) bool {
		return models.IsValidEventDate(fl.Field().String())
	})
	_ = v.RegisterValidation("time_slot", func(fl validator.FieldLevel) bool {
		return models.IsValidTimeSlot(fl.Field().String())
	})
	_ = v.RegisterValidation("venue", func(fl validator.FieldLevel) bool {
		_, ok := models.VenueByName(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == models.NoneOption {
			return true
		}
		_, ok := models.ThemeByName(name)
		return ok
	})

	return v
}

// ValidateStruct runs the struct tags and turns the first failure into a
// message fit for the operator.
func ValidateStruct(s interface{}) error {
	return firstError(validate.Struct(s), "")
}

// ValidateField checks a single value, naming it label in the message.
func ValidateField(value interface{}, tags, label string) error {
	return firstError(validate.Var(value, tags), label)
}

func firstError(err error, label string) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}
	fe := validationErrors[0]

	field := fe.Field()
	if label != "" {
		field = label
	}

	var errorMessage string
	switch fe.Tag() {
	case "required":
		errorMessage = field + " is required"
	case "email":
		errorMessage = "Invalid email format"
	case "lowercase":
		errorMessage = field + " must not contain uppercase letters"
	case "min":
		errorMessage = field + " must be at least " + fe.Param()
		if fe.Kind() == reflect.String {
			errorMessage += " characters"
		}
	case "max":
		errorMessage = field + " must be at most " + fe.Param()
		if fe.Kind() == reflect.String {
			errorMessage += " characters"
		}
	case "excludesall":
		errorMessage = field + " must not contain any of: " + fe.Param()
	case "oneof":
		errorMessage = field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "event_date":
		errorMessage = "Invalid date. Use YYYY-MM-DD with a year between 2025 and 2028"
	case "time_slot":
		errorMessage = "Invalid time slot"
	case "venue":
		errorMessage = "Invalid location"
	case "theme":
		errorMessage = "Invalid theme package"
	default:
		errorMessage = "Validation failed for " + field
	}

	return errors.New(errorMessage)
}
