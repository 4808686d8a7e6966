package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"hospital-management-api/pkg/optional"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// presence is implemented by optional.Value.
type presence interface {
	ValidationValue() any
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	v.RegisterCustomTypeFunc(unwrapOptional,
		optional.Value[string]{},
		optional.Value[int]{},
		optional.Value[[]string]{},
	)

	_ = v.RegisterValidation("mindigits", minDigits)
	_ = v.RegisterValidation("emailish", emailish)
	_ = v.RegisterValidation("notblank", notBlank)

	return &CustomValidator{validator: v}
}

func unwrapOptional(field reflect.Value) interface{} {
	if p, ok := field.Interface().(presence); ok {
		return p.ValidationValue()
	}
	return nil
}

// RegisterStructValidation adds cross-field checks run after the field tags.
func (cv *CustomValidator) RegisterStructValidation(fn validator.StructLevelFunc, types ...interface{}) {
	cv.validator.RegisterStructValidation(fn, types...)
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = field + " is required"
		case "notblank":
			errs[field] = field + " cannot be empty"
		case "min":
			errs[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			errs[field] = field + " must be at most " + e.Param() + " characters"
		case "gt":
			errs[field] = field + " must be greater than " + e.Param()
		case "lt":
			errs[field] = field + " must be less than " + e.Param()
		case "gte":
			errs[field] = field + " must be greater than or equal to " + e.Param()
		case "lte":
			errs[field] = field + " must be less than or equal to " + e.Param()
		case "oneof":
			errs[field] = field + " must be one of: " + e.Param()
		case "startswith":
			errs[field] = fmt.Sprintf("%s must start with %q", field, e.Param())
		case "mindigits":
			errs[field] = field + " must have at least " + e.Param() + " digits"
		case "emailish":
			errs[field] = "invalid email format"
		case "ltefield":
			errs[field] = fmt.Sprintf("%s (%v) cannot exceed %s", field, e.Value(), e.Param())
		default:
			errs[field] = field + " is invalid"
		}
	}

	return errs
}

func minDigits(fl validator.FieldLevel) bool {
	var want int
	if _, err := fmt.Sscanf(fl.Param(), "%d", &want); err != nil {
		return false
	}
	count := 0
	for _, r := range fl.Field().String() {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count >= want
}

func emailish(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
