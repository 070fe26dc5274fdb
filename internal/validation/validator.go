package validation

import (
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	"getwise/internal/models"

	"github.com/go-playground/validator/v10"
)

// MaxCategoryNameLength bounds category names accepted from clients
const MaxCategoryNameLength = 64

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("advice_kind", validateAdviceKind)
	_ = v.RegisterValidation("category_name", validateCategoryName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is finite and greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		amount := fl.Field().Float()
		return amount > 0 && !math.IsInf(amount, 0)
	default:
		return false
	}
}

// validateNonNegativeAmount validates that an amount is finite and at least 0
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() >= 0
	case reflect.Float32, reflect.Float64:
		amount := fl.Field().Float()
		return amount >= 0 && !math.IsInf(amount, 0)
	default:
		return false
	}
}

// validateAdviceKind validates that the value names one of the advice generators
func validateAdviceKind(fl validator.FieldLevel) bool {
	return models.IsValidAdviceKind(fl.Field().String())
}

// validateCategoryName validates that a category name is non-blank and reasonably short
func validateCategoryName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) == "" {
		return false
	}
	return utf8.RuneCountInString(name) <= MaxCategoryNameLength
}
