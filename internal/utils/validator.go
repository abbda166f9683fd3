// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trustpulse/pulse-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("review_source", validateReviewSource)
	validate.RegisterValidation("style_category", validateStyleCategory)
	validate.RegisterValidation("login_provider", validateLoginProvider)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateReviewSource(fl validator.FieldLevel) bool {
	return models.ReviewSource(fl.Field().String()).IsValid()
}

func validateStyleCategory(fl validator.FieldLevel) bool {
	return models.StyleCategory(fl.Field().String()).IsValid()
}

func validateLoginProvider(fl validator.FieldLevel) bool {
	switch models.LoginProvider(fl.Field().String()) {
	case models.LoginProviderGoogle, models.LoginProviderFacebook, models.LoginProviderGuest:
		return true
	}
	return false
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "review_source":
		return "Unknown review platform"
	case "style_category":
		return "Style category must be Luxury, Comfort, Aesthetics, or Casual"
	case "login_provider":
		return "Provider must be google, facebook, or guest"
	default:
		return e.Field() + " is invalid"
	}
}
