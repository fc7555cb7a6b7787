package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/itsmontel/steppet_api/model"
	"github.com/itsmontel/steppet_api/shared"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("species", validateSpecies)
	validate.RegisterValidation("credit_kind", validateCreditKind)
}

func GetValidator() *validator.Validate {
	return validate
}

func validateSpecies(fl validator.FieldLevel) bool {
	return model.ValidSpecies(fl.Field().String())
}

func validateCreditKind(fl validator.FieldLevel) bool {
	kind := fl.Field().String()
	return kind == shared.CreditSourceGame || kind == shared.CreditSourceActivity
}

func FormatValidationErrors(err error) []ValidationError {
	var errors []ValidationError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			var message string

			switch fieldError.Tag() {
			case "required":
				message = fieldError.Field() + " is required"
			case "min":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "max":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "gte":
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			case "lte":
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			case "oneof":
				message = fieldError.Field() + " must be one of: " + fieldError.Param()
			case "species":
				message = fieldError.Field() + " must be a valid species"
			case "credit_kind":
				message = fieldError.Field() + " must be game or activity"
			case "datetime":
				message = fieldError.Field() + " must match " + fieldError.Param()
			default:
				message = fieldError.Field() + " is invalid"
			}

			errors = append(errors, ValidationError{
				Field:   fieldError.Field(),
				Message: message,
			})
		}
	}

	return errors
}

type Validator interface {
	Validate() error
}

type ValidationError struct {
	Field   string `json:"field" example:"species"`
	Message string `json:"message" example:"species must be a valid species"`
}

type ValidationErrorResponse struct {
	Code    int               `json:"code" example:"400"`
	Message string            `json:"message" example:"Validation failed"`
	Errors  []ValidationError `json:"errors"`
}

func CreateValidationErrorResponse(err error) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    400,
		Message: "Validation failed",
		Errors:  FormatValidationErrors(err),
	}
}
