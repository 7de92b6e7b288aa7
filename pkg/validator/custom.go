package validator

import (
	"github.com/go-playground/validator/v10"

	"innacri/internal/domain"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("severity", validateSeverity)
	validate.RegisterValidation("crimetype", validateCrimeType)
	validate.RegisterValidation("zona", validateZona)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateSeverity(fl validator.FieldLevel) bool {
	sev := fl.Field().Int()
	return sev >= 1 && sev <= 5
}

func validateCrimeType(fl validator.FieldLevel) bool {
	_, ok := domain.CrimeTypeByID(fl.Field().String())
	return ok
}

func validateZona(fl validator.FieldLevel) bool {
	return domain.ValidZona(fl.Field().String())
}
