package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const maxNeedLabel = 80

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("needlabel", validateNeedLabel)
	validate.RegisterValidation("storekey", validateStoreKey)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// Blank labels are dropped later by the repository, so only the length is checked.
func validateNeedLabel(fl validator.FieldLevel) bool {
	return utf8.RuneCountInString(fl.Field().String()) <= maxNeedLabel
}

// storekey rejects characters the remote store does not allow in a key.
func validateStoreKey(fl validator.FieldLevel) bool {
	return IsStoreKey(fl.Field().String())
}

func IsStoreKey(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, ".$#[]/") && !strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 || r == 0x7f })
}
