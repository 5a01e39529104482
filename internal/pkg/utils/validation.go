package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var mobileNumberRegex = regexp.MustCompile(`^[0-9]{10}$`)

var bloodGroupSet = map[string]bool{
	"A+": true, "A-": true,
	"B+": true, "B-": true,
	"AB+": true, "AB-": true,
	"O+": true, "O-": true,
}

func init() {
	validate = validator.New()
	validate.RegisterValidation("mobile_number", validateMobileNumber)
	validate.RegisterValidation("blood_group", validateBloodGroup)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateMobileNumber(fl validator.FieldLevel) bool {
	return mobileNumberRegex.MatchString(fl.Field().String())
}

func validateBloodGroup(fl validator.FieldLevel) bool {
	return bloodGroupSet[fl.Field().String()]
}
