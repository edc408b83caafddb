package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("phone", validatePhone)
}

// Struct validates v against its struct tags.
func Struct(v interface{}) error {
	return validate.Struct(v)
}

func validatePhone(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
	return re.MatchString(fl.Field().String())
}
