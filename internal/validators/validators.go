package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
)

// Indian mobile numbers: ten digits, leading 6-9. Nothing is stripped before matching.
var mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

// Custom tags understood by validators built with New.
const (
	TagNotBlank  = "notblank"
	TagMobile    = "mobile"
	TagTreatment = "treatment"
)

// New returns a validator with the appointment form tags registered and field
// names reported by their json tag.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidators(v)
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	custom := map[string]validator.Func{
		TagNotBlank:  validateNotBlank,
		TagMobile:    validateMobile,
		TagTreatment: validateTreatment,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic("validators: register " + tag + ": " + err.Error())
		}
	}
}

func IsNotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

func IsMobileNumber(s string) bool {
	return mobileRegex.MatchString(s)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return IsNotBlank(fl.Field().String())
}

func validateMobile(fl validator.FieldLevel) bool {
	return IsMobileNumber(fl.Field().String())
}

// validateTreatment rejects the placeholder (empty value) and anything off the menu.
func validateTreatment(fl validator.FieldLevel) bool {
	return clinic.IsTreatment(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
