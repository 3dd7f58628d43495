package appointment

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-clinic/internal/validators"
)

// FieldError is a recoverable, user-facing validation failure on one field.
type FieldError struct {
	Field   Field
	Message string
}

func (e *FieldError) Error() string { return e.Message }

var (
	ErrMissingName      = &FieldError{Field: FieldFullName, Message: "Full Name is required"}
	ErrInvalidPhone     = &FieldError{Field: FieldPhone, Message: "Invalid phone number"}
	ErrMissingTreatment = &FieldError{Field: FieldTreatment, Message: "Select a treatment"}
)

var fieldErrors = map[Field]*FieldError{
	FieldFullName:  ErrMissingName,
	FieldPhone:     ErrInvalidPhone,
	FieldTreatment: ErrMissingTreatment,
}

// ValidationResult maps each invalid field to its message. A field that is
// absent is valid.
type ValidationResult map[Field]string

func (v ValidationResult) Valid() bool { return len(v) == 0 }

func (v ValidationResult) Has(f Field) bool {
	_, ok := v[f]
	return ok
}

// Clone copies the result; a nil result clones to an empty one.
func (v ValidationResult) Clone() ValidationResult {
	out := make(ValidationResult, len(v))
	for f, msg := range v {
		out[f] = msg
	}
	return out
}

// Err joins the failures in field order, or returns nil when valid.
func (v ValidationResult) Err() error {
	var errs []error
	for _, f := range fields {
		if fe, ok := fieldErrors[f]; ok && v.Has(f) {
			errs = append(errs, fe)
		}
	}
	return errors.Join(errs...)
}

var validate = validators.New()

// Validate checks every rule independently and reports all failing fields.
// It has no side effects; branch and message are never checked.
func Validate(r Request) ValidationResult {
	result := ValidationResult{}

	err := validate.Struct(r)
	if err == nil {
		return result
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return result
	}

	for _, fe := range verrs {
		f := Field(fe.Field())
		if e, ok := fieldErrors[f]; ok {
			result[f] = e.Message
		}
	}
	return result
}
