package appointment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/dental-clinic/internal/clinic"
)

func validRequest() Request {
	return Request{
		FullName:  "Asha Rao",
		Phone:     "9876543210",
		Branch:    "Kondapur",
		Treatment: "Braces",
	}
}

func TestValidate_ValidRequest(t *testing.T) {
	result := Validate(validRequest())

	assert.NotNil(t, result)
	assert.Empty(t, result)
	assert.True(t, result.Valid())
	assert.NoError(t, result.Err())
}

func TestValidate_EveryTreatmentAndBranchIsAccepted(t *testing.T) {
	for _, branch := range clinic.Branches() {
		for _, treatment := range clinic.Treatments() {
			r := validRequest()
			r.Branch = branch
			r.Treatment = treatment
			assert.Empty(t, Validate(r), "%s / %s", branch, treatment)
		}
	}
}

func TestValidate_AllRulesRunIndependently(t *testing.T) {
	r := Request{
		FullName:  "",
		Phone:     "12345",
		Branch:    "Banjara Hills",
		Treatment: "",
	}

	assert.Equal(t, ValidationResult{
		FieldFullName:  "Full Name is required",
		FieldPhone:     "Invalid phone number",
		FieldTreatment: "Select a treatment",
	}, Validate(r))
}

func TestValidate_ReportsExactlyTheFailingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
		want   []Field
	}{
		{"blank name", func(r *Request) { r.FullName = "   " }, []Field{FieldFullName}},
		{"leading digit 5", func(r *Request) { r.Phone = "5876543210" }, []Field{FieldPhone}},
		{"eleven digits", func(r *Request) { r.Phone = "98765432100" }, []Field{FieldPhone}},
		{"phone with spaces", func(r *Request) { r.Phone = "98765 43210" }, []Field{FieldPhone}},
		{"placeholder treatment", func(r *Request) { r.Treatment = "" }, []Field{FieldTreatment}},
		{"unknown treatment", func(r *Request) { r.Treatment = "Haircut" }, []Field{FieldTreatment}},
		{"name and treatment", func(r *Request) {
			r.FullName = ""
			r.Treatment = ""
		}, []Field{FieldFullName, FieldTreatment}},
		{"unknown branch is not validated", func(r *Request) { r.Branch = "Gachibowli" }, nil},
		{"message is not validated", func(r *Request) { r.Message = "\x00 anything" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)

			result := Validate(r)

			got := make([]Field, 0, len(result))
			for f := range result {
				got = append(got, f)
			}
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestValidate_Idempotent(t *testing.T) {
	r := Request{FullName: "x", Phone: "5555", Treatment: ""}

	first := Validate(r)
	second := Validate(r)

	assert.Equal(t, first, second)
	assert.Equal(t, Request{FullName: "x", Phone: "5555", Treatment: ""}, r)
}

func TestValidationResult_Err(t *testing.T) {
	result := Validate(Request{Phone: "1"})

	err := result.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingName))
	assert.True(t, errors.Is(err, ErrInvalidPhone))
	assert.True(t, errors.Is(err, ErrMissingTreatment))
}

func TestValidationResult_Clone(t *testing.T) {
	var empty ValidationResult
	assert.NotNil(t, empty.Clone())

	original := ValidationResult{FieldPhone: "Invalid phone number"}
	clone := original.Clone()
	clone[FieldFullName] = "Full Name is required"

	assert.Len(t, original, 1)
	assert.True(t, clone.Has(FieldFullName))
}
