package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, Request{
		FullName:  "",
		Phone:     "",
		Branch:    "Banjara Hills",
		Treatment: "",
		Message:   "",
	}, Default())
}

func TestRequestWith(t *testing.T) {
	original := Default()

	updated, ok := original.With(FieldPhone, "9876543210")

	assert.True(t, ok)
	assert.Equal(t, "9876543210", updated.Phone)
	assert.Equal(t, "", original.Phone)

	all := original
	for _, f := range Fields() {
		var ok bool
		all, ok = all.With(f, "v")
		assert.True(t, ok, f)
	}
	assert.Equal(t, Request{FullName: "v", Phone: "v", Branch: "v", Treatment: "v", Message: "v"}, all)
}

func TestRequestWith_UnknownField(t *testing.T) {
	r, ok := Default().With(Field("email"), "a@b.c")

	assert.False(t, ok)
	assert.Equal(t, Default(), r)
}

func TestParseField(t *testing.T) {
	f, ok := ParseField("treatment")
	assert.True(t, ok)
	assert.Equal(t, FieldTreatment, f)

	_, ok = ParseField("Treatment")
	assert.False(t, ok)
}

func TestPhaseTransitions(t *testing.T) {
	assert.Equal(t, PhaseAccepted, AfterValidation(ValidationResult{}))
	assert.Equal(t, PhaseIdle, AfterValidation(ValidationResult{FieldPhone: "Invalid phone number"}))

	assert.Equal(t, PhaseAccepted, PhaseOf(true))
	assert.Equal(t, PhaseIdle, PhaseOf(false))
}
