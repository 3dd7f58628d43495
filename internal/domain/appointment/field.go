package appointment

// Field names a control of the appointment form. The value doubles as the
// wire name used by the HTML form, the JSON API and validation results.
type Field string

const (
	FieldFullName  Field = "fullName"
	FieldPhone     Field = "phone"
	FieldBranch    Field = "branch"
	FieldTreatment Field = "treatment"
	FieldMessage   Field = "message"
)

var fields = []Field{
	FieldFullName,
	FieldPhone,
	FieldBranch,
	FieldTreatment,
	FieldMessage,
}

// Fields returns every form field in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// ParseField resolves a wire name to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

func (f Field) String() string { return string(f) }
