package appointment

import "github.com/BruksfildServices01/dental-clinic/internal/clinic"

// Request is the appointment request being edited on the page.
type Request struct {
	FullName  string `json:"fullName" form:"fullName" validate:"notblank"`
	Phone     string `json:"phone" form:"phone" validate:"mobile"`
	Branch    string `json:"branch" form:"branch"`
	Treatment string `json:"treatment" form:"treatment" validate:"treatment"`
	Message   string `json:"message" form:"message"`
}

// Default is the shape of a fresh form: everything empty except the branch,
// which starts on the first clinic branch.
func Default() Request {
	return Request{Branch: clinic.DefaultBranch()}
}

// With returns a copy of r with a single field replaced. Unknown fields leave
// the copy unchanged and report false.
func (r Request) With(f Field, value string) (Request, bool) {
	switch f {
	case FieldFullName:
		r.FullName = value
	case FieldPhone:
		r.Phone = value
	case FieldBranch:
		r.Branch = value
	case FieldTreatment:
		r.Treatment = value
	case FieldMessage:
		r.Message = value
	default:
		return r, false
	}
	return r, true
}
