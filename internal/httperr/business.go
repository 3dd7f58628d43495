package httperr

// Error codes returned by the booking API.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeUnknownField    = "unknown_field"
	CodeRateLimited     = "rate_limited"
	CodeSessionRequired = "session_required"
)
