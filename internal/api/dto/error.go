package dto

// Error codes a client can branch on. Only failures that warrant a distinct
// client reaction carry a code; plain authentication failures stay opaque.
const (
	CodeTenantAccessDenied  = "TENANT_ACCESS_DENIED"
	CodeInsufficientRole    = "INSUFFICIENT_ROLE"
	CodeNoteLimitExceeded   = "NOTE_LIMIT_EXCEEDED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
)

// Error represents a standard error response
type Error struct {
	Error string `json:"error" example:"error message"`
	Code  string `json:"code,omitempty" example:"NOTE_LIMIT_EXCEEDED"`
}
