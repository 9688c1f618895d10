package models

// ErrorResponse is the structured error body returned by the PayPal REST API
// for business failures. Name is the stable classification dimension; Message
// is free text and may be reworded by PayPal without notice.
type ErrorResponse struct {
	Name            string        `json:"name"`
	Message         string        `json:"message"`
	InformationLink string        `json:"information_link,omitempty"`
	DebugID         string        `json:"debug_id,omitempty"`
	Details         []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail describes a single issue within an ErrorResponse. Field is
// absent when the issue is not tied to one request field.
type ErrorDetail struct {
	Issue string `json:"issue"`
	Field string `json:"field,omitempty"`
}

// OAuthErrorResponse is the error body shape of the OAuth token endpoint,
// which differs from the REST resource endpoints.
type OAuthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
