package client

import (
	"encoding/json"
	"fmt"

	"github.com/shopfront/paypal-integration-api/models"
)

// Recognised PayPal error names. Classification decisions are made on the
// error name, never on the free-text message.
const (
	ErrorNameWebhookURLAlreadyExists = "WEBHOOK_URL_ALREADY_EXISTS"
	ErrorNameValidationError         = "VALIDATION_ERROR"
	ErrorNameInvalidResourceID       = "INVALID_RESOURCE_ID"
	ErrorNamePaymentStateInvalid     = "PAYMENT_STATE_INVALID"
)

// TransportError is a failure with no structured PayPal error body: a network
// or timeout error, or a response whose body could not be decoded.
type TransportError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error calling PayPal: [%v]", e.Err)
	}
	return fmt.Sprintf("unexpected response from PayPal: status [%d] body [%s]", e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// AuthorizationError is a 401 from PayPal. The cached token for the
// credentials context has already been invalidated when this is returned.
type AuthorizationError struct {
	Body []byte
}

func (e *AuthorizationError) Error() string {
	return "PayPal rejected the bearer token or credentials"
}

// RemoteError is a structured business error decoded from a non-2xx PayPal
// response body.
type RemoteError struct {
	Name    string
	Message string
	Details []models.ErrorDetail
}

func (e *RemoteError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Name, e.Message, e.Details[0].Issue)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// DecodeError is a 2xx response whose body did not match the expected
// success shape.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error decoding PayPal response body: [%v]", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// decodeError converts a non-2xx response into a typed error value. It is
// total: a body that is not valid JSON, or lacks the expected fields, yields
// a TransportError carrying the raw status and body rather than a decode
// failure. The OAuth token endpoint reports errors in its own shape, which is
// folded into RemoteError so callers have a single type to match on.
func decodeError(statusCode int, body []byte) error {
	var remote models.ErrorResponse
	if err := json.Unmarshal(body, &remote); err == nil && remote.Name != "" {
		return &RemoteError{
			Name:    remote.Name,
			Message: remote.Message,
			Details: remote.Details,
		}
	}

	var oauthErr models.OAuthErrorResponse
	if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.Error != "" {
		return &RemoteError{
			Name:    oauthErr.Error,
			Message: oauthErr.ErrorDescription,
		}
	}

	return &TransportError{StatusCode: statusCode, Body: body}
}
