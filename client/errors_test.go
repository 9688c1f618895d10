package client

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopfront/paypal-integration-api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitDecodeError(t *testing.T) {

	Convey("Structured error body decodes into a RemoteError", t, func() {
		body := []byte(`{"name":"WEBHOOK_URL_ALREADY_EXISTS","message":"Webhook URL already exists","details":[{"issue":"duplicate url","field":"url"}]}`)

		err := decodeError(http.StatusBadRequest, body)

		var remoteErr *RemoteError
		So(errors.As(err, &remoteErr), ShouldBeTrue)
		So(remoteErr.Name, ShouldEqual, ErrorNameWebhookURLAlreadyExists)
		So(remoteErr.Message, ShouldEqual, "Webhook URL already exists")
		So(remoteErr.Details, ShouldResemble, []models.ErrorDetail{{Issue: "duplicate url", Field: "url"}})
	})

	Convey("OAuth error body decodes into a RemoteError", t, func() {
		body := []byte(`{"error":"invalid_client","error_description":"Client Authentication failed"}`)

		err := decodeError(http.StatusUnauthorized, body)

		var remoteErr *RemoteError
		So(errors.As(err, &remoteErr), ShouldBeTrue)
		So(remoteErr.Name, ShouldEqual, "invalid_client")
		So(remoteErr.Message, ShouldEqual, "Client Authentication failed")
	})

	Convey("Non-JSON body yields a TransportError, never a decode failure", t, func() {
		bodies := [][]byte{
			[]byte("<html>Service Unavailable</html>"),
			[]byte(""),
			[]byte("{truncated"),
			nil,
		}

		for _, body := range bodies {
			err := decodeError(http.StatusServiceUnavailable, body)

			var transportErr *TransportError
			So(errors.As(err, &transportErr), ShouldBeTrue)
			So(transportErr.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
			So(transportErr.Body, ShouldResemble, body)
		}
	})

	Convey("JSON body without a recognisable shape yields a TransportError", t, func() {
		body := []byte(`{"unexpected":"shape"}`)

		err := decodeError(http.StatusInternalServerError, body)

		var transportErr *TransportError
		So(errors.As(err, &transportErr), ShouldBeTrue)
	})

	Convey("RemoteError message includes the first detail issue", t, func() {
		remoteErr := &RemoteError{
			Name:    ErrorNameValidationError,
			Message: "Invalid request - see details",
			Details: []models.ErrorDetail{{Issue: "Required field missing"}},
		}
		So(remoteErr.Error(), ShouldEqual, "VALIDATION_ERROR: Invalid request - see details: Required field missing")
	})
}
