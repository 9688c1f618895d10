package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/shopfront/paypal-integration-api/fixtures"
	"github.com/shopfront/paypal-integration-api/models"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

const testFinancingURL = testAPIBase + "/v1/credit/calculated-financing-options"

func TestUnitCheckInstallmentsAvailability(t *testing.T) {
	amount := decimal.NewFromFloat(200.0)

	Convey("Qualifying financing option reports availability", t, func() {
		testClient := createTestClient()
		httpmock.ActivateNonDefault(testClient.HTTPClient)
		defer httpmock.DeactivateAndReset()
		registerTokenResponder()

		financingResponder, _ := httpmock.NewJsonResponder(http.StatusOK, fixtures.GetFinancingOptionsResponse(true))
		httpmock.RegisterResponder("POST", testFinancingURL, financingResponder)

		So(testClient.CheckInstallmentsAvailability(context.Background(), testCredentials, amount, "EUR"), ShouldBeTrue)
	})

	Convey("Only non-qualifying options reports unavailability", t, func() {
		testClient := createTestClient()
		httpmock.ActivateNonDefault(testClient.HTTPClient)
		defer httpmock.DeactivateAndReset()
		registerTokenResponder()

		financingResponder, _ := httpmock.NewJsonResponder(http.StatusOK, fixtures.GetFinancingOptionsResponse(false))
		httpmock.RegisterResponder("POST", testFinancingURL, financingResponder)

		So(testClient.CheckInstallmentsAvailability(context.Background(), testCredentials, amount, "EUR"), ShouldBeFalse)
	})

	Convey("Empty option list reports unavailability", t, func() {
		testClient := createTestClient()
		httpmock.ActivateNonDefault(testClient.HTTPClient)
		defer httpmock.DeactivateAndReset()
		registerTokenResponder()

		financingResponder, _ := httpmock.NewJsonResponder(http.StatusOK, &models.FinancingOptionsResponse{})
		httpmock.RegisterResponder("POST", testFinancingURL, financingResponder)

		So(testClient.CheckInstallmentsAvailability(context.Background(), testCredentials, amount, "EUR"), ShouldBeFalse)
	})

	Convey("Remote or transport failure collapses to unavailability", t, func() {
		testClient := createTestClient()
		httpmock.ActivateNonDefault(testClient.HTTPClient)
		defer httpmock.DeactivateAndReset()
		registerTokenResponder()

		httpmock.RegisterResponder("POST", testFinancingURL,
			httpmock.NewErrorResponder(errors.New("connection reset")))

		So(testClient.CheckInstallmentsAvailability(context.Background(), testCredentials, amount, "EUR"), ShouldBeFalse)
	})
}
