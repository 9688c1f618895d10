package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal-integration-api/models"
	"github.com/shopspring/decimal"
)

const financingOptionsPath = "/v1/credit/calculated-financing-options"

// installments financing is only offered on the German market
const installmentsCountryCode = "DE"

// CheckInstallmentsAvailability reports whether qualifying installments
// financing exists for the given amount. A missing option list, a remote
// error or a transport failure are all a negative availability signal, not a
// system failure, so the result collapses to false.
func (c *Client) CheckInstallmentsAvailability(ctx context.Context, credentials models.Credentials, amount decimal.Decimal, currencyCode string) bool {
	financingRequest := models.FinancingOptionsRequest{
		FinancingCountryCode: installmentsCountryCode,
		TransactionAmount: models.Money{
			Value:        amount.StringFixed(2),
			CurrencyCode: currencyCode,
		},
	}

	var financingResponse models.FinancingOptionsResponse
	err := c.Send(ctx, credentials, http.MethodPost, financingOptionsPath, financingRequest, &financingResponse, AttributionIDInstallments)
	if err != nil {
		log.Error(fmt.Errorf("could not get installments financing options due to a communication failure: [%v]", err),
			log.Data{"shop_id": credentials.ShopID})
		return false
	}

	if len(financingResponse.FinancingOptions) == 0 {
		return false
	}

	return len(financingResponse.FinancingOptions[0].QualifyingFinancingOptions) > 0
}
