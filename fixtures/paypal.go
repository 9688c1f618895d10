// Package fixtures provides canned PayPal payloads for tests.
package fixtures

import "github.com/shopfront/paypal-integration-api/models"

// GetTokenResponse returns the token endpoint response body for a token
// lasting the given number of seconds.
func GetTokenResponse(expiresIn int64) map[string]interface{} {
	return map[string]interface{}{
		"scope":        "https://uri.paypal.com/services/payments/payment",
		"access_token": "A21AAFs-token",
		"token_type":   "Bearer",
		"app_id":       "APP-80W284485P519543T",
		"expires_in":   expiresIn,
	}
}

// GetWebhookAlreadyExistsError returns the error body PayPal sends when the
// webhook URL is already registered.
func GetWebhookAlreadyExistsError() *models.ErrorResponse {
	return &models.ErrorResponse{
		Name:    "WEBHOOK_URL_ALREADY_EXISTS",
		Message: "Webhook URL already exists",
		DebugID: "e2c4b1a8d7f60",
	}
}

// GetValidationError returns a generic validation error body with one field
// issue.
func GetValidationError() *models.ErrorResponse {
	return &models.ErrorResponse{
		Name:    "VALIDATION_ERROR",
		Message: "Invalid request - see details",
		DebugID: "b6d9a17c24e80",
		Details: []models.ErrorDetail{
			{
				Issue: "Required field missing",
				Field: "transactions[0].amount",
			},
		},
	}
}

// GetFinancingOptionsResponse returns a financing options listing, with one
// qualifying option when qualifying is true and none otherwise.
func GetFinancingOptionsResponse(qualifying bool) *models.FinancingOptionsResponse {
	options := models.FinancingOptions{
		NonQualifyingFinancingOptions: []models.FinancingOption{
			{
				Term:           models.CreditTerm{Term: 24},
				MonthlyPayment: models.Money{Value: "10.45", CurrencyCode: "EUR"},
			},
		},
	}

	if qualifying {
		options.QualifyingFinancingOptions = []models.FinancingOption{
			{
				Term:           models.CreditTerm{Term: 12, APR: "9.99"},
				MonthlyPayment: models.Money{Value: "18.10", CurrencyCode: "EUR"},
				TotalInterest:  models.Money{Value: "17.20", CurrencyCode: "EUR"},
				TotalCost:      models.Money{Value: "217.20", CurrencyCode: "EUR"},
			},
		}
	}

	return &models.FinancingOptionsResponse{
		FinancingOptions: []models.FinancingOptions{options},
	}
}

// GetWebhook returns a registered webhook resource.
func GetWebhook(url string) *models.Webhook {
	return &models.Webhook{
		ID:         "0EH40505U7160970P",
		URL:        url,
		EventTypes: []models.WebhookEventType{{Name: "*"}},
	}
}
