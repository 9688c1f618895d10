package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal-integration-api/models"
)

const webhooksPath = "/v1/notifications/webhooks"

// RegisterWildcardWebhook registers the callback URL for all event types.
// Registration is idempotent: PayPal reports a duplicate URL as
// WEBHOOK_URL_ALREADY_EXISTS rather than succeeding, and that outcome is
// treated as success here since re-registration happens on every plugin
// activation. Every other failure propagates unchanged.
func (c *Client) RegisterWildcardWebhook(ctx context.Context, credentials models.Credentials, callbackURL string) (string, error) {
	webhookRequest := models.CreateWebhookRequest{
		URL:        callbackURL,
		EventTypes: []models.WebhookEventType{{Name: "*"}},
	}

	var webhook models.Webhook
	err := c.Send(ctx, credentials, http.MethodPost, webhooksPath, webhookRequest, &webhook, "")
	if err != nil {
		var remoteErr *RemoteError
		if errors.As(err, &remoteErr) && remoteErr.Name == ErrorNameWebhookURLAlreadyExists {
			log.Debug("webhook url already registered", log.Data{"url": callbackURL})
			return callbackURL, nil
		}

		log.Error(fmt.Errorf("could not register webhooks due to a communication failure: [%v]", err),
			log.Data{"url": callbackURL, "shop_id": credentials.ShopID})
		return "", err
	}

	return webhook.URL, nil
}
