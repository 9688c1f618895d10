package models

// CreateWebhookRequest is the request sent to PayPal to register a webhook
// callback URL for a set of event types.
type CreateWebhookRequest struct {
	URL        string             `json:"url"`
	EventTypes []WebhookEventType `json:"event_types"`
}

// WebhookEventType names a single event type subscription. The name "*"
// subscribes to all events.
type WebhookEventType struct {
	Name string `json:"name"`
}

// Webhook is the registration resource returned by PayPal.
type Webhook struct {
	ID         string             `json:"id"`
	URL        string             `json:"url"`
	EventTypes []WebhookEventType `json:"event_types"`
}
