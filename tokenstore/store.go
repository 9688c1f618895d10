// Package tokenstore provides the pluggable backing stores for cached PayPal
// bearer tokens. A store holds at most one token per credentials context key.
package tokenstore

import "github.com/shopfront/paypal-integration-api/models"

// Store is an interface for accessing cached tokens from a backend store
type Store interface {
	Get(key string) (*models.Token, error)
	Set(key string, token *models.Token) error
	Clear(key string) error
}
