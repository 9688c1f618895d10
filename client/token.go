package client

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal-integration-api/models"
	"github.com/shopfront/paypal-integration-api/tokenstore"
	"golang.org/x/sync/singleflight"
)

// Authenticator performs the OAuth client-credentials exchange for one
// credentials context.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials models.Credentials) (*models.Token, error)
}

// TokenCache hands out valid bearer tokens, refreshing them through the
// Authenticator when the cached one is absent or inside its expiry margin.
// Concurrent refreshes for the same credentials context are collapsed into a
// single exchange; unrelated contexts refresh independently.
type TokenCache struct {
	Store         tokenstore.Store
	Authenticator Authenticator
	group         singleflight.Group
	now           func() time.Time
}

// NewTokenCache returns a TokenCache over the given store and authenticator.
func NewTokenCache(store tokenstore.Store, authenticator Authenticator) *TokenCache {
	return &TokenCache{
		Store:         store,
		Authenticator: authenticator,
		now:           time.Now,
	}
}

// GetValidToken returns the cached token for the credentials context when it
// is still valid, performing no network call. Otherwise it authenticates,
// stores the fresh token and returns it. A failed exchange leaves the store
// untouched.
func (tc *TokenCache) GetValidToken(ctx context.Context, credentials models.Credentials) (*models.Token, error) {
	key := credentials.CacheKey()

	if token := tc.cached(key); token != nil {
		return token, nil
	}

	value, err, _ := tc.group.Do(key, func() (interface{}, error) {
		// a racing caller may have refreshed while this one waited on the group
		if token := tc.cached(key); token != nil {
			return token, nil
		}

		token, err := tc.Authenticator.Authenticate(ctx, credentials)
		if err != nil {
			return nil, err
		}

		if err := tc.Store.Set(key, token); err != nil {
			// the token itself is good, so a write failure only costs a refresh later
			log.Error(fmt.Errorf("error caching PayPal token: [%v]", err), log.Data{"context_key": key})
		}
		return token, nil
	})
	if err != nil {
		return nil, err
	}

	return value.(*models.Token), nil
}

// Invalidate removes any cached token for the credentials context so the next
// call re-authenticates.
func (tc *TokenCache) Invalidate(credentials models.Credentials) {
	key := credentials.CacheKey()
	if err := tc.Store.Clear(key); err != nil {
		log.Error(fmt.Errorf("error clearing cached PayPal token: [%v]", err), log.Data{"context_key": key})
	}
}

// cached returns the stored token for the key if it is present and valid.
// Store read failures count as a miss.
func (tc *TokenCache) cached(key string) *models.Token {
	token, err := tc.Store.Get(key)
	if err != nil {
		log.Error(fmt.Errorf("error reading cached PayPal token: [%v]", err), log.Data{"context_key": key})
		return nil
	}
	if token == nil || !token.ValidAt(tc.now()) {
		return nil
	}
	return token
}
