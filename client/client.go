// Package client implements the PayPal REST API client core: a token cache
// with single-flight refresh, an authenticated request pipeline with typed
// failure classification, idempotent webhook registration, payment patching
// for express checkout and the installments availability probe.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopfront/paypal-integration-api/config"
	"github.com/shopfront/paypal-integration-api/models"
	"github.com/shopfront/paypal-integration-api/tokenstore"
)

const tokenPath = "/v1/oauth2/token"

// Partner attribution ids identify the integration flow that produced a
// request, for PayPal's analytics. The attribution id is request scoped -
// it is never stored on the client.
const (
	AttributionIDCheckout        = "Shopfront_Cart"
	AttributionIDExpressCheckout = "Shopfront_Cart_ECS"
	AttributionIDInstallments    = "Shopfront_Cart_Installments"
)

// Client issues authenticated requests against the PayPal REST API. It is
// safe for concurrent use; the token cache is its only mutable state.
type Client struct {
	Config     *config.Config
	HTTPClient *http.Client
	Tokens     *TokenCache
}

// New returns a Client whose token cache is backed by the given store.
func New(cfg *config.Config, store tokenstore.Store) *Client {
	c := &Client{
		Config: cfg,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
		},
	}
	c.Tokens = NewTokenCache(store, c)
	return c
}

func (c *Client) apiBase(sandbox bool) string {
	if sandbox {
		return c.Config.APIBaseSandbox
	}
	return c.Config.APIBaseLive
}

// Authenticate performs the OAuth client-credentials exchange against the
// environment selected by the credentials and returns the issued token.
func (c *Client) Authenticate(ctx context.Context, credentials models.Credentials) (*models.Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.apiBase(credentials.Sandbox)+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal token endpoint: [%s]", err)
	}

	request.SetBasicAuth(credentials.ClientID, credentials.ClientSecret)
	request.Header.Add("Accept", "application/json")
	request.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	issuedAt := time.Now()
	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	defer response.Body.Close()
	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: response.StatusCode, Err: err}
	}

	if response.StatusCode < http.StatusOK || response.StatusCode > 299 {
		return nil, decodeError(response.StatusCode, body)
	}

	var token models.Token
	if err = json.Unmarshal(body, &token); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if token.AccessToken == "" {
		return nil, &DecodeError{Body: body, Err: errors.New("token response missing access_token")}
	}

	token.IssuedAt = issuedAt
	return &token, nil
}

// Send issues an authenticated JSON request and decodes the response into
// out when it is non-nil. A 401 invalidates the cached token for the
// credentials context before the AuthorizationError is returned; Send itself
// never retries - retry policy belongs to the caller.
func (c *Client) Send(ctx context.Context, credentials models.Credentials, method, path string, body, out interface{}, attributionID string) error {
	validate := validator.New()
	if err := validate.Struct(credentials); err != nil {
		return fmt.Errorf("invalid PayPal credentials: [%v]", err)
	}

	token, err := c.Tokens.GetValidToken(ctx, credentials)
	if err != nil {
		return err
	}

	var requestBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("error marshalling request body for PayPal: [%s]", err)
		}
		requestBody = bytes.NewBuffer(raw)
	} else {
		requestBody = &bytes.Buffer{}
	}

	request, err := http.NewRequestWithContext(ctx, method, c.apiBase(credentials.Sandbox)+path, requestBody)
	if err != nil {
		return fmt.Errorf("error generating request for PayPal: [%s]", err)
	}

	request.Header.Add("Accept", "application/json")
	request.Header.Add("Authorization", "Bearer "+token.AccessToken)
	request.Header.Add("Content-Type", "application/json")
	if attributionID != "" {
		request.Header.Add("PayPal-Partner-Attribution-Id", attributionID)
	}

	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return &TransportError{Err: err}
	}

	defer response.Body.Close()
	responseBody, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return &TransportError{StatusCode: response.StatusCode, Err: err}
	}

	switch {
	case response.StatusCode >= http.StatusOK && response.StatusCode <= 299:
		if out == nil || len(responseBody) == 0 {
			return nil
		}
		if err = json.Unmarshal(responseBody, out); err != nil {
			return &DecodeError{Body: responseBody, Err: err}
		}
		return nil
	case response.StatusCode == http.StatusUnauthorized:
		c.Tokens.Invalidate(credentials)
		return &AuthorizationError{Body: responseBody}
	default:
		return decodeError(response.StatusCode, responseBody)
	}
}

// ValidateCredentials verifies a client id and secret by forcing a fresh
// token exchange, bypassing any cached token.
func (c *Client) ValidateCredentials(ctx context.Context, credentials models.Credentials) error {
	validate := validator.New()
	if err := validate.Struct(credentials); err != nil {
		return fmt.Errorf("invalid PayPal credentials: [%v]", err)
	}

	c.Tokens.Invalidate(credentials)
	_, err := c.Tokens.GetValidToken(ctx, credentials)
	return err
}
