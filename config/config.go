// Package config defines the environment variable and command-line flags
// supported by this library and includes default values for particular
// fields.
package config

import (
	"sync"

	"github.com/companieshouse/gofigure"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for the PayPal integration.
type Config struct {
	APIBaseLive           string `env:"PAYPAL_API_BASE_LIVE"           flag:"paypal-api-base-live"           flagDesc:"Base URL for the live PayPal REST API"`
	APIBaseSandbox        string `env:"PAYPAL_API_BASE_SANDBOX"        flag:"paypal-api-base-sandbox"        flagDesc:"Base URL for the sandbox PayPal REST API"`
	RequestTimeoutSeconds int    `env:"PAYPAL_REQUEST_TIMEOUT_SECONDS" flag:"paypal-request-timeout-seconds" flagDesc:"Timeout in seconds applied to every outbound PayPal request"`
	MongoDBURL            string `env:"MONGODB_URL"                    flag:"mongodb-url"                    flagDesc:"MongoDB server URL for the shared token store"`
	Database              string `env:"MONGODB_DATABASE"               flag:"mongodb-database"               flagDesc:"MongoDB database for the shared token store"`
	Collection            string `env:"MONGODB_COLLECTION"             flag:"mongodb-collection"             flagDesc:"MongoDB collection for cached tokens"`
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		APIBaseLive:           "https://api.paypal.com",
		APIBaseSandbox:        "https://api.sandbox.paypal.com",
		RequestTimeoutSeconds: 30,
		Database:              "checkout",
		Collection:            "paypal_tokens",
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
