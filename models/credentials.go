package models

import "fmt"

// Credentials holds the REST API credentials for one shop context. They are
// supplied by the caller on every operation - the client never retains a
// cross-request default.
type Credentials struct {
	ClientID     string `json:"client_id"     validate:"required"`
	ClientSecret string `json:"client_secret" validate:"required"`
	Sandbox      bool   `json:"sandbox"`
	ShopID       string `json:"shop_id"       validate:"required"`
}

// CacheKey derives the token cache key for this credentials context. Tokens
// obtained for different shops, apps or environments must never be shared.
func (c Credentials) CacheKey() string {
	env := "live"
	if c.Sandbox {
		env = "sandbox"
	}
	return fmt.Sprintf("%s:%s:%s", c.ShopID, c.ClientID, env)
}
