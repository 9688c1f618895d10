package models

import "time"

// expiryMargin is subtracted from the token lifetime when checking validity,
// so a token is never presented moments before PayPal stops accepting it.
const expiryMargin = time.Hour

// Token is a bearer token obtained from the PayPal OAuth token endpoint.
// IssuedAt is stamped locally when the token response is received.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"-"`
}

// ExpiresAt returns the instant the remote service stops accepting the token.
func (t *Token) ExpiresAt() time.Time {
	return t.IssuedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// ValidAt reports whether the token can still be presented at the given
// instant. A token within one hour of expiry counts as invalid.
func (t *Token) ValidAt(now time.Time) bool {
	return now.Before(t.ExpiresAt().Add(-expiryMargin))
}

// TokenResourceDB is the database representation of a cached token, keyed by
// the credentials context it was issued for.
type TokenResourceDB struct {
	ID          string    `bson:"_id"`
	AccessToken string    `bson:"access_token"`
	TokenType   string    `bson:"token_type"`
	ExpiresIn   int64     `bson:"expires_in"`
	IssuedAt    time.Time `bson:"issued_at"`
}
