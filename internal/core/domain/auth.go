package domain

import "time"

// OAuthToken represents stored OAuth credentials for the sheet backend.
type OAuthToken struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires.
	Expiry time.Time `json:"expiry,omitempty"`
}

// IsExpired returns true if the access token has expired.
func (t *OAuthToken) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}

// HasRefreshToken returns true if a refresh token is available.
func (t *OAuthToken) HasRefreshToken() bool {
	return t.RefreshToken != ""
}

// IsValid returns true if the token is usable as-is or refreshable.
func (t *OAuthToken) IsValid() bool {
	if t.AccessToken == "" && t.RefreshToken == "" {
		return false
	}
	return !t.IsExpired() || t.HasRefreshToken()
}
