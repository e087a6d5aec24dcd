package domain

import "time"

// TokenPair is an explicit access/refresh token value. Remote calls take and
// return TokenPairs; nothing in the client layer holds token state.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// IsExpired returns true if the access token has expired.
func (t TokenPair) IsExpired() bool {
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry)
}
