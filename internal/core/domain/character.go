package domain

import "strings"

// CharacterRecord stores the long-lived credentials for one authenticated
// character. Records are keyed by character name in the roster file; a
// re-authentication of the same character replaces the old record.
type CharacterRecord struct {
	// Name is the canonical character name from the SSO verify endpoint.
	Name string `json:"name"`
	// ID is the numeric character ID assigned by the game.
	ID int32 `json:"id"`
	// RefreshToken is the long-lived token used to mint access tokens.
	RefreshToken string `json:"refresh_token"`
	// Scopes is the space-delimited scope string granted at auth time.
	Scopes string `json:"scopes"`
}

// Roster maps character name to credential record. The whole map is read at
// startup and rewritten wholesale after every successful auth.
type Roster map[string]CharacterRecord

// Find looks up a record by exact name, falling back to the first record
// whose name has the given prefix. Returns nil when nothing matches.
func (r Roster) Find(name string) *CharacterRecord {
	if rec, ok := r[name]; ok {
		return &rec
	}
	for key, rec := range r {
		if strings.HasPrefix(key, name) {
			return &rec
		}
	}
	return nil
}

// CallbackResult carries the authorization code and state from the OAuth
// redirect. Produced once per listener invocation and consumed immediately.
type CallbackResult struct {
	Code  string
	State string
}

// VerifiedCharacter is the identity returned by the SSO verify endpoint.
type VerifiedCharacter struct {
	CharacterID   int32  `json:"CharacterID"`
	CharacterName string `json:"CharacterName"`
	Scopes        string `json:"Scopes"`
}
