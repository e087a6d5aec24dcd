package driven

import (
	"context"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

// SkillAPI is the remote SSO + game API collaborator. Implementations hold
// no token state: every authenticated call takes an explicit access token
// and token-producing calls return an explicit TokenPair.
type SkillAPI interface {
	// AuthorizeURL builds the browser authorization URL carrying state.
	AuthorizeURL(state string) string

	// Exchange trades an authorization code for a token pair.
	Exchange(ctx context.Context, code string) (domain.TokenPair, error)

	// Refresh mints a fresh token pair from a stored refresh token.
	Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error)

	// Verify resolves an access token to its character identity.
	Verify(ctx context.Context, accessToken string) (*domain.VerifiedCharacter, error)

	// Skills fetches the character's trained skills.
	Skills(ctx context.Context, accessToken string, characterID int32) ([]domain.TrainedSkill, error)

	// SkillQueue fetches the character's scheduled training queue.
	SkillQueue(ctx context.Context, accessToken string, characterID int32) ([]domain.QueuedSkill, error)
}

// CallbackListener waits for the single OAuth redirect hitting the local
// callback endpoint.
type CallbackListener interface {
	// Await blocks until one connection delivers the callback, then stops
	// listening. It is single-shot: each auth attempt gets its own call.
	Await(addr string) (*domain.CallbackResult, error)
}
