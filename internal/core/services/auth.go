package services

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
	"github.com/nullsec-labs/evecrop/internal/logger"
)

// AuthFlow runs the interactive authorization loop: each iteration
// authenticates one character through the browser consent step and persists
// its credentials before the next begins.
type AuthFlow struct {
	api          driven.SkillAPI
	roster       *RosterService
	listener     driven.CallbackListener
	callbackAddr string
	out          io.Writer

	// openBrowser launches the consent URL; nil disables auto-open.
	openBrowser func(url string) error
	// newState generates the OAuth state parameter. Overridable in tests.
	newState func() string
}

// NewAuthFlow creates an auth flow. out receives operator prompts;
// openBrowser may be nil.
func NewAuthFlow(
	api driven.SkillAPI,
	roster *RosterService,
	listener driven.CallbackListener,
	callbackAddr string,
	out io.Writer,
	openBrowser func(url string) error,
) *AuthFlow {
	return &AuthFlow{
		api:          api,
		roster:       roster,
		listener:     listener,
		callbackAddr: callbackAddr,
		out:          out,
		openBrowser:  openBrowser,
		newState:     func() string { return uuid.New().String() },
	}
}

// Run authenticates characters until an error occurs or ctx is cancelled.
// It never returns nil: the loop only ends when something fails or the
// operator interrupts the process.
func (f *AuthFlow) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec, err := f.AuthenticateOne(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(f.out, "Authenticated %s (%d). Waiting for the next character...\n", rec.Name, rec.ID)
	}
}

// AuthenticateOne walks one character through consent, code exchange,
// identity verification and roster persistence. The roster is only touched
// after every remote step has succeeded.
func (f *AuthFlow) AuthenticateOne(ctx context.Context) (*domain.CharacterRecord, error) {
	state := f.newState()
	authURL := f.api.AuthorizeURL(state)
	fmt.Fprintf(f.out, "Authenticating. Open the following URL in your browser:\n%s\n", authURL)
	if f.openBrowser != nil {
		if err := f.openBrowser(authURL); err != nil {
			logger.Debug("browser open failed: %v", err)
		}
	}

	result, err := f.listener.Await(f.callbackAddr)
	if err != nil {
		return nil, err
	}
	if result.State != state {
		return nil, fmt.Errorf("%w: state mismatch: expected %s, got %s",
			domain.ErrParse, state, result.State)
	}

	pair, err := f.api.Exchange(ctx, result.Code)
	if err != nil {
		return nil, err
	}

	verified, err := f.api.Verify(ctx, pair.AccessToken)
	if err != nil {
		return nil, err
	}
	logger.Debug("verified character %s (%d), scopes: %s",
		verified.CharacterName, verified.CharacterID, verified.Scopes)

	rec := domain.CharacterRecord{
		Name:         verified.CharacterName,
		ID:           verified.CharacterID,
		RefreshToken: pair.RefreshToken,
		Scopes:       verified.Scopes,
	}
	if err := f.roster.Upsert(rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
