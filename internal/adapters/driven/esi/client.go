// Package esi provides the EVE SSO and ESI HTTP client.
// Tokens are explicit values: every call takes the token it needs and
// token-producing calls return a fresh pair. The client itself is stateless
// apart from its rate limiter.
package esi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/ports/driven"
)

// SSO and ESI endpoint constants.
const (
	defaultAuthURL   = "https://login.eveonline.com/oauth/authorize"
	defaultTokenURL  = "https://login.eveonline.com/oauth/token" //nolint:gosec // G101: OAuth endpoint URL, not credentials
	defaultVerifyURL = "https://login.eveonline.com/oauth/verify"
	defaultBaseURL   = "https://esi.evetech.net/latest"

	userAgent = "evecrop"
)

// Config configures the client. URL fields default to the public
// SSO/ESI endpoints and exist so tests can point at a local server.
type Config struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
	Scopes       []string

	AuthURL   string
	TokenURL  string
	VerifyURL string
	BaseURL   string
}

// Ensure Client implements the interface.
var _ driven.SkillAPI = (*Client)(nil)

// Client talks to the SSO token endpoints and the ESI character endpoints.
type Client struct {
	oauth     oauth2.Config
	verifyURL string
	baseURL   string
	httpc     *http.Client
	limiter   *RateLimiter
}

// NewClient creates a client for the given SSO application.
func NewClient(cfg Config) *Client {
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = defaultVerifyURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	return &Client{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		verifyURL: cfg.VerifyURL,
		baseURL:   cfg.BaseURL,
		httpc:     &http.Client{Timeout: 30 * time.Second},
		limiter:   NewRateLimiter(),
	}
}

// AuthorizeURL builds the browser authorization URL carrying state.
func (c *Client) AuthorizeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades an authorization code for a token pair.
func (c *Client) Exchange(ctx context.Context, code string) (domain.TokenPair, error) {
	tok, err := c.oauth.Exchange(c.oauthContext(ctx), code)
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("%w: exchange code: %v", domain.ErrRemoteAPI, err)
	}
	return tokenPair(tok), nil
}

// Refresh mints a fresh token pair from a stored refresh token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	src := c.oauth.TokenSource(c.oauthContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("%w: refresh token: %v", domain.ErrRemoteAPI, err)
	}
	return tokenPair(tok), nil
}

// Verify resolves an access token to its character identity.
func (c *Client) Verify(ctx context.Context, accessToken string) (*domain.VerifiedCharacter, error) {
	var verified domain.VerifiedCharacter
	if err := c.get(ctx, c.verifyURL, accessToken, &verified); err != nil {
		return nil, err
	}
	return &verified, nil
}

// Skills fetches the character's trained skills.
func (c *Client) Skills(ctx context.Context, accessToken string, characterID int32) ([]domain.TrainedSkill, error) {
	var body struct {
		Skills  []domain.TrainedSkill `json:"skills"`
		TotalSP int64                 `json:"total_sp"`
	}
	url := fmt.Sprintf("%s/characters/%d/skills/", c.baseURL, characterID)
	if err := c.get(ctx, url, accessToken, &body); err != nil {
		return nil, err
	}
	return body.Skills, nil
}

// SkillQueue fetches the character's scheduled training queue.
func (c *Client) SkillQueue(ctx context.Context, accessToken string, characterID int32) ([]domain.QueuedSkill, error) {
	var queue []domain.QueuedSkill
	url := fmt.Sprintf("%s/characters/%d/skillqueue/", c.baseURL, characterID)
	if err := c.get(ctx, url, accessToken, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// get performs a rate-limited authenticated GET and decodes the JSON body.
func (c *Client) get(ctx context.Context, url, accessToken string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", domain.ErrRemoteAPI, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == 420 || resp.StatusCode == http.StatusTooManyRequests {
		reset, _ := strconv.Atoi(resp.Header.Get("X-Esi-Error-Limit-Reset"))
		c.limiter.RecordErrorLimit(reset)
		return fmt.Errorf("%w: GET %s: error limited (status %d)", domain.ErrRemoteAPI, url, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("%w: GET %s: status %d: %s", domain.ErrRemoteAPI, url, resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: GET %s: decode body: %v", domain.ErrRemoteAPI, url, err)
	}
	return nil
}

// oauthContext makes the oauth2 package use our timeout-bounded client.
func (c *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpc)
}

func tokenPair(tok *oauth2.Token) domain.TokenPair {
	return domain.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Expiry:       tok.Expiry,
	}
}
