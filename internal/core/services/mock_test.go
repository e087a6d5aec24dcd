package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

// memStore is an in-memory RosterStore.
type memStore struct {
	mu     sync.Mutex
	roster domain.Roster
	err    error
}

func newMemStore(roster domain.Roster) *memStore {
	if roster == nil {
		roster = domain.Roster{}
	}
	return &memStore{roster: roster}
}

func (m *memStore) Load() (domain.Roster, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make(domain.Roster, len(m.roster))
	for k, v := range m.roster {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) Save(roster domain.Roster) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.roster = roster
	return nil
}

// fakeAPI implements driven.SkillAPI with canned per-character data.
type fakeAPI struct {
	mu sync.Mutex

	verified   *domain.VerifiedCharacter
	exchangeRT string

	// keyed by character ID
	skills map[int32][]domain.TrainedSkill
	queues map[int32][]domain.QueuedSkill

	// refresh tokens that fail, and IDs whose fetches fail
	failRefresh map[string]bool
	failSkills  map[int32]bool

	refreshCalls []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		skills:      map[int32][]domain.TrainedSkill{},
		queues:      map[int32][]domain.QueuedSkill{},
		failRefresh: map[string]bool{},
		failSkills:  map[int32]bool{},
	}
}

func (f *fakeAPI) AuthorizeURL(state string) string {
	return "https://sso.example/authorize?state=" + state
}

func (f *fakeAPI) Exchange(_ context.Context, code string) (domain.TokenPair, error) {
	if code == "" {
		return domain.TokenPair{}, fmt.Errorf("%w: empty code", domain.ErrRemoteAPI)
	}
	rt := f.exchangeRT
	if rt == "" {
		rt = "refresh-for-" + code
	}
	return domain.TokenPair{AccessToken: "access-for-" + code, RefreshToken: rt}, nil
}

func (f *fakeAPI) Refresh(_ context.Context, refreshToken string) (domain.TokenPair, error) {
	f.mu.Lock()
	f.refreshCalls = append(f.refreshCalls, refreshToken)
	fail := f.failRefresh[refreshToken]
	f.mu.Unlock()
	if fail {
		return domain.TokenPair{}, fmt.Errorf("%w: invalid refresh token", domain.ErrRemoteAPI)
	}
	return domain.TokenPair{AccessToken: "access-" + refreshToken, RefreshToken: refreshToken}, nil
}

func (f *fakeAPI) Verify(_ context.Context, accessToken string) (*domain.VerifiedCharacter, error) {
	if f.verified == nil {
		return nil, errors.New("no verified character configured")
	}
	if accessToken == "" {
		return nil, fmt.Errorf("%w: missing token", domain.ErrRemoteAPI)
	}
	return f.verified, nil
}

func (f *fakeAPI) Skills(_ context.Context, _ string, characterID int32) ([]domain.TrainedSkill, error) {
	if f.failSkills[characterID] {
		return nil, fmt.Errorf("%w: skills fetch failed", domain.ErrRemoteAPI)
	}
	return f.skills[characterID], nil
}

func (f *fakeAPI) SkillQueue(_ context.Context, _ string, characterID int32) ([]domain.QueuedSkill, error) {
	return f.queues[characterID], nil
}

// fakeListener returns a canned callback result.
type fakeListener struct {
	result *domain.CallbackResult
	err    error
	addr   string
}

func (f *fakeListener) Await(addr string) (*domain.CallbackResult, error) {
	f.addr = addr
	return f.result, f.err
}
