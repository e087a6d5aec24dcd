package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/services"
)

// testStore is an in-memory RosterStore.
type testStore struct {
	roster domain.Roster
}

func (s *testStore) Load() (domain.Roster, error) {
	if s.roster == nil {
		return domain.Roster{}, nil
	}
	return s.roster, nil
}

func (s *testStore) Save(roster domain.Roster) error {
	s.roster = roster
	return nil
}

// testAPI is a canned SkillAPI for command tests.
type testAPI struct {
	skills map[int32][]domain.TrainedSkill
	queues map[int32][]domain.QueuedSkill
}

func (a *testAPI) AuthorizeURL(state string) string {
	return "https://sso.example/authorize?state=" + state
}

func (a *testAPI) Exchange(_ context.Context, code string) (domain.TokenPair, error) {
	return domain.TokenPair{AccessToken: "at-" + code, RefreshToken: "rt-" + code}, nil
}

func (a *testAPI) Refresh(_ context.Context, refreshToken string) (domain.TokenPair, error) {
	return domain.TokenPair{
		AccessToken:  "fresh-" + refreshToken,
		RefreshToken: refreshToken,
		Expiry:       time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
	}, nil
}

func (a *testAPI) Verify(_ context.Context, _ string) (*domain.VerifiedCharacter, error) {
	return nil, fmt.Errorf("%w: verify not configured", domain.ErrRemoteAPI)
}

func (a *testAPI) Skills(_ context.Context, _ string, id int32) ([]domain.TrainedSkill, error) {
	return a.skills[id], nil
}

func (a *testAPI) SkillQueue(_ context.Context, _ string, id int32) ([]domain.QueuedSkill, error) {
	return a.queues[id], nil
}

// setupCommands wires real services over in-memory fakes and returns a
// cleanup restoring the previous wiring.
func setupCommands(roster domain.Roster, api *testAPI) func() {
	oldRoster, oldStats, oldAuth := rosterService, statsService, authFlow
	if api == nil {
		api = &testAPI{}
	}
	if api.skills == nil {
		api.skills = map[int32][]domain.TrainedSkill{}
	}
	if api.queues == nil {
		api.queues = map[int32][]domain.QueuedSkill{}
	}
	rs := services.NewRosterService(&testStore{roster: roster})
	rosterService = rs
	statsService = services.NewStatsService(api, rs, domain.NewSkillSet(domain.DefaultFarmSkills))
	authFlow = nil
	return func() {
		rosterService, statsService, authFlow = oldRoster, oldStats, oldAuth
	}
}

// execute runs the root command with args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func testRoster() domain.Roster {
	return domain.Roster{
		"January Hakomairos": {
			Name:         "January Hakomairos",
			ID:           90001,
			RefreshToken: "rt-jan-very-long-token-value",
			Scopes:       "esi-skills.read_skills.v1",
		},
		"Borghild Alland": {
			Name:         "Borghild Alland",
			ID:           90002,
			RefreshToken: "rt-borg",
			Scopes:       "esi-skills.read_skills.v1",
		},
	}
}

func requireContainsAll(t *testing.T, s string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		require.Contains(t, s, sub)
	}
}
