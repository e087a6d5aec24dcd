package main

import (
	"fmt"
	"os"

	"github.com/nullsec-labs/evecrop/internal/adapters/driven/esi"
	"github.com/nullsec-labs/evecrop/internal/adapters/driven/storage/file"
	"github.com/nullsec-labs/evecrop/internal/adapters/driving/callback"
	"github.com/nullsec-labs/evecrop/internal/adapters/driving/cli"
	"github.com/nullsec-labs/evecrop/internal/config"
	"github.com/nullsec-labs/evecrop/internal/core/domain"
	"github.com/nullsec-labs/evecrop/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("EVECROP_CONFIG"))
	if err != nil {
		return err
	}

	store := file.NewRosterStore(cfg.RosterPath)
	client := esi.NewClient(esi.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		CallbackURL:  cfg.CallbackURL,
		Scopes:       cfg.ScopeList(),
	})

	roster := services.NewRosterService(store)
	stats := services.NewStatsService(client, roster, domain.NewSkillSet(cfg.FarmSkills))
	auth := services.NewAuthFlow(client, roster, callback.Listener{},
		cfg.CallbackAddr, os.Stdout, cli.OpenBrowser)

	cli.SetVersion(version)
	cli.Configure(cli.Deps{Roster: roster, Stats: stats, Auth: auth})
	return cli.Execute()
}
