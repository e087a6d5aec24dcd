// Package cli wires the cobra command surface to the core services.
// Services are package-level so tests can swap in mocks, matching the
// adapter wiring done once from main.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/nullsec-labs/evecrop/internal/core/services"
	"github.com/nullsec-labs/evecrop/internal/logger"
)

var version = "dev"

var verbose bool

// Services wired by Configure before Execute runs.
var (
	rosterService *services.RosterService
	statsService  *services.StatsService
	authFlow      *services.AuthFlow
)

var rootCmd = &cobra.Command{
	Use:   "evecrop",
	Short: "Manage skill-farm characters and extraction stats",
	Long: `evecrop tracks a stable of skill-farm characters.

It authenticates characters against the EVE SSO, stores their refresh
tokens in a local roster file, and reports how many skill extractions
each character has banked in its farm skills.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose logging to stderr")
}

// Deps carries the services the commands depend on.
type Deps struct {
	Roster *services.RosterService
	Stats  *services.StatsService
	Auth   *services.AuthFlow
}

// Configure installs the wired services. Called once from main.
func Configure(deps Deps) {
	rosterService = deps.Roster
	statsService = deps.Stats
	authFlow = deps.Auth
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
