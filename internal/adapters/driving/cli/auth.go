package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate characters through the browser",
	Long: `Run the interactive authentication loop.

Each iteration prints an SSO consent URL, waits for the browser redirect
on the local callback port, and stores the character's refresh token in
the roster. The loop repeats so several characters can be authenticated
in one sitting; interrupt the process when done.`,
	RunE: runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, _ []string) error {
	if authFlow == nil {
		return errors.New("auth flow not configured")
	}
	return authFlow.Run(cmd.Context())
}
