package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a stored character record",
	Long: `Show the stored record for one character.

The name is matched exactly first; if no record has that exact name, the
first character whose name starts with the given prefix is shown.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if rosterService == nil {
		return errors.New("roster service not configured")
	}

	rec, err := rosterService.Find(args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No character %q found\n", args[0])
			return nil
		}
		return err
	}

	printRecord(cmd, rec)
	return nil
}

func printRecord(cmd *cobra.Command, rec *domain.CharacterRecord) {
	cmd.Printf("Name:          %s\n", rec.Name)
	cmd.Printf("ID:            %d\n", rec.ID)
	cmd.Printf("Refresh token: %s\n", truncate(rec.RefreshToken, 16))
	cmd.Printf("Scopes:        %s\n", rec.Scopes)
}

// truncate shortens a string for display, marking elision.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
