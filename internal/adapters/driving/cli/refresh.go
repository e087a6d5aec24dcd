package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <name>",
	Short: "Force a token refresh and print diagnostic state",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	rec, pair, err := statsService.Refresh(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No character %q found\n", args[0])
			return nil
		}
		return err
	}

	printRecord(cmd, rec)
	cmd.Println()
	cmd.Printf("Access token:  %s\n", truncate(pair.AccessToken, 16))
	if pair.Expiry.IsZero() {
		cmd.Println("Expiry:        unknown")
	} else {
		cmd.Printf("Expiry:        %s\n", pair.Expiry.Format(time.RFC3339))
	}
	if pair.RefreshToken != rec.RefreshToken {
		cmd.Println("Refresh token: rotated by the provider (roster not updated)")
	}
	return nil
}
