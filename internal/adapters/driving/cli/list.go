package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored characters",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if rosterService == nil {
		return errors.New("roster service not configured")
	}

	records, err := rosterService.List()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		cmd.Println("No stored characters. Run: evecrop auth")
		return nil
	}
	for _, rec := range records {
		cmd.Printf("%s :: %d\n", rec.Name, rec.ID)
	}
	return nil
}
