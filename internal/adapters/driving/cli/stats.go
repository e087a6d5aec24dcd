package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/nullsec-labs/evecrop/internal/core/domain"
)

var statsCmd = &cobra.Command{
	Use:   "stats [name]",
	Short: "Report extraction stats for one or all characters",
	Long: `Compute farm statistics across the roster.

For every stored character (or just the named one), the stored refresh
token is exchanged for an access token, trained skills and the training
queue are fetched, and the extractable skill points are totalled. The
report is ranked by points; a character whose fetch fails is skipped
with a warning rather than aborting the rest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	filter := ""
	if len(args) == 1 {
		filter = args[0]
	}

	stats, err := statsService.ComputeAll(cmd.Context(), filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No character %q found\n", filter)
			return nil
		}
		return err
	}

	renderStats(cmd, stats)
	return nil
}

func renderStats(cmd *cobra.Command, stats []domain.FarmStat) {
	if len(stats) == 0 {
		cmd.Println("No stats to report.")
		return
	}

	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.AppendHeader(table.Row{"Character", "Points", "Extractions", "Training", "Queued"})
	for _, stat := range stats {
		training := "-"
		if stat.Training {
			training = color.GreenString("yes")
		}
		w.AppendRow(table.Row{
			stat.Name,
			humanize.Comma(stat.Points),
			fmt.Sprintf("%.2f", float64(stat.Points)/float64(domain.ExtractionThreshold)),
			training,
			stat.Queued,
		})
	}
	w.AppendFooter(table.Row{"Total available extractions", "", domain.TotalExtractions(stats), "", ""})
	w.SetStyle(table.StyleLight)
	w.Render()
}
