package cmd

import (
	"os"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvjuke-cli/tvjuke/color"
	"github.com/tvjuke-cli/tvjuke/history"
	"github.com/tvjuke-cli/tvjuke/style"
	"github.com/tvjuke-cli/tvjuke/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum number of entries to display")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists the most recently played episodes.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the most recently played episodes",
	Run: func(cmd *cobra.Command, args []string) {
		limit := lo.Must(cmd.Flags().GetInt("limit"))

		records, err := history.Get()
		handleErr(err)

		if len(records) == 0 {
			cmd.Println(style.Faint("no episodes played yet"))
			return
		}

		entries := lo.Values(records)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].LastPlayed.After(entries[j].LastPlayed)
		})

		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		for _, entry := range entries {
			cmd.Printf("%s  %s %s\n",
				style.Faint(entry.LastPlayed.Format("2006-01-02 15:04")),
				style.Fg(color.Purple)(entry.Show),
				entry.Title,
			)
			cmd.Printf("    %s\n", style.Faint(util.Quantify(entry.PlayCount, "play", "plays")))
		}
	},
}
