package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tvjuke-cli/tvjuke/color"
	"github.com/tvjuke-cli/tvjuke/library"
	"github.com/tvjuke-cli/tvjuke/style"
	"github.com/tvjuke-cli/tvjuke/util"
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	scanCmd.SetOut(os.Stdout)
}

// scanCmd reports the episode inventory of the media library.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the media library and report episode counts per show",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("json")) {
			printSummaryJson(cmd)
			return
		}
		printSummary(cmd)
	},
}

// printSummary renders the per-show episode tally. The root command prints
// the same report on startup.
func printSummary(cmd *cobra.Command) {
	lib := library.Open()
	counts, total, err := lib.Summary()
	handleErr(err)

	cmd.Printf("%s %s\n\n",
		style.Fg(color.Purple)("▇▇▇"),
		style.Bold(lib.Root()),
	)

	if total == 0 {
		cmd.Println(style.Faint("  no playable episodes found"))
		return
	}

	width := 0
	for _, c := range counts {
		width = util.Max(width, len(c.Name))
	}

	for _, c := range counts {
		share := float64(c.Episodes) / float64(total) * 100
		cmd.Printf("  %-*s  %4d  %s\n",
			width,
			c.Name,
			c.Episodes,
			style.Faint(fmt.Sprintf("%5.1f%%", share)),
		)
	}

	welcome, _ := lib.IdlePool()
	errClips, _ := lib.ErrorPool()

	cmd.Printf("\n  %s, %s\n",
		style.Bold(util.Quantify(len(counts), "show", "shows")),
		style.Bold(util.Quantify(total, "episode", "episodes")),
	)
	cmd.Printf("  %s\n", style.Faint(fmt.Sprintf(
		"welcome clips: %d, error clips: %d",
		len(welcome),
		len(errClips),
	)))
}

func printSummaryJson(cmd *cobra.Command) {
	lib := library.Open()
	counts, total, err := lib.Summary()
	handleErr(err)

	welcome, _ := lib.IdlePool()
	errClips, _ := lib.ErrorPool()

	report := struct {
		Root         string              `json:"root"`
		Shows        []library.ShowCount `json:"shows"`
		Total        int                 `json:"total"`
		WelcomeClips int                 `json:"welcome_clips"`
		ErrorClips   int                 `json:"error_clips"`
	}{
		Root:         lib.Root(),
		Shows:        counts,
		Total:        total,
		WelcomeClips: len(welcome),
		ErrorClips:   len(errClips),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	lo.Must0(encoder.Encode(report))
}
