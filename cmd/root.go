// Package cmd implements the command-line interface for tvjuke.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/color"
	"github.com/tvjuke-cli/tvjuke/constant"
	"github.com/tvjuke-cli/tvjuke/jukebox"
	"github.com/tvjuke-cli/tvjuke/key"
	"github.com/tvjuke-cli/tvjuke/log"
	"github.com/tvjuke-cli/tvjuke/style"
	"github.com/tvjuke-cli/tvjuke/version"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("device", "d", "", "Evdev device the button panel is wired to")
	lo.Must0(viper.BindPFlag(key.InputDevice, rootCmd.PersistentFlags().Lookup("device")))

	rootCmd.PersistentFlags().StringP("library", "L", "", "Media library root")
	lo.Must0(viper.BindPFlag(key.LibraryPath, rootCmd.PersistentFlags().Lookup("library")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd defines the entry point for the tvjuke application.
var rootCmd = &cobra.Command{
	Use:   constant.TVJuke,
	Short: "A button-panel video jukebox for living-room kiosks",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A button-panel video jukebox for living-room kiosks"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()
		printSummary(cmd)

		// Device failures are fatal; everything else restarts the
		// welcome loop with a fresh session.
		for {
			j, err := jukebox.New()
			handleErr(err)

			outcome, err := j.Run()
			if outcome == jukebox.OutcomeFatal {
				handleErr(err)
			}

			log.Info("session ended, restarting welcome loop")
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
