package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/tvjuke-cli/tvjuke/color"
	"github.com/tvjuke-cli/tvjuke/key"
	"github.com/tvjuke-cli/tvjuke/style"
)

// CheckDependencies verifies that the configured playback engine is present
// in the system PATH.
func CheckDependencies() {
	bin := viper.GetString(key.PlayerCommand)
	if _, err := exec.LookPath(bin); err != nil {
		printMissingDependencyError(bin)
		os.Exit(1)
	}
}

func printMissingDependencyError(dep string) {
	var installCmd string
	switch runtime.GOOS {
	case "darwin":
		installCmd = "brew install vlc"
	case "linux":
		installCmd = "sudo apt install vlc"
	case "windows":
		installCmd = "scoop install vlc"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color.HiRed).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(color.HiRed).Render("✗ Error: Missing Dependency")
	body := style.New().Foreground(color.White).Render(fmt.Sprintf("The required playback engine '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(color.HiCyan).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
