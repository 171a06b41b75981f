package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `  __                       _    _ _
 / _| ___  _ __ __ _  ___ | | _(_) |_
| |_ / _ \| '__/ _` + "`" + ` |/ _ \| |/ / | __|
|  _| (_) | | | (_| |  __/|   <| | |_
|_|  \___/|_|  \__, |\___||_|\_\_|\__|
               |___/`

// PrintBanner renders the startup banner with the current version.
func (t *Theme) PrintBanner(version string) {
	if t.NoColor {
		fmt.Println(bannerArt)
		fmt.Printf("forgekit %s\n\n", version)
		return
	}
	art := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Colors.Primary)).Render(bannerArt)
	tag := t.Muted.Render("forgekit " + version)
	fmt.Println(art)
	fmt.Println(tag)
	fmt.Println()
}

// PrintWelcome prints the short intro shown before the wizard starts.
func (t *Theme) PrintWelcome() {
	fmt.Println(t.Title.Render("Scaffold a new Express backend"))
	fmt.Println(t.Muted.Render("Answer four questions; forgekit writes the project and installs dependencies."))
	fmt.Println()
}
