package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vkurilin/cannonade/internal/levelgen"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available level presets",
	Long:  `Shows every registered level preset and its generation parameters.`,
	Run:   runLevels,
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("240"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func runLevels(cmd *cobra.Command, args []string) {
	levels := levelgen.List()

	if len(levels) == 0 {
		fmt.Println("No level presets registered.")
		return
	}

	fmt.Println(titleStyle.Render("Level presets"))
	fmt.Println()

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, lv := range levels {
		if len(lv.Name) > maxNameLen {
			maxNameLen = len(lv.Name)
		}
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-*s  %-10s  %s", maxNameLen, "Name", "Base size", "Description")))

	for _, lv := range levels {
		size := "-"
		if !lv.Fixed {
			size = fmt.Sprintf("%.0f", lv.Params.BaseSize)
		}
		fmt.Printf("  %-*s  %-10s  %s\n", maxNameLen, lv.Name, size, lv.Description)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("Run 'cannonade run <name>' to simulate a preset."))
}
