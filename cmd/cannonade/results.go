package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkurilin/cannonade/internal/levelgen"
	"github.com/vkurilin/cannonade/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [preset]",
	Short: "Show stored benchmark results",
	Long: `Display recent benchmark runs from the database, most recent first.
Without a preset argument, runs for all presets are shown.

Examples:
  cannonade results
  cannonade results stress --limit 20
  cannonade results stress --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of runs to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored runs for the given preset")
}

func runResults(cmd *cobra.Command, args []string) {
	preset := ""
	if len(args) > 0 {
		preset = args[0]
		if !levelgen.Exists(preset) {
			fmt.Fprintf(os.Stderr, "Error: unknown preset %q\n", preset)
			fmt.Fprintln(os.Stderr, "Run 'cannonade levels' to see available presets.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening benchmark database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if preset == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a preset argument")
			os.Exit(1)
		}
		if err := store.ClearRuns(preset); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared benchmark runs for %q.\n", preset)
		return
	}

	runs, err := store.RecentRuns(preset, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	title := "Benchmark results"
	if preset != "" {
		title += " - " + preset
	}
	fmt.Println(titleStyle.Render(title))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No benchmark runs recorded yet.")
		fmt.Println()
		fmt.Println(dimStyle.Render("Run 'cannonade bench' to record the first one."))
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-14s  %-8s  %-10s  %-10s  %-10s  %s",
		"Preset", "Workers", "Entities", "Contacts", "Duration", "Date")))

	for _, r := range runs {
		fmt.Printf("  %-14s  %-8d  %-10d  %-10d  %-10s  %s\n",
			r.Preset, r.Workers, r.Entities, r.Contacts,
			fmt.Sprintf("%dms", r.DurationMS),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if preset != "" {
		best, err := store.BestRun(preset)
		if err == nil && best != nil {
			fmt.Println()
			fmt.Printf("Best: %dms with %d workers\n", best.DurationMS, best.Workers)
		}
	}
}
