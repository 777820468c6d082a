package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordfall/internal/registry"
	"github.com/vovakirdan/wordfall/internal/storage"
)

var (
	flagClearScores bool
	flagAllPacks    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [pack]",
	Short: "Show high scores for a pack",
	Long: `Display the top 10 runs for a word pack. Without an argument the
--pack flag or the custom list ID is used.

Examples:
  wordfall scores ru
  wordfall scores en --clear
  wordfall scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all runs for the pack")
	scoresCmd.Flags().BoolVar(&flagAllPacks, "all", false, "Show a summary of every played pack")
}

func runScores(_ *cobra.Command, args []string) error {
	if flagAllPacks {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		return printAllStats(os.Stdout, store)
	}

	packID := flagPack
	if len(args) == 1 {
		packID = args[0]
	}
	if packID == "" {
		packID = "ru"
	}

	title := packID
	if pack, err := registry.Get(packID); err == nil {
		title = pack.Title
	} else if packID != customPackID {
		return fmt.Errorf("unknown pack %q, run 'wordfall packs' to see available packs", packID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(packID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return nil
	}

	runs, err := store.TopScores(packID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'wordfall play --pack %s' to set the first high score!\n", packID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "Rank", "Score", "Words", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %s\n", "----", "-----", "-----", "----", "----")
	for i, r := range runs {
		secs := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-8d  %-5d  %-6s  %s\n", i+1, r.Score, r.Words,
			fmt.Sprintf("%d:%02d", secs/60, secs%60), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.Stats(packID); err == nil {
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Words typed: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalWords)
	}
	return nil
}

// printAllStats writes one summary row per played pack, sorted by pack ID.
func printAllStats(w io.Writer, store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-10s  %-5s  %-8s  %-8s  %s\n", "Pack", "Runs", "Best", "Average", "Words")
	fmt.Fprintf(w, "  %-10s  %-5s  %-8s  %-8s  %s\n", "----", "----", "----", "-------", "-----")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(w, "  %-10s  %-5d  %-8d  %-8.0f  %d\n", id, st.Runs, st.HighScore, st.AvgScore, st.TotalWords)
	}
	return nil
}
