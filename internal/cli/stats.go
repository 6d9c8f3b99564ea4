package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/search"
	"github.com/seamusw/scramblesearch/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cataloged runs and solution counts",
	Long:  `Display recorded search runs and per-classification solution totals from the SQLite catalog.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer db.Close()

	runRepo := storage.NewRunRepository(db)
	runs, err := runRepo.List(20)
	if err != nil {
		return err
	}

	fmt.Println("Scramble Search Catalog")
	fmt.Println("=======================")
	fmt.Println()
	fmt.Printf("Database: %s\n", db.Path())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	fmt.Printf("Recent runs (%d):\n", len(runs))
	for _, r := range runs {
		status := "running"
		if r.FinishedAt != nil {
			status = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		fmt.Printf("  %s  started %s  workers %d  solutions %d  (%s)\n",
			r.RunID, r.StartedAt.Format(time.RFC3339), r.Workers, r.TotalSolutions, status)
	}
	fmt.Println()

	solRepo := storage.NewSolutionRepository(db, "")
	buckets, err := solRepo.CountsByBucket("")
	if err != nil {
		return err
	}
	if len(buckets) == 0 {
		fmt.Println("No cataloged solutions.")
		return nil
	}

	var counts [search.Buckets]int64
	for _, bc := range buckets {
		counts[search.BucketIndex(bc.UniquePatterns, bc.Perfect)] = bc.Count
	}
	fmt.Println(renderSummary(counts))
	return nil
}
