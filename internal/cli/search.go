package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/edges"
	"github.com/seamusw/scramblesearch/internal/search"
	"github.com/seamusw/scramblesearch/internal/storage"
)

var (
	searchWorkers int
	searchTUI     bool
	searchNoDB    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the full enumeration",
	Long: `Run the full enumeration of perfectly scrambled cubes.

The face pattern table and the corner arrangement arrays are restored from
FaceTable.dat and Corners.dat in the working directory, or rebuilt and
cached when missing. Solutions are appended to Solutions_{k}_patterns.txt
and Solutions_{k}_patterns_Perfect.txt and, unless --no-db is given,
cataloged in the SQLite database for later stats and export.`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&searchWorkers, "workers", 1, "Worker goroutines for the edge search (1 reproduces the reference emission order)")
	searchCmd.Flags().BoolVar(&searchTUI, "tui", false, "Show live progress in a TUI")
	searchCmd.Flags().BoolVar(&searchNoDB, "no-db", false, "Skip the SQLite solution catalog")
}

func runSearch(cmd *cobra.Command, args []string) error {
	started := time.Now()

	ws, err := search.Open(workDir, os.Stdout)
	if err != nil {
		return err
	}

	// Catalog setup. The catalog is advisory: if the database cannot be
	// opened the search still runs, with a warning.
	var (
		db      *storage.DB
		runRepo *storage.RunRepository
		solRepo *storage.SolutionRepository
		runID   string
	)
	if !searchNoDB {
		db, err = openDB()
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog unavailable, continuing without it: %v\n", err)
		} else {
			defer db.Close()
			runRepo = storage.NewRunRepository(db)
			runID, err = runRepo.Create(searchWorkers)
			if err != nil {
				fmt.Fprintf(os.Stderr, "catalog unavailable, continuing without it: %v\n", err)
				runRepo = nil
			} else {
				solRepo = storage.NewSolutionRepository(db, runID)
			}
		}
	}

	var recorder search.Recorder
	if solRepo != nil {
		recorder = solRepo
	}
	sink := search.NewSink(workDir, recorder)

	searcher := &edges.Searcher{
		Table: ws.Table,
		Even:  ws.Even,
		Odd:   ws.Odd,
		Sink:  sink,
	}

	fmt.Println("Trying edge arrangements.")
	if searchTUI {
		err = runSearchTUI(searcher, sink, searchWorkers)
	} else {
		err = runSearchPlain(searcher, sink, searchWorkers)
	}
	if err != nil {
		return err
	}

	if solRepo != nil {
		if err := solRepo.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	if runRepo != nil {
		if err := runRepo.Finish(runID, sink.Total()); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}

	if err := sink.Close(); err != nil {
		return err
	}

	fmt.Printf("%d edge arrangements (%d even, %d odd) in %s.\n",
		searcher.Counters.EdgeArrangements.Load(),
		searcher.Counters.EvenParity.Load(),
		searcher.Counters.OddParity.Load(),
		time.Since(started).Round(time.Second))
	fmt.Println(renderSummary(sink.Counts()))
	if runID != "" {
		fmt.Printf("Cataloged as run %s\n", runID)
	}
	return nil
}

// runSearchPlain runs the search with periodic progress lines on stdout.
func runSearchPlain(searcher *edges.Searcher, sink *search.Sink, workers int) error {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("%d edge arrangements, %d solutions\n",
					searcher.Counters.EdgeArrangements.Load(), sink.Total())
			}
		}
	}()

	edges.Run(searcher, workers)
	close(done)
	return nil
}

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	summaryLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	summaryCountStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))
)

// renderSummary formats the per-bucket solution totals.
func renderSummary(counts [search.Buckets]int64) string {
	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Solutions by classification"))
	b.WriteByte('\n')
	for _, perfect := range []bool{false, true} {
		for k := 1; k <= 6; k++ {
			count := counts[search.BucketIndex(k, perfect)]
			if count == 0 {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s\n",
				summaryLabelStyle.Render(fmt.Sprintf("%-32s", search.BucketName(k, perfect))),
				summaryCountStyle.Render(fmt.Sprintf("%d", count))))
		}
	}
	total := int64(0)
	for _, c := range counts {
		total += c
	}
	b.WriteString(fmt.Sprintf("  %s %s",
		summaryLabelStyle.Render(fmt.Sprintf("%-32s", "total")),
		summaryCountStyle.Render(fmt.Sprintf("%d", total))))
	return b.String()
}
