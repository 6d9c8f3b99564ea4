package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/storage"
)

var (
	exportRunID    string
	exportLast     bool
	exportPatterns int
	exportPerfect  bool
	exportFormat   string
	exportOutput   string
	exportLimit    int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cataloged solutions",
	Long: `Export solutions from the SQLite catalog in text or JSON format.

Examples:
  scramblesearch export --last
  scramblesearch export --run <run_id> --patterns 6 --perfect --format json
  scramblesearch export --run <run_id> --format txt -o solutions.txt`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportRunID, "run", "", "Run ID to export")
	exportCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last run")
	exportCmd.Flags().IntVar(&exportPatterns, "patterns", 0, "Only solutions with this distinct-pattern count (1-6)")
	exportCmd.Flags().BoolVar(&exportPerfect, "perfect", false, "Only seam-perfect solutions")
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 1000000, "Maximum solutions to export")
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportRunID == "" && !exportLast {
		return fmt.Errorf("specify --run or --last")
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer db.Close()

	runID := exportRunID
	if exportLast {
		runRepo := storage.NewRunRepository(db)
		run, err := runRepo.GetLast()
		if err != nil {
			return fmt.Errorf("failed to get last run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("no runs found")
		}
		runID = run.RunID
	}

	var perfect *bool
	if cmd.Flags().Changed("perfect") {
		perfect = &exportPerfect
	}

	solRepo := storage.NewSolutionRepository(db, runID)
	solutions, err := solRepo.ListByRun(runID, exportPatterns, perfect, exportLimit)
	if err != nil {
		return err
	}
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions found for run %s", runID)
	}

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		var lines []string
		for _, s := range solutions {
			lines = append(lines, s.Stickers)
		}
		output = strings.Join(lines, "\n")

	case "json":
		type SolutionJSON struct {
			RunID          string `json:"run_id"`
			UniquePatterns int    `json:"unique_patterns"`
			Perfect        bool   `json:"perfect"`
			Stickers       string `json:"stickers"`
		}

		var solutionsJSON []SolutionJSON
		for _, s := range solutions {
			solutionsJSON = append(solutionsJSON, SolutionJSON{
				RunID:          s.RunID,
				UniquePatterns: s.UniquePatterns,
				Perfect:        s.Perfect,
				Stickers:       s.Stickers,
			})
		}

		data, err := json.MarshalIndent(solutionsJSON, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	if exportOutput == "" {
		fmt.Println(output)
	} else {
		dir := filepath.Dir(exportOutput)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}

		fmt.Printf("Exported %d solutions to %s\n", len(solutions), exportOutput)
	}

	return nil
}
