// Package cli implements the command-line interface for scramblesearch.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	workDir string
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "scramblesearch",
	Short: "Perfect scramble searcher",
	Long: `scramblesearch enumerates "perfectly scrambled" colorings of a 3x3x3
Rubik's cube: reachable states where every face shows all six colors, no
color appears more than twice per face, and no two same-colored stickers
touch on a side or diagonal of any face.

Solutions are classified by how many of the six faces show distinct
patterns and by whether same-colored stickers also avoid touching across
face seams, and written to one output file per classification.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&workDir, "dir", ".", "Working directory for caches and solution files")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Catalog database path (default: <dir>/scramblesearch.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose flag (accepted; no command changes its output for it)")
}

// openDB opens the catalog database from the flag or default path and
// applies migrations.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = storage.DefaultPath(workDir)
	}
	db, err := storage.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
