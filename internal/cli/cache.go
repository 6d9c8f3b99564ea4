package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/scramblesearch/internal/cache"
	"github.com/seamusw/scramblesearch/internal/corners"
	"github.com/seamusw/scramblesearch/internal/search"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the precomputation caches",
	Long:  `Inspect or rebuild FaceTable.dat and Corners.dat in the working directory.`,
}

var cacheBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Rebuild both caches from scratch",
	RunE:  runCacheBuild,
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Report cache presence and validity",
	RunE:  runCacheInfo,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheBuildCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
}

func runCacheBuild(cmd *cobra.Command, args []string) error {
	_, err := search.Rebuild(workDir, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Println("Caches rebuilt.")
	return nil
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	reportCacheFile(cache.FaceTablePath(workDir), cache.FaceTableSize)
	reportCacheFile(cache.CornersPath(workDir), cache.CornersSize)
	fmt.Printf("Expected corner arrangements: %d even, %d odd.\n",
		corners.EvenArrangements, corners.OddArrangements)
	return nil
}

func reportCacheFile(path string, wantSize int) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("%s: missing (will be rebuilt on the next search)\n", path)
		return
	}
	if info.Size() != int64(wantSize) {
		fmt.Printf("%s: %d bytes, want %d - stale, will be rebuilt\n", path, info.Size(), wantSize)
		return
	}
	fmt.Printf("%s: %d bytes, ok\n", path, info.Size())
}
