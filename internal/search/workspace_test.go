package search

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/seamusw/scramblesearch/internal/cache"
	"github.com/seamusw/scramblesearch/internal/corners"
)

func TestOpenBuildsAndRestores(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping workspace build in short mode")
	}

	dir := t.TempDir()

	built, err := Open(dir, io.Discard)
	if err != nil {
		t.Fatalf("first Open failed: %v", err)
	}
	if len(built.Even) != corners.EvenArrangements || len(built.Odd) != corners.OddArrangements {
		t.Fatalf("built %d/%d arrangements, want %d/%d",
			len(built.Even), len(built.Odd), corners.EvenArrangements, corners.OddArrangements)
	}

	// Both caches must exist with their exact sizes.
	for _, f := range []struct {
		path string
		size int
	}{
		{cache.FaceTablePath(dir), cache.FaceTableSize},
		{cache.CornersPath(dir), cache.CornersSize},
	} {
		info, err := os.Stat(f.path)
		if err != nil {
			t.Fatalf("cache %s not written: %v", f.path, err)
		}
		if info.Size() != int64(f.size) {
			t.Errorf("cache %s is %d bytes, want %d", f.path, info.Size(), f.size)
		}
	}

	restored, err := Open(dir, io.Discard)
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}

	for _, idx := range []uint32{0, 1, 777777, 10077695} {
		if restored.Table.PatternID(idx) != built.Table.PatternID(idx) {
			t.Errorf("table entry %d does not survive the cache", idx)
		}
	}
	for i := 0; i < len(built.Even); i += 50000 {
		if restored.Even[i] != built.Even[i] {
			t.Errorf("even arrangement %d does not survive the cache", i)
		}
	}
	for i := 0; i < len(built.Odd); i += 50000 {
		if restored.Odd[i] != built.Odd[i] {
			t.Errorf("odd arrangement %d does not survive the cache", i)
		}
	}
}

func TestOpenSurvivesUnwritableCacheDir(t *testing.T) {
	// Writing caches into a nonexistent directory fails; Open must still
	// return a usable workspace. Kept out of short mode with the rest of
	// the expensive builds.
	if testing.Short() {
		t.Skip("skipping workspace build in short mode")
	}
	dir := filepath.Join(t.TempDir(), "missing", "nested")

	ws, err := Open(dir, io.Discard)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if ws.Table == nil || len(ws.Even) == 0 {
		t.Error("workspace incomplete despite recompute")
	}
}
