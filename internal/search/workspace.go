// Package search assembles the read-only workspace (face pattern table and
// corner arrangement arrays) that the edge search reads, and classifies
// each solution into its output bucket.
package search

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/seamusw/scramblesearch/internal/cache"
	"github.com/seamusw/scramblesearch/internal/corners"
	"github.com/seamusw/scramblesearch/internal/face"
)

// Workspace holds the precomputed tables the enumeration reads. It is built
// (or restored from cache) once and never mutated afterwards.
type Workspace struct {
	Table *face.Table
	Even  []corners.Arrangement
	Odd   []corners.Arrangement
}

// Open restores the workspace from the caches in dir, rebuilding any part
// whose cache is missing or unreadable. Rebuilt parts are written back;
// write failures are reported on stderr and do not fail the open, since the
// data stays resident for the run.
func Open(dir string, log io.Writer) (*Workspace, error) {
	return open(dir, log, false)
}

// Rebuild recomputes both caches in dir unconditionally.
func Rebuild(dir string, log io.Writer) (*Workspace, error) {
	return open(dir, log, true)
}

func open(dir string, log io.Writer, force bool) (*Workspace, error) {
	ws := &Workspace{}

	tablePath := cache.FaceTablePath(dir)
	if !force {
		if t, err := cache.ReadFaceTable(tablePath); err == nil {
			fmt.Fprintln(log, "Read the face table.")
			ws.Table = t
		} else if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "face table cache unusable, rebuilding: %v\n", err)
		}
	}
	if ws.Table == nil {
		fmt.Fprintln(log, "Building the face table.")
		t, err := face.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build face table: %w", err)
		}
		ws.Table = t
		if err := cache.WriteFaceTable(tablePath, t); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}

	cornersPath := cache.CornersPath(dir)
	if !force {
		if even, odd, err := cache.ReadArrangements(cornersPath); err == nil {
			fmt.Fprintln(log, "Read the corner arrangements.")
			ws.Even, ws.Odd = even, odd
		} else if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "corner arrangement cache unusable, rebuilding: %v\n", err)
		}
	}
	if ws.Even == nil {
		fmt.Fprintln(log, "Creating corner arrangements.")
		even, odd, err := corners.Enumerate()
		if err != nil {
			return nil, fmt.Errorf("failed to enumerate corner arrangements: %w", err)
		}
		ws.Even, ws.Odd = even, odd
		fmt.Fprintf(log, "Created %d even-parity corner arrangements.\n", len(even))
		fmt.Fprintf(log, "Created %d  odd-parity corner arrangements.\n", len(odd))
		if err := cache.WriteArrangements(cornersPath, even, odd); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}

	return ws, nil
}
