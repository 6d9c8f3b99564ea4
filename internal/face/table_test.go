package face

import (
	"sync"
	"testing"

	"github.com/seamusw/scramblesearch/internal/cube"
)

var (
	tableOnce sync.Once
	table     *Table
	tableErr  error
)

// builtTable builds the real table once per test binary.
func builtTable(t *testing.T) *Table {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping full face table build in short mode")
	}
	tableOnce.Do(func() {
		table, tableErr = Build()
	})
	if tableErr != nil {
		t.Fatalf("Build failed: %v", tableErr)
	}
	return table
}

func TestIndexColorsRoundTrip(t *testing.T) {
	for _, index := range []uint32{0, 1, 5, 6, 42, 10077695, 3628800} {
		colors := IndexToColors(index)
		if got := ColorsToIndex(colors); got != index {
			t.Errorf("round trip of %d gave %d", index, got)
		}
	}
}

func TestColorPermCount(t *testing.T) {
	if len(colorPerms) != 720 {
		t.Errorf("have %d color permutations, want 720", len(colorPerms))
	}
	seen := map[[cube.Colors]cube.Color]bool{}
	for _, p := range colorPerms {
		if seen[p] {
			t.Errorf("duplicate permutation %v", p)
		}
		seen[p] = true
	}
}

func TestUniformFaceIsRegular(t *testing.T) {
	tbl := builtTable(t)
	// Face index 0 is all one color: distinctColors is 1, so it cannot be
	// a perfect pattern.
	if id := tbl.PatternID(0); IsPerfect(id) {
		t.Errorf("uniform face got perfect id %d", id)
	}
}

func TestEdgeAdjacentRepeatIsRegular(t *testing.T) {
	tbl := builtTable(t)
	// Cells 3 and 6 are edge-adjacent and share a color.
	index := ColorsToIndex([9]cube.Color{0, 1, 2, 3, 4, 5, 3, 1, 2})
	if id := tbl.PatternID(index); IsPerfect(id) {
		t.Errorf("side-touching face got perfect id %d", id)
	}
}

func TestShiftedRowsFaceIsPerfect(t *testing.T) {
	tbl := builtTable(t)
	// Six colors, none more than twice, no edge or diagonal contact.
	index := ColorsToIndex([9]cube.Color{0, 1, 2, 3, 4, 5, 0, 1, 2})
	if id := tbl.PatternID(index); !IsPerfect(id) {
		t.Errorf("perfect face got regular id %d", id)
	}
}

func TestPatternIDInvariantUnderSymmetryAndRelabeling(t *testing.T) {
	tbl := builtTable(t)

	samples := []uint32{0, 1, 7, 54321, 123456, 999999, 5038848, 10077695}
	for _, index := range samples {
		want := tbl.PatternID(index)
		colors := IndexToColors(index)
		for s := range symmetries {
			var transformed [9]cube.Color
			for cell := range transformed {
				transformed[cell] = colors[symmetries[s][cell]]
			}
			for p := 0; p < len(colorPerms); p += 31 {
				var relabeled [9]cube.Color
				for cell := range relabeled {
					relabeled[cell] = colorPerms[p][transformed[cell]]
				}
				got := tbl.PatternID(ColorsToIndex(relabeled))
				if got != want {
					t.Fatalf("index %d: symmetry %d, perm %d gave id %d, want %d", index, s, p, got, want)
				}
			}
		}
	}
}

func TestPerfectIDsMatchPredicates(t *testing.T) {
	tbl := builtTable(t)

	// Every index must be assigned, and an index is perfect exactly when it
	// shows six colors, none more than twice, with nothing touching.
	for index := uint32(0); index < cube.FaceArrangements; index++ {
		id := tbl.PatternID(index)
		if id == NotSet {
			t.Fatalf("index %d left unset", index)
		}
		colors := IndexToColors(index)
		distinct, maxCount := cube.FaceColorCounts(colors)
		wantPerfect := distinct == cube.Colors && maxCount == 2 &&
			cube.FaceConnectedness(colors) == cube.NothingTouching
		if IsPerfect(id) != wantPerfect {
			t.Fatalf("index %d: perfect = %v, predicates say %v", index, IsPerfect(id), wantPerfect)
		}
	}
}

func TestPerfectIDsAreDense(t *testing.T) {
	tbl := builtTable(t)

	var seen [PerfectPatterns]bool
	for index := uint32(0); index < cube.FaceArrangements; index++ {
		if id := tbl.PatternID(index); IsPerfect(id) {
			seen[id] = true
		}
	}
	for id, ok := range seen {
		if !ok {
			t.Errorf("perfect id %d never assigned", id)
		}
	}
}

func TestFromIDsValidatesLength(t *testing.T) {
	if _, err := FromIDs(make([]ID, 10)); err == nil {
		t.Error("FromIDs should reject a short table")
	}
}
