package corners

import (
	"sync"
	"testing"

	"github.com/seamusw/scramblesearch/internal/cube"
	"github.com/seamusw/scramblesearch/internal/face"
)

var (
	enumOnce sync.Once
	evenArrs []Arrangement
	oddArrs  []Arrangement
	enumErr  error
)

func enumerated(t *testing.T) ([]Arrangement, []Arrangement) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping full corner enumeration in short mode")
	}
	enumOnce.Do(func() {
		evenArrs, oddArrs, enumErr = Enumerate()
	})
	if enumErr != nil {
		t.Fatalf("Enumerate failed: %v", enumErr)
	}
	return evenArrs, oddArrs
}

func TestEnumerateCounts(t *testing.T) {
	even, odd := enumerated(t)
	if len(even) != EvenArrangements {
		t.Errorf("have %d even arrangements, want %d", len(even), EvenArrangements)
	}
	if len(odd) != OddArrangements {
		t.Errorf("have %d odd arrangements, want %d", len(odd), OddArrangements)
	}
}

func TestArrangementsSorted(t *testing.T) {
	even, odd := enumerated(t)
	for _, arrs := range [][]Arrangement{even, odd} {
		for i := 1; i < len(arrs); i++ {
			if compareFaceIndex(&arrs[i-1].FaceIndex, &arrs[i].FaceIndex, cube.Faces) > 0 {
				t.Fatalf("arrangements out of order at %d", i)
			}
		}
	}
}

func TestNextDistinctPointers(t *testing.T) {
	even, _ := enumerated(t)
	// Sampled check of invariant: NextDistinct[k] is the first later entry
	// whose prefix differs, and everything between shares the prefix.
	for i := 0; i < len(even); i += 5000 {
		for k := 0; k < cube.Faces; k++ {
			next := even[i].NextDistinct[k]
			if next == -1 {
				for j := i + 1; j < len(even); j += 7919 {
					if compareFaceIndex(&even[i].FaceIndex, &even[j].FaceIndex, k+1) != 0 {
						t.Fatalf("entry %d prefix %d: NextDistinct -1 but entry %d differs", i, k, j)
					}
				}
				continue
			}
			if next <= int32(i) || int(next) > len(even) {
				t.Fatalf("entry %d prefix %d: NextDistinct %d out of range", i, k, next)
			}
			if compareFaceIndex(&even[i].FaceIndex, &even[next].FaceIndex, k+1) == 0 {
				t.Fatalf("entry %d prefix %d: NextDistinct %d has equal prefix", i, k, next)
			}
			if compareFaceIndex(&even[i].FaceIndex, &even[next-1].FaceIndex, k+1) != 0 {
				t.Fatalf("entry %d prefix %d: entry %d before NextDistinct already differs", i, k, next-1)
			}
		}
	}
}

func TestNoCornerMatchesCenterColor(t *testing.T) {
	even, odd := enumerated(t)
	for _, arrs := range [][]Arrangement{even, odd} {
		for i := 0; i < len(arrs); i += 997 {
			for _, triple := range cube.CornerSlots {
				for _, s := range triple {
					if cube.ColorOf(arrs[i].Stickers[s]) == cube.ColorOf(s) {
						t.Fatalf("arrangement %d: corner sticker at slot %d matches its center color", i, s)
					}
				}
			}
		}
	}
}

// decodeCorner identifies which piece sits at corner position k of an
// arrangement and with which twist.
func decodeCorner(a *Arrangement, k int) (piece, ori int) {
	first := a.Stickers[cube.CornerSlots[k][0]]
	for pc := 0; pc < cube.Corners; pc++ {
		for o := 0; o < 3; o++ {
			if cube.CornerSlots[pc][o%3] == first {
				match := true
				for j := 0; j < 3; j++ {
					if a.Stickers[cube.CornerSlots[k][j]] != cube.CornerSlots[pc][(j+o)%3] {
						match = false
						break
					}
				}
				if match {
					return pc, o
				}
			}
		}
	}
	return -1, -1
}

func permutationSign(perm [cube.Corners]int) int {
	sign := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				sign ^= 1
			}
		}
	}
	return sign
}

func TestParityLaws(t *testing.T) {
	even, odd := enumerated(t)
	for parity, arrs := range [][]Arrangement{even, odd} {
		for i := 0; i < len(arrs); i += 1231 {
			var perm [cube.Corners]int
			oriSum := 0
			for k := 0; k < cube.Corners; k++ {
				pc, ori := decodeCorner(&arrs[i], k)
				if pc == -1 {
					t.Fatalf("arrangement %d: corner %d holds no recognizable piece", i, k)
				}
				perm[k] = pc
				oriSum += ori
			}
			if oriSum%3 != 0 {
				t.Errorf("arrangement %d: orientation sum %d not divisible by 3", i, oriSum)
			}
			if got := permutationSign(perm); got != parity {
				t.Errorf("arrangement %d: permutation sign %d in parity-%d array", i, got, parity)
			}
		}
	}
}

func TestFaceIndexMatchesStickers(t *testing.T) {
	even, _ := enumerated(t)
	for i := 0; i < len(even); i += 4099 {
		want := cornerFaceIndex(&even[i].Stickers)
		if even[i].FaceIndex != want {
			t.Fatalf("arrangement %d: stored face indexes %v, recomputed %v", i, even[i].FaceIndex, want)
		}
	}
}

// syntheticTable builds a table where only the listed face indexes are
// perfect patterns.
func syntheticTable(t *testing.T, perfect ...uint32) *face.Table {
	t.Helper()
	ids := make([]face.ID, cube.FaceArrangements)
	for i := range ids {
		ids[i] = face.PerfectPatterns
	}
	for n, idx := range perfect {
		ids[idx] = face.ID(n % face.PerfectPatterns)
	}
	tbl, err := face.FromIDs(ids)
	if err != nil {
		t.Fatalf("FromIDs failed: %v", err)
	}
	return tbl
}

func syntheticArrangements() []Arrangement {
	arrs := []Arrangement{
		{FaceIndex: [cube.Faces]uint32{10, 0, 0, 0, 0, 0}},
		{FaceIndex: [cube.Faces]uint32{10, 5, 0, 0, 0, 0}},
		{FaceIndex: [cube.Faces]uint32{20, 0, 0, 0, 0, 0}},
	}
	buildIndex(arrs)
	return arrs
}

func TestBuildIndexSynthetic(t *testing.T) {
	arrs := syntheticArrangements()
	want := [][cube.Faces]int32{
		{2, 1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2, 2},
		{-1, -1, -1, -1, -1, -1},
	}
	for i := range arrs {
		if arrs[i].NextDistinct != want[i] {
			t.Errorf("entry %d NextDistinct = %v, want %v", i, arrs[i].NextDistinct, want[i])
		}
	}
}

func TestAdvanceSynthetic(t *testing.T) {
	arrs := syntheticArrangements()
	var faceIDs [cube.Faces]uint32

	// Only arrangement 1's combined faces (10 and 5) are perfect.
	tbl := syntheticTable(t, 10, 5)
	if got := Advance(arrs, 0, &faceIDs, 2, tbl); got != 1 {
		t.Errorf("Advance = %d, want 1", got)
	}
	// With face 5 regular too, nothing survives two faces.
	tbl = syntheticTable(t, 10)
	if got := Advance(arrs, 0, &faceIDs, 2, tbl); got != -1 {
		t.Errorf("Advance = %d, want -1", got)
	}
	// A single-face check accepts the first arrangement directly.
	if got := Advance(arrs, 0, &faceIDs, 1, tbl); got != 0 {
		t.Errorf("Advance = %d, want 0", got)
	}
	// The edges' contribution shifts the combined index.
	faceIDs[0] = 10
	tbl = syntheticTable(t, 30)
	if got := Advance(arrs, 0, &faceIDs, 1, tbl); got != 2 {
		t.Errorf("Advance = %d, want 2", got)
	}
}

func TestAdvanceBounds(t *testing.T) {
	arrs := syntheticArrangements()
	tbl := syntheticTable(t, 10)
	var faceIDs [cube.Faces]uint32

	if got := Advance(arrs, -1, &faceIDs, 1, tbl); got != -1 {
		t.Errorf("Advance from -1 = %d, want -1", got)
	}
	if got := Advance(arrs, int32(len(arrs)), &faceIDs, 1, tbl); got != -1 {
		t.Errorf("Advance past end = %d, want -1", got)
	}
	if got := Advance(arrs, 0, &faceIDs, 0, tbl); got != 0 {
		t.Errorf("Advance with no faces = %d, want 0", got)
	}
}
