// Package corners enumerates every physically legal, color-acceptable
// placement of the eight corner cubies and indexes the results for
// prefix-bounded lookup during the edge search.
package corners

import (
	"github.com/seamusw/scramblesearch/internal/cube"
)

// Expected arrangement counts per corner-permutation parity, fixed by the
// parity and orientation laws together with the two corner color pruning
// rules.
const (
	EvenArrangements = 375336
	OddArrangements  = 375304
)

// Arrangement is one legal corner placement.
//
// Stickers holds the partial cube: corner slots filled with origin ids,
// edge slots zero, centers present. FaceIndex holds, per face, the corners'
// contribution to that face's index (corner cells and center; edge cells
// contribute zero). NextDistinct[k] is the index of the next arrangement in
// the same sorted array whose FaceIndex[0..k] prefix differs, or -1.
type Arrangement struct {
	Stickers     cube.Cube
	FaceIndex    [cube.Faces]uint32
	NextDistinct [cube.Faces]int32
}

// compareFaceIndex orders two face index vectors by their first n entries.
func compareFaceIndex(a, b *[cube.Faces]uint32, n int) int {
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// cornerFaceIndex computes the per-face corner contributions of a corner
// partial cube: for face f with cell colors c0..c8, the value
// ((((c0*36+c2)*36+c4)*36+c6)*36+c8. Edge cells are zero at this stage, so
// adding the edges' contribution later yields the full face index.
func cornerFaceIndex(c *cube.Cube) [cube.Faces]uint32 {
	const sq = cube.Colors * cube.Colors
	var ids [cube.Faces]uint32
	for f := 0; f < cube.Faces; f++ {
		start := 9 * f
		ids[f] = (((uint32(c[start]/9)*sq+uint32(c[start+2]/9))*sq+uint32(c[start+4]/9))*sq+
			uint32(c[start+6]/9))*sq + uint32(c[start+8]/9)
	}
	return ids
}
