package corners

import (
	"fmt"
	"sort"

	"github.com/seamusw/scramblesearch/internal/cube"
)

// Enumerate produces the two sorted corner arrangement arrays, partitioned
// by the sign of the corner permutation. Placement is depth first: at depth
// k each remaining piece is swapped into position k and tried in all three
// orientations, pruning any placement that puts a corner sticker on its own
// center's face or three same-colored corner stickers on one face. The
// eighth corner's piece and orientation are forced by the parity laws.
func Enumerate() (even, odd []Arrangement, err error) {
	e := &enumerator{
		pieces: [cube.Corners]uint8{0, 1, 2, 3, 4, 5, 6, 7},
		cube:   cube.CornerTemplate(),
	}
	e.place(0, 0, 0)

	sortArrangements(e.even)
	sortArrangements(e.odd)
	buildIndex(e.even)
	buildIndex(e.odd)

	if len(e.even) != EvenArrangements || len(e.odd) != OddArrangements {
		return nil, nil, fmt.Errorf("corner enumeration produced %d even / %d odd arrangements, want %d / %d",
			len(e.even), len(e.odd), EvenArrangements, OddArrangements)
	}
	return e.even, e.odd, nil
}

type enumerator struct {
	even, odd []Arrangement
	pieces    [cube.Corners]uint8
	cube      cube.Cube
}

// setCorner writes piece pc into corner position k with orientation ori.
func (e *enumerator) setCorner(k int, pc uint8, ori int) {
	for j := 0; j < 3; j++ {
		e.cube[cube.CornerSlots[k][j]] = cube.CornerSlots[pc][(j+ori)%3]
	}
}

// cornerAcceptable applies the two local pruning rules for a freshly placed
// corner k: no sticker may match its face's center color, and no check
// triple activated by k may hold three stickers of one color.
func (e *enumerator) cornerAcceptable(k int) bool {
	for j := 0; j < 3; j++ {
		slot := cube.CornerSlots[k][j]
		if cube.ColorOf(e.cube[slot]) == cube.ColorOf(slot) {
			return false
		}
	}
	for i := cube.CornerCheckStart[k]; i <= cube.CornerCheckEnd[k]; i++ {
		chk := &cube.CornerCountChecks[i]
		c0 := cube.ColorOf(e.cube[chk[0]])
		if c0 == cube.ColorOf(e.cube[chk[1]]) && c0 == cube.ColorOf(e.cube[chk[2]]) {
			return false
		}
	}
	return true
}

func (e *enumerator) place(k int, swapParity, rotParity int) {
	if k == cube.Corners-1 {
		e.placeLast(swapParity, rotParity)
		return
	}

	for pos := k; pos < cube.Corners; pos++ {
		if pos != k {
			e.pieces[k], e.pieces[pos] = e.pieces[pos], e.pieces[k]
		}
		parity := swapParity
		if pos != k {
			parity ^= 1
		}

		for ori := 0; ori < 3; ori++ {
			e.setCorner(k, e.pieces[k], ori)
			if e.cornerAcceptable(k) {
				e.place(k+1, parity, (rotParity+ori)%3)
			}
		}

		if pos != k {
			e.pieces[k], e.pieces[pos] = e.pieces[pos], e.pieces[k]
		}
	}
}

// placeLast handles the forced eighth corner: its orientation must bring the
// total twist to 0 mod 3, and the accumulated swap parity is the permutation
// sign that picks the output array.
func (e *enumerator) placeLast(swapParity, rotParity int) {
	const k = cube.Corners - 1
	ori := (3 - rotParity) % 3
	e.setCorner(k, e.pieces[k], ori)
	if !e.cornerAcceptable(k) {
		return
	}

	arr := Arrangement{
		Stickers:  e.cube,
		FaceIndex: cornerFaceIndex(&e.cube),
	}
	if swapParity == 0 {
		e.even = append(e.even, arr)
	} else {
		e.odd = append(e.odd, arr)
	}
}

func sortArrangements(arrs []Arrangement) {
	sort.Slice(arrs, func(i, j int) bool {
		return compareFaceIndex(&arrs[i].FaceIndex, &arrs[j].FaceIndex, cube.Faces) < 0
	})
}
