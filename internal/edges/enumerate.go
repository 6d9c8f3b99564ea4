// Package edges runs the outer search: depth-first placement of the twelve
// edge cubies over the precomputed corner arrangement arrays, pruning
// through the face pattern table as faces complete.
package edges

import (
	"sync"
	"sync/atomic"

	"github.com/seamusw/scramblesearch/internal/corners"
	"github.com/seamusw/scramblesearch/internal/cube"
	"github.com/seamusw/scramblesearch/internal/face"
)

// Sink receives each completed solution: the full 54-sticker cube and the
// six face pattern ids it realizes. Implementations must be safe for
// concurrent use when the search runs with more than one worker.
type Sink interface {
	Emit(solution *cube.Cube, patternIDs [cube.Faces]face.ID)
}

// Counters exposes live search totals. All fields are updated atomically.
type Counters struct {
	EdgeArrangements atomic.Int64 // complete 12-edge placements reaching the leaf
	EvenParity       atomic.Int64
	OddParity        atomic.Int64
}

// Searcher holds the read-only workspace the edge search borrows. Table,
// Even and Odd must not be mutated while a search runs.
type Searcher struct {
	Table    *face.Table
	Even     []corners.Arrangement
	Odd      []corners.Arrangement
	Sink     Sink
	Counters Counters
}

// Run enumerates every legal edge placement, invoking the sink for each
// (edges, corner arrangement) pair whose six combined faces are all perfect
// patterns. The 24 depth-0 (piece, flip) branches are distributed across the
// given number of workers; the workspace is shared read-only.
func Run(s *Searcher, workers int) {
	if workers < 1 {
		workers = 1
	}

	type branch struct {
		pos  int
		flip int
	}
	tasks := make(chan branch, 2*cube.Edges)
	for pos := 0; pos < cube.Edges; pos++ {
		for flip := 0; flip < 2; flip++ {
			tasks <- branch{pos: pos, flip: flip}
		}
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := newWorker(s)
			for b := range tasks {
				w.runBranch(b.pos, b.flip)
			}
		}()
	}
	wg.Wait()
}

// worker is the per-goroutine mutable state: the working cube, the pieces
// permutation and the per-face edge contributions.
type worker struct {
	s       *Searcher
	pieces  [cube.Edges]uint8
	cube    cube.Cube
	faceIDs [cube.Faces]uint32
}

func newWorker(s *Searcher) *worker {
	return &worker{s: s}
}

// runBranch replays one depth-0 placement and searches its subtree.
func (w *worker) runBranch(pos, flip int) {
	for i := range w.pieces {
		w.pieces[i] = uint8(i)
	}
	w.cube = cube.EdgeTemplate()
	w.faceIDs = [cube.Faces]uint32{}

	swapParity := 0
	if pos != 0 {
		w.pieces[0], w.pieces[pos] = w.pieces[pos], w.pieces[0]
		swapParity = 1
	}

	w.setEdge(0, w.pieces[0], flip)
	if !w.edgeAcceptable(0) {
		return
	}
	// No face completes at depth 0, so the corner cursors stay at the start
	// of their arrays.
	w.place(1, swapParity, flip, 0, 0)
}

// setEdge writes piece pc into edge position k with the given flip.
func (w *worker) setEdge(k int, pc uint8, flip int) {
	w.cube[cube.EdgeSlots[k][0]] = cube.EdgeSlots[pc][flip]
	w.cube[cube.EdgeSlots[k][1]] = cube.EdgeSlots[pc][1^flip]
}

// edgeAcceptable applies the local pruning rules for a freshly placed edge
// k: neither sticker may match its face's center color, and no diagonal
// check pair activated by k may hold two same-colored stickers.
func (w *worker) edgeAcceptable(k int) bool {
	for j := 0; j < 2; j++ {
		slot := cube.EdgeSlots[k][j]
		if cube.ColorOf(w.cube[slot]) == cube.ColorOf(slot) {
			return false
		}
	}
	for i := cube.EdgeDiagStart[k]; i <= cube.EdgeDiagEnd[k]; i++ {
		chk := &cube.EdgeDiagChecks[i]
		if cube.ColorOf(w.cube[chk[0]]) == cube.ColorOf(w.cube[chk[1]]) {
			return false
		}
	}
	return true
}

// updateFaceIDs recomputes the edges' contribution for each face completed
// at depth k: for face f with cell colors c0..c8, the contribution is
// (((c1*36+c3)*36+c5)*36+c7)*6. Corner cells and the center are zero here;
// the digit positions are disjoint from the corner contribution, so the two
// add to the full face index.
func (w *worker) updateFaceIDs(k int) {
	const sq = cube.Colors * cube.Colors
	for f := cube.EdgeFaceStart[k]; f <= cube.EdgeFaceEnd[k]; f++ {
		start := 9 * f
		w.faceIDs[f] = (((uint32(w.cube[start+1]/9)*sq+uint32(w.cube[start+3]/9))*sq+
			uint32(w.cube[start+5]/9))*sq + uint32(w.cube[start+7]/9)) * cube.Colors
	}
}

func (w *worker) place(k int, swapParity, flipParity int, evenIdx, oddIdx int32) {
	if k == cube.Edges-1 {
		w.placeLast(swapParity, flipParity, evenIdx, oddIdx)
		return
	}

	for pos := k; pos < cube.Edges; pos++ {
		if pos != k {
			w.pieces[k], w.pieces[pos] = w.pieces[pos], w.pieces[k]
		}
		parity := swapParity
		if pos != k {
			parity ^= 1
		}

		for flip := 0; flip < 2; flip++ {
			w.setEdge(k, w.pieces[k], flip)
			if !w.edgeAcceptable(k) {
				continue
			}

			nextEven, nextOdd := evenIdx, oddIdx
			if cube.EdgeFaceStart[k] >= 0 {
				w.updateFaceIDs(k)
				count := cube.EdgeFaceEnd[k] + 1
				nextEven = corners.Advance(w.s.Even, evenIdx, &w.faceIDs, count, w.s.Table)
				nextOdd = corners.Advance(w.s.Odd, oddIdx, &w.faceIDs, count, w.s.Table)
				if nextEven == -1 && nextOdd == -1 {
					continue
				}
			}

			w.place(k+1, parity, flipParity^flip, nextEven, nextOdd)
		}

		if pos != k {
			w.pieces[k], w.pieces[pos] = w.pieces[pos], w.pieces[k]
		}
	}
}

// placeLast handles the forced twelfth edge: its flip must bring the total
// flip parity to 0, and the permutation sign selects which corner array can
// legally combine with this edge placement.
func (w *worker) placeLast(swapParity, flipParity int, evenIdx, oddIdx int32) {
	const k = cube.Edges - 1
	w.setEdge(k, w.pieces[k], flipParity)
	if !w.edgeAcceptable(k) {
		return
	}
	w.updateFaceIDs(k)

	w.s.Counters.EdgeArrangements.Add(1)

	arrs := w.s.Even
	index := evenIdx
	if swapParity == 0 {
		w.s.Counters.EvenParity.Add(1)
	} else {
		w.s.Counters.OddParity.Add(1)
		arrs = w.s.Odd
		index = oddIdx
	}

	index = corners.Advance(arrs, index, &w.faceIDs, cube.Faces, w.s.Table)
	for index != -1 {
		w.emit(arrs, index)
		if int(index) >= len(arrs)-1 {
			break
		}
		index = corners.Advance(arrs, index+1, &w.faceIDs, cube.Faces, w.s.Table)
	}
}

func (w *worker) emit(arrs []corners.Arrangement, index int32) {
	arr := &arrs[index]
	var ids [cube.Faces]face.ID
	for f := 0; f < cube.Faces; f++ {
		ids[f] = w.s.Table.PatternID(w.faceIDs[f] + arr.FaceIndex[f])
	}
	solution := w.cube.Or(&arr.Stickers)
	w.s.Sink.Emit(&solution, ids)
}
