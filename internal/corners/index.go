package corners

import (
	"github.com/seamusw/scramblesearch/internal/cube"
	"github.com/seamusw/scramblesearch/internal/face"
)

// buildIndex fills NextDistinct on a sorted arrangement array. Because the
// array is sorted lexicographically, the next-distinct index for a fixed
// prefix length is monotone, so one reverse sweep per prefix suffices.
func buildIndex(arrs []Arrangement) {
	n := len(arrs)
	if n == 0 {
		return
	}
	for k := 0; k < cube.Faces; k++ {
		arrs[n-1].NextDistinct[k] = -1
		for i := n - 2; i >= 0; i-- {
			if compareFaceIndex(&arrs[i].FaceIndex, &arrs[i+1].FaceIndex, k+1) == 0 {
				arrs[i].NextDistinct[k] = arrs[i+1].NextDistinct[k]
			} else {
				arrs[i].NextDistinct[k] = int32(i + 1)
			}
		}
	}
}

// Advance returns the first index >= start whose combined face patterns are
// all perfect for the first count faces, where the combined face index of
// face f is the arrangement's corner contribution plus faceIDs[f] (the
// edges' contribution). Returns -1 when no arrangement qualifies.
//
// Whenever face f fails, every arrangement sharing the FaceIndex[0..f]
// prefix fails identically, so the cursor jumps through NextDistinct[f] and
// the scan restarts at face 0.
func Advance(arrs []Arrangement, start int32, faceIDs *[cube.Faces]uint32, count int, table *face.Table) int32 {
	index := start
	if index < 0 || int(index) >= len(arrs) {
		return -1
	}

	for f := 0; f < count; {
		combined := arrs[index].FaceIndex[f] + faceIDs[f]
		if face.IsPerfect(table.PatternID(combined)) {
			f++
			continue
		}
		index = arrs[index].NextDistinct[f]
		if index == -1 {
			return -1
		}
		f = 0
	}
	return index
}
