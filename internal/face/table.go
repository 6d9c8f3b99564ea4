// Package face builds and serves the face pattern table: a canonical id for
// every one of the 6^9 possible colorings of a single cube face, invariant
// under the face's eight dihedral symmetries and under any relabeling of the
// six colors.
package face

import (
	"fmt"

	"github.com/seamusw/scramblesearch/internal/cube"
)

// ID is a face pattern id. Ids below PerfectPatterns are perfect patterns:
// all six colors present, none more than twice, none touching on a side or
// diagonal of the face.
type ID = int16

const (
	// NotSet marks an unassigned table entry during construction.
	NotSet ID = 32767

	// PerfectPatterns is the number of perfect pattern orbits.
	PerfectPatterns = 16
)

// IsPerfect reports whether id names a perfect face pattern.
func IsPerfect(id ID) bool {
	return id < PerfectPatterns
}

// symmetries maps each dihedral transform of the 3x3 face to a cell
// permutation: transformed cell i reads from cell symmetries[s][i].
var symmetries = [8][9]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // rotated 90 counter-clockwise
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // rotated 180
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // rotated 90 clockwise
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // mirrored
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // mirrored, rotated 90 clockwise
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // mirrored, rotated 180
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // mirrored, rotated 90 counter-clockwise
}

// colorPerms holds all 720 permutations of the six colors.
var colorPerms = buildColorPerms()

func buildColorPerms() [][cube.Colors]cube.Color {
	perms := make([][cube.Colors]cube.Color, 0, 720)
	var current [cube.Colors]cube.Color
	var used [cube.Colors]bool
	var place func(pos int)
	place = func(pos int) {
		if pos == cube.Colors {
			perms = append(perms, current)
			return
		}
		for c := cube.Color(0); c < cube.Colors; c++ {
			if used[c] {
				continue
			}
			used[c] = true
			current[pos] = c
			place(pos + 1)
			used[c] = false
		}
	}
	place(0)
	return perms
}

// IndexToColors decodes a face index into its nine cell colors. Cell 0 is
// the least significant base-6 digit.
func IndexToColors(index uint32) [9]cube.Color {
	var colors [9]cube.Color
	for i := range colors {
		colors[i] = cube.Color(index % cube.Colors)
		index /= cube.Colors
	}
	return colors
}

// ColorsToIndex is the inverse of IndexToColors.
func ColorsToIndex(colors [9]cube.Color) uint32 {
	var index uint32
	for i := 8; i >= 0; i-- {
		index = index*cube.Colors + uint32(colors[i])
	}
	return index
}

// Table is the face pattern table. It is immutable once built.
type Table struct {
	ids []ID
}

// PatternID returns the canonical pattern id for a face index.
func (t *Table) PatternID(faceIndex uint32) ID {
	return t.ids[faceIndex]
}

// IDs exposes the raw table for persistence. Callers must not modify it.
func (t *Table) IDs() []ID {
	return t.ids
}

// FromIDs wraps a previously persisted table.
func FromIDs(ids []ID) (*Table, error) {
	if len(ids) != cube.FaceArrangements {
		return nil, fmt.Errorf("face table has %d entries, want %d", len(ids), cube.FaceArrangements)
	}
	return &Table{ids: ids}, nil
}

// Build constructs the table. Face indexes are visited in ascending order;
// the first index of each orbit under (dihedral symmetry x color relabeling)
// claims the next free id, perfect orbits drawing from 0..15 and all others
// from 16 up, and the whole orbit is filled before moving on. Construction
// is therefore deterministic.
func Build() (*Table, error) {
	ids := make([]ID, cube.FaceArrangements)
	for i := range ids {
		ids[i] = NotSet
	}

	nextPerfect := ID(0)
	nextRegular := ID(PerfectPatterns)

	for i := uint32(0); i < cube.FaceArrangements; i++ {
		if ids[i] != NotSet {
			continue
		}

		colors := IndexToColors(i)
		distinct, maxCount := cube.FaceColorCounts(colors)

		var id ID
		if distinct == cube.Colors && maxCount == 2 && cube.FaceConnectedness(colors) == cube.NothingTouching {
			id = nextPerfect
			nextPerfect++
		} else {
			id = nextRegular
			nextRegular++
		}

		for s := range symmetries {
			var transformed [9]cube.Color
			for cell := range transformed {
				transformed[cell] = colors[symmetries[s][cell]]
			}
			for p := range colorPerms {
				var relabeled [9]cube.Color
				for cell := range relabeled {
					relabeled[cell] = colorPerms[p][transformed[cell]]
				}
				idx := ColorsToIndex(relabeled)
				if ids[idx] == NotSet {
					ids[idx] = id
				}
			}
		}
	}

	if nextPerfect != PerfectPatterns {
		return nil, fmt.Errorf("found %d perfect pattern orbits, want %d", nextPerfect, PerfectPatterns)
	}
	for i, id := range ids {
		if id == NotSet {
			return nil, fmt.Errorf("face table entry %d left unset", i)
		}
	}

	return &Table{ids: ids}, nil
}
