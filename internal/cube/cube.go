// Package cube provides the 3x3 cube model used by the scramble search:
// the 54-slot sticker layout, the corner and edge cubie tables, and the
// color-adjacency classification.
package cube

// The cube is laid out as 54 sticker slots, nine per face in reading order:
//
//	            Back Face
//	            +--+--+--+
//	            | 0| 1| 2|
//	            +--+--+--+
//	            | 3| 4| 5|
//	            +--+--+--+
//	            | 6| 7| 8|
//	            +--+--+--+
//	Left Face    Up Face     Right Face
//	+--+--+--+  +--+--+--+  +--+--+--+
//	| 9|10|11|  |18|19|20|  |27|28|29|
//	+--+--+--+  +--+--+--+  +--+--+--+
//	|12|13|14|  |21|22|23|  |30|31|32|
//	+--+--+--+  +--+--+--+  +--+--+--+
//	|15|16|17|  |24|25|26|  |33|34|35|
//	+--+--+--+  +--+--+--+  +--+--+--+
//	            Front Face
//	            +--+--+--+
//	            |36|37|38|
//	            +--+--+--+
//	            |39|40|41|
//	            +--+--+--+
//	            |42|43|44|
//	            +--+--+--+
//	            Down Face
//	            +--+--+--+
//	            |45|46|47|
//	            +--+--+--+
//	            |48|49|50|
//	            +--+--+--+
//	            |51|52|53|
//	            +--+--+--+
//
// Slot numbers name both positions and stickers: during enumeration a slot
// holds the solved-state slot id of the sticker currently there, so the
// color of the value v is v/9.

const (
	Surfaces = 54 // visible sticker slots
	Faces    = 6
	Corners  = 8  // corner cubies
	Edges    = 12 // edge cubies
	Colors   = 6

	// FaceArrangements is Colors^9, every possible coloring of one face.
	FaceArrangements = 10077696
)

// Color is a sticker color, 0..5, equal to the face it matches when solved.
type Color byte

const (
	Back  Color = 0
	Left  Color = 1
	Up    Color = 2
	Right Color = 3
	Front Color = 4
	Down  Color = 5
)

func (c Color) String() string {
	switch c {
	case Back:
		return "B"
	case Left:
		return "L"
	case Up:
		return "U"
	case Right:
		return "R"
	case Front:
		return "F"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// ColorOf returns the color of a sticker value.
func ColorOf(s uint8) Color {
	return Color(s / 9)
}

// Center returns the slot of face f's center sticker.
func Center(f int) uint8 {
	return uint8(9*f + 4)
}

// Cube is a full or partial sticker assignment. Unassigned slots are zero in
// the partial corner-only and edge-only cubes, so two halves combine with
// bitwise OR.
type Cube [Surfaces]uint8

// Or combines two partial assignments.
func (c *Cube) Or(other *Cube) Cube {
	var out Cube
	for i := range c {
		out[i] = c[i] | other[i]
	}
	return out
}
