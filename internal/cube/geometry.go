package cube

// CornerSlots lists the three sticker slots of each corner cubie in a fixed
// cyclic order: twisting a corner by +1 sends the sticker at slot k to slot
// (k+1) mod 3.
var CornerSlots = [Corners][3]uint8{
	{18, 11, 6}, {20, 8, 27}, {24, 36, 17}, {26, 33, 38},
	{45, 15, 42}, {47, 44, 35}, {51, 0, 9}, {53, 29, 2},
}

// EdgeSlots lists the two sticker slots of each edge cubie. Flip 0 is the
// solved orientation.
var EdgeSlots = [Edges][2]uint8{
	{52, 1}, {3, 10}, {5, 28}, {19, 7}, {48, 12}, {21, 14},
	{39, 16}, {23, 30}, {25, 37}, {50, 32}, {41, 34}, {46, 43},
}

// CornerCountChecks lists the corner-slot triples that would put three
// same-colored corner stickers on one face. The triple at row i becomes
// checkable once the corner named by the CornerCheckStart/End window
// containing i has been placed.
var CornerCountChecks = [24][3]uint8{
	{18, 20, 24},                             // corner 2
	{18, 20, 26}, {18, 24, 26}, {20, 24, 26}, // corner 3
	{11, 15, 17}, {36, 38, 42}, // corner 4
	{27, 33, 35}, {36, 38, 44}, {36, 42, 44}, {38, 42, 44}, // corner 5
	{0, 6, 8}, {45, 47, 51}, {9, 11, 15}, {9, 11, 17}, {9, 15, 17}, // corner 6
	{0, 2, 6}, {0, 2, 8}, {2, 6, 8}, {27, 29, 33}, {27, 29, 35}, // corner 7
	{29, 33, 35}, {45, 47, 53}, {45, 51, 53}, {47, 51, 53},
}

// CornerCheckStart and CornerCheckEnd give, per corner, the inclusive window
// of CornerCountChecks activated once that corner is placed. An empty window
// has start > end.
var (
	CornerCheckStart = [Corners]int{99, 99, 0, 1, 4, 6, 10, 15}
	CornerCheckEnd   = [Corners]int{98, 98, 0, 3, 5, 9, 14, 23}
)

// EdgeDiagChecks lists pairs of edge slots a face-diagonal apart on the same
// face, windowed per edge like the corner checks.
var EdgeDiagChecks = [24][2]uint8{
	{1, 3}, {1, 5}, {3, 7}, {5, 7}, {10, 12}, {48, 52},
	{10, 14}, {19, 21}, {12, 16}, {14, 16}, {19, 23}, {28, 30},
	{21, 25}, {23, 25}, {37, 39}, {28, 32}, {50, 52}, {30, 34},
	{32, 34}, {37, 41}, {39, 43}, {41, 43}, {46, 48}, {46, 50},
}

var (
	EdgeDiagStart = [Edges]int{99, 0, 1, 2, 4, 6, 8, 10, 12, 15, 17, 20}
	EdgeDiagEnd   = [Edges]int{98, 0, 1, 3, 5, 7, 9, 11, 14, 16, 19, 23}
)

// EdgeFaceStart and EdgeFaceEnd give, per edge, the inclusive range of faces
// whose four edge cells are all filled once that edge is placed. A negative
// start means no face completes at that depth.
var (
	EdgeFaceStart = [Edges]int{-1, -1, -1, 0, -1, -1, 1, -1, 2, -1, 3, 4}
	EdgeFaceEnd   = [Edges]int{-2, -2, -2, 0, -2, -1, 1, -2, 2, -2, 3, 5}
)

// sameFaceEdgePairs lists the slot pairs that sit side by side on one face.
var sameFaceEdgePairs = [72][2]uint8{
	{0, 1}, {1, 2}, {3, 4}, {4, 5}, {6, 7}, {7, 8}, {0, 3}, {1, 4}, {2, 5}, {3, 6}, {4, 7}, {5, 8},
	{9, 10}, {10, 11}, {12, 13}, {13, 14}, {15, 16}, {16, 17}, {9, 12}, {10, 13}, {11, 14}, {12, 15}, {13, 16}, {14, 17},
	{18, 19}, {19, 20}, {21, 22}, {22, 23}, {24, 25}, {25, 26}, {18, 21}, {19, 22}, {20, 23}, {21, 24}, {22, 25}, {23, 26},
	{27, 28}, {28, 29}, {30, 31}, {31, 32}, {33, 34}, {34, 35}, {27, 30}, {28, 31}, {29, 32}, {30, 33}, {31, 34}, {32, 35},
	{36, 37}, {37, 38}, {39, 40}, {40, 41}, {42, 43}, {43, 44}, {36, 39}, {37, 40}, {38, 41}, {39, 42}, {40, 43}, {41, 44},
	{45, 46}, {46, 47}, {48, 49}, {49, 50}, {51, 52}, {52, 53}, {45, 48}, {46, 49}, {47, 50}, {48, 51}, {49, 52}, {50, 53},
}

// sameFaceDiagPairs lists the slot pairs that touch diagonally on one face.
var sameFaceDiagPairs = [48][2]uint8{
	{0, 4}, {2, 4}, {6, 4}, {8, 4}, {1, 3}, {1, 5}, {7, 3}, {7, 5},
	{9, 13}, {11, 13}, {15, 13}, {17, 13}, {10, 12}, {10, 14}, {16, 12}, {16, 14},
	{18, 22}, {20, 22}, {24, 22}, {26, 22}, {19, 21}, {19, 23}, {25, 21}, {25, 23},
	{27, 31}, {29, 31}, {33, 31}, {35, 31}, {28, 30}, {28, 32}, {34, 30}, {34, 32},
	{36, 40}, {38, 40}, {42, 40}, {44, 40}, {37, 39}, {37, 41}, {43, 39}, {43, 41},
	{45, 49}, {47, 49}, {51, 49}, {53, 49}, {46, 48}, {46, 50}, {52, 48}, {52, 50},
}

// crossFaceDiagPairs lists the slot pairs that touch diagonally across the
// seam between two adjacent faces.
var crossFaceDiagPairs = [48][2]uint8{
	{19, 6}, {19, 8}, {21, 11}, {21, 17}, {23, 27}, {23, 33}, {25, 36}, {25, 38},
	{37, 24}, {37, 26}, {39, 17}, {39, 15}, {41, 33}, {41, 35}, {43, 45}, {43, 47},
	{46, 42}, {46, 44}, {48, 15}, {48, 9}, {50, 35}, {50, 29}, {52, 0}, {52, 2},
	{1, 51}, {1, 53}, {3, 9}, {3, 11}, {5, 29}, {5, 27}, {7, 18}, {7, 20},
	{10, 0}, {10, 6}, {12, 51}, {12, 45}, {14, 18}, {14, 24}, {16, 42}, {16, 36},
	{28, 8}, {28, 2}, {30, 20}, {30, 26}, {32, 53}, {32, 47}, {34, 38}, {34, 44},
}

// CornerTemplate returns the starting cube for corner placement: centers set,
// edge slots zero so edges can be OR'ed in later, corner slots poisoned with
// an out-of-range marker until placement overwrites them.
func CornerTemplate() Cube {
	return template(99, 0)
}

// EdgeTemplate is the edge-placement counterpart of CornerTemplate.
func EdgeTemplate() Cube {
	return template(0, 99)
}

func template(cornerFill, edgeFill uint8) Cube {
	var c Cube
	for f := 0; f < Faces; f++ {
		c[Center(f)] = Center(f)
	}
	for _, triple := range CornerSlots {
		for _, s := range triple {
			c[s] = cornerFill
		}
	}
	for _, pair := range EdgeSlots {
		for _, s := range pair {
			c[s] = edgeFill
		}
	}
	return c
}
