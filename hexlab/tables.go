package hexlab

// Corners of a cell are numbered by a 3-bit code: bit 0 is set on the +X
// side, bit 1 on the +Y side and bit 2 on the +Z side.

// Sides of a cell, in the order of Cell.Faces.
const (
	SideNegX = iota
	SidePosX
	SideNegY
	SidePosY
	SideNegZ
	SidePosZ
)

// sideCorners lists the corners bounding each side, wound so that the
// right-hand rule points out of the cell.
var sideCorners = [6][4]int{
	{0, 2, 6, 4},
	{3, 1, 5, 7},
	{0, 4, 5, 1},
	{6, 2, 3, 7},
	{0, 1, 3, 2},
	{5, 4, 6, 7},
}

// pivotSide maps a side and an edge of its loop (the edge from corner i to
// corner i+1) to the other side of the same cell sharing that edge.
var pivotSide = [6][4]int{
	{4, 3, 5, 2},
	{4, 2, 5, 3},
	{0, 5, 1, 4},
	{0, 4, 1, 5},
	{2, 1, 3, 0},
	{2, 0, 3, 1},
}

// cellEdges lists the 12 edges of a cell as corner pairs.
var cellEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// verdictOrder converts corner numbering to the counter-clockwise ordering
// used by the quality metrics, where corner 2 is diagonal to corner 0.
var verdictOrder = [8]int{0, 1, 3, 2, 4, 5, 7, 6}
