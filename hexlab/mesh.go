package hexlab

import (
	"sync/atomic"

	"github.com/unixpickle/model3d/model3d"
)

var meshCounter uint64

// A Vertex is a corner shared by one or more cells.
type Vertex struct {
	Position model3d.Coord3D

	// Set by the regularizer when the vertex touches the boundary between
	// visible and hidden cells.
	visible bool
}

// A Cell is a hexahedron.
type Cell struct {
	// Vertices are indexed by the corner code (see sideCorners).
	Vertices [8]int

	// Faces are indexed by side (SideNegX, SidePosX, ...).
	Faces [6]int

	mark uint32
}

// A Face is a quadrilateral shared by one or two cells.
type Face struct {
	// Cells are the owners of the face. Cells[1] is None for a boundary
	// face and equal to Cells[0] for a collapsed face.
	Cells [2]int

	// Sides are the local side indices of the face in each owner.
	Sides [2]int

	// Normal points away from Cells[0].
	Normal model3d.Coord3D
}

// A Mesh is a hexahedral volume mesh with cell/face adjacency.
//
// A cell is hidden when it is marked for the current epoch. Unmarking every
// cell only advances the epoch.
type Mesh struct {
	Vertices []Vertex
	Cells    []Cell
	Faces    []Face

	// Quality and NormalizedQuality hold one value per cell for the most
	// recently evaluated Measure.
	Quality           []float64
	NormalizedQuality []float64

	id    uint64
	epoch uint32
	min   model3d.Coord3D
	max   model3d.Coord3D
}

func newMesh(numVertices, numCells int) *Mesh {
	return &Mesh{
		Vertices:          make([]Vertex, 0, numVertices),
		Cells:             make([]Cell, 0, numCells),
		Faces:             make([]Face, 0, numCells*3),
		Quality:           make([]float64, numCells),
		NormalizedQuality: make([]float64, numCells),
		id:                atomic.AddUint64(&meshCounter, 1),
		epoch:             1,
	}
}

// ID returns a process-unique identifier for this mesh instance.
func (m *Mesh) ID() uint64 {
	return m.id
}

// Min gets the minimum corner of the bounding box.
func (m *Mesh) Min() model3d.Coord3D {
	return m.min
}

// Max gets the maximum corner of the bounding box.
func (m *Mesh) Max() model3d.Coord3D {
	return m.max
}

// UnmarkAll makes every cell visible in constant time.
func (m *Mesh) UnmarkAll() {
	m.epoch++
}

// IsMarked checks if a cell is hidden.
func (m *Mesh) IsMarked(cell int) bool {
	return m.Cells[cell].mark == m.epoch
}

// Mark hides a cell.
func (m *Mesh) Mark(cell int) {
	m.Cells[cell].mark = m.epoch
}

// Unmark makes a cell visible.
func (m *Mesh) Unmark(cell int) {
	m.Cells[cell].mark = m.epoch - 1
}

// NumHidden counts the marked cells.
func (m *Mesh) NumHidden() int {
	var n int
	for i := range m.Cells {
		if m.IsMarked(i) {
			n++
		}
	}
	return n
}

// VisibleCells lists the unmarked cells in order.
func (m *Mesh) VisibleCells() []int {
	res := make([]int, 0, len(m.Cells))
	for i := range m.Cells {
		if !m.IsMarked(i) {
			res = append(res, i)
		}
	}
	return res
}

// IsBoundary checks if a face has a single owner.
func (m *Mesh) IsBoundary(face int) bool {
	return m.Faces[face].Cells[1] == None
}

// FaceIndices gets the vertex loop of a face as seen from its first owner.
func (m *Mesh) FaceIndices(face int) FourIndices {
	f := &m.Faces[face]
	return m.sideIndices(f.Cells[0], f.Sides[0])
}

// FaceCorners gets the positions of FaceIndices(face).
func (m *Mesh) FaceCorners(face int) [4]model3d.Coord3D {
	var res [4]model3d.Coord3D
	for i, v := range m.FaceIndices(face) {
		res[i] = m.Vertices[v].Position
	}
	return res
}

// CellCorners gets the positions of a cell's corners.
func (m *Mesh) CellCorners(cell int) [8]model3d.Coord3D {
	var res [8]model3d.Coord3D
	for i, v := range m.Cells[cell].Vertices {
		res[i] = m.Vertices[v].Position
	}
	return res
}

// CellCenter computes the average of a cell's corners.
func (m *Mesh) CellCenter(cell int) model3d.Coord3D {
	var sum model3d.Coord3D
	for _, c := range m.CellCorners(cell) {
		sum = sum.Add(c)
	}
	return sum.Scale(1.0 / 8)
}

// OtherSide gets the cell across the given side of a cell, or None if the
// side lies on the boundary.
func (m *Mesh) OtherSide(cell, side int) int {
	f := &m.Faces[m.Cells[cell].Faces[side]]
	if f.Cells[0] == cell {
		return f.Cells[1]
	}
	return f.Cells[0]
}

func (m *Mesh) sideIndices(cell, side int) FourIndices {
	c := &m.Cells[cell]
	var res FourIndices
	for i, corner := range sideCorners[side] {
		res[i] = c.Vertices[corner]
	}
	return res
}

func (m *Mesh) computeBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	m.min = m.Vertices[0].Position
	m.max = m.min
	for _, v := range m.Vertices[1:] {
		m.min = m.min.Min(v.Position)
		m.max = m.max.Max(v.Position)
	}
}
