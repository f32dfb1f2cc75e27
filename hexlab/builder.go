package hexlab

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

var (
	ErrIndexCount = errors.New("index count is not a multiple of 8")
	ErrIndexRange = errors.New("vertex index out of range")
)

// pendingFace is a side of a cell waiting for the opposite side of a
// neighboring cell. The first vertex of the canonical loop is implied by
// the bucket holding the descriptor.
type pendingFace struct {
	v1, v2, v3 int
	cell       int
	side       int
}

func (p *pendingFace) matches(other *pendingFace) bool {
	return p.v2 == other.v2 && p.v1 == other.v3 && p.v3 == other.v1
}

// Build creates a Mesh from vertex positions and groups of eight corner
// indices per cell, discovering which cells share faces.
//
// Either a complete mesh or an error is returned.
func Build(vertices []model3d.Coord3D, indices []int) (*Mesh, error) {
	if len(indices)%8 != 0 {
		return nil, errors.Wrapf(ErrIndexCount, "build mesh: got %d indices", len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= len(vertices) {
			return nil, errors.Wrapf(ErrIndexRange, "build mesh: cell %d corner %d references vertex %d of %d",
				i/8, i%8, idx, len(vertices))
		}
	}

	m := newMesh(len(vertices), len(indices)/8)
	for _, v := range vertices {
		m.Vertices = append(m.Vertices, Vertex{Position: v})
	}
	m.computeBounds()

	buckets := make([][]pendingFace, len(vertices))
	for i := 0; i < len(indices); i += 8 {
		cell := Cell{}
		copy(cell.Vertices[:], indices[i:i+8])
		for j := range cell.Faces {
			cell.Faces[j] = None
		}
		m.Cells = append(m.Cells, cell)

		cellIdx := len(m.Cells) - 1
		for side := 0; side < 6; side++ {
			loop := canonicalize(m.sideIndices(cellIdx, side))
			desc := pendingFace{
				v1:   loop[1],
				v2:   loop[2],
				v3:   loop[3],
				cell: cellIdx,
				side: side,
			}
			bucket := buckets[loop[0]]
			matched := false
			for j := range bucket {
				other := &bucket[j]
				if desc.matches(other) {
					m.addFace(desc.cell, desc.side, other.cell, other.side)
					bucket[j] = bucket[len(bucket)-1]
					buckets[loop[0]] = bucket[:len(bucket)-1]
					matched = true
					break
				}
			}
			if !matched {
				buckets[loop[0]] = append(bucket, desc)
			}
		}
	}

	for _, bucket := range buckets {
		for _, desc := range bucket {
			face := m.addFace(desc.cell, desc.side, None, 0)
			m.fixIfDegenerate(face)
		}
	}

	return m, nil
}

func (m *Mesh) addFace(cell0, side0, cell1, side1 int) int {
	idx := len(m.Faces)
	f := Face{
		Cells: [2]int{cell0, cell1},
		Sides: [2]int{side0, side1},
	}
	m.Cells[cell0].Faces[side0] = idx
	if cell1 != None {
		m.Cells[cell1].Faces[side1] = idx
	}
	m.Faces = append(m.Faces, f)
	m.Faces[idx].Normal = m.faceNormal(idx)
	return idx
}

// fixIfDegenerate makes a boundary face self-owned when at least two of its
// edges are collapsed, i.e. the face is a line or a point.
func (m *Mesh) fixIfDegenerate(face int) {
	f := &m.Faces[face]
	loop := m.FaceIndices(face)
	var collapsed int
	for i := 0; i < 4; i++ {
		if loop[i] == loop[(i+1)%4] {
			collapsed++
		}
	}
	if collapsed >= 2 {
		f.Cells[1] = f.Cells[0]
		f.Sides[1] = f.Sides[0]
	}
}

func (m *Mesh) faceNormal(face int) model3d.Coord3D {
	corners := m.FaceCorners(face)

	var normal model3d.Coord3D
	var scale float64
	for i := 0; i < 4; i++ {
		prev := corners[(i+3)%4].Sub(corners[i])
		next := corners[(i+1)%4].Sub(corners[i])
		normal = normal.Add(prev.Cross(next))
		scale += next.Dot(next)
	}

	if normal.Norm() <= 1e-12*scale {
		var center model3d.Coord3D
		for _, c := range corners {
			center = center.Add(c)
		}
		center = center.Scale(0.25)
		normal = center.Sub(m.CellCenter(m.Faces[face].Cells[0]))
	}
	return safeNormalize(normal)
}

// canonicalize rotates a loop so that its largest vertex comes first, and
// replaces the slot removed by a collapsed edge with None.
func canonicalize(f FourIndices) FourIndices {
	m0 := 1
	if f[0] > f[1] {
		m0 = 0
	}
	m1 := 3
	if f[2] > f[3] {
		m1 = 2
	}
	start := m1
	if f[m0] > f[m1] {
		start = m0
	}

	var res FourIndices
	for i := range res {
		res[i] = f[(start+i)%4]
	}

	if res[0] == res[1] {
		res[1] = res[2]
		res[2] = None
	}
	if res[3] == res[0] {
		res[3] = res[2]
		res[2] = None
	}
	if res[1] == res[2] || res[2] == res[3] {
		res[2] = None
	}
	return res
}

func safeNormalize(c model3d.Coord3D) model3d.Coord3D {
	norm := c.Norm()
	if norm == 0 {
		return c
	}
	return c.Scale(1 / norm)
}
