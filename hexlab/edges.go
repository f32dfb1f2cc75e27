package hexlab

import "golang.org/x/exp/slices"

// maxEdgeValence bounds the walk around an edge on malformed meshes.
const maxEdgeValence = 64

// An Edge is an interior edge of a mesh with the number of cells around it.
type Edge struct {
	A, B    int
	Valence int
}

// EdgeValence counts the cells around an edge of a face, where edge i runs
// from FaceIndices(face)[i] to the next vertex of the loop.
//
// The result is 0 if the edge touches the boundary of the mesh or a
// collapsed face.
func (m *Mesh) EdgeValence(face, edge int) int {
	if !m.isProperInterior(face) {
		return 0
	}
	loop := m.FaceIndices(face)
	a, b := loop[edge], loop[(edge+1)%4]
	if a == b {
		return 0
	}

	cur, owner, e := face, 0, edge
	for valence := 1; valence <= maxEdgeValence; valence++ {
		f := &m.Faces[cur]
		cell := f.Cells[owner]
		next := m.Cells[cell].Faces[pivotSide[f.Sides[owner]][e]]
		if !m.isProperInterior(next) {
			return 0
		}
		if next == face {
			return valence
		}
		nf := &m.Faces[next]
		owner = 0
		if nf.Cells[0] == cell {
			owner = 1
		}
		// The owner across the face sees the edge as a->b again.
		e = loopEdge(m.sideIndices(nf.Cells[owner], nf.Sides[owner]), a, b)
		if e == None {
			return 0
		}
		cur = next
	}
	return 0
}

// SingularEdges lists the interior edges shared by a number of cells other
// than four, sorted by their endpoints.
func (m *Mesh) SingularEdges() []Edge {
	seen := map[[2]int]bool{}
	var res []Edge
	for i := range m.Faces {
		if !m.isProperInterior(i) {
			continue
		}
		loop := m.FaceIndices(i)
		for e := 0; e < 4; e++ {
			a, b := loop[e], loop[(e+1)%4]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if a == b || seen[key] {
				continue
			}
			seen[key] = true
			if v := m.EdgeValence(i, e); v != 0 && v != 4 {
				res = append(res, Edge{A: a, B: b, Valence: v})
			}
		}
	}
	slices.SortFunc(res, func(x, y Edge) bool {
		if x.A != y.A {
			return x.A < y.A
		}
		return x.B < y.B
	})
	return res
}

func (m *Mesh) isProperInterior(face int) bool {
	f := &m.Faces[face]
	return f.Cells[1] != None && f.Cells[0] != f.Cells[1]
}

func loopEdge(loop FourIndices, a, b int) int {
	for i := 0; i < 4; i++ {
		if loop[i] == a && loop[(i+1)%4] == b {
			return i
		}
	}
	return None
}
