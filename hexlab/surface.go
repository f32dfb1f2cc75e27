package hexlab

import "github.com/unixpickle/model3d/model3d"

// VisibleSurface triangulates every face separating a visible cell from a
// hidden cell or the outside of the mesh.
//
// Triangles face away from the visible cells.
func VisibleSurface(m *Mesh) *model3d.Mesh {
	res := model3d.NewMesh()
	m.IterateVisibleSurface(func(face, in, out int) {
		c := m.FaceCorners(face)
		if m.Faces[face].Cells[0] == in {
			// Loops wind clockwise when seen from outside their owner.
			c[1], c[3] = c[3], c[1]
		}
		res.Add(&model3d.Triangle{c[0], c[1], c[2]})
		res.Add(&model3d.Triangle{c[2], c[3], c[0]})
	})
	return res
}
