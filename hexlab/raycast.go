package hexlab

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

const rayEpsilon = 1e-6

// A SurfaceHit is the first intersection of a ray with the visible surface.
type SurfaceHit struct {
	Face int

	// In is the visible cell behind the face, and Out is the cell in front
	// of it (hidden or None).
	In  int
	Out int

	model3d.RayCollision
}

// IterateVisibleSurface calls f for every face separating a visible cell
// from a hidden cell or from the outside of the mesh. The in and out
// arguments are the visible and the other owner, respectively.
func (m *Mesh) IterateVisibleSurface(f func(face, in, out int)) {
	for i := range m.Faces {
		face := &m.Faces[i]
		in0 := !m.IsMarked(face.Cells[0])
		in1 := face.Cells[1] != None && !m.IsMarked(face.Cells[1])
		if in0 == in1 {
			continue
		}
		if in0 {
			f(i, face.Cells[0], face.Cells[1])
		} else {
			f(i, face.Cells[1], face.Cells[0])
		}
	}
}

// FirstSurfaceCollision finds the closest face of the visible surface hit
// by a ray.
func (m *Mesh) FirstSurfaceCollision(r *model3d.Ray) (hit SurfaceHit, ok bool) {
	maxT := math.Inf(1)
	m.IterateVisibleSurface(func(face, in, out int) {
		c := m.FaceCorners(face)
		if rayTriangle(r, c[0], c[1], c[2], &maxT) || rayTriangle(r, c[2], c[3], c[0], &maxT) {
			normal := m.Faces[face].Normal
			if m.Faces[face].Cells[0] != in {
				normal = normal.Scale(-1)
			}
			hit = SurfaceHit{
				Face: face,
				In:   in,
				Out:  out,
				RayCollision: model3d.RayCollision{
					Scale:  maxT,
					Normal: normal,
				},
			}
			ok = true
		}
	})
	return
}

// rayTriangle checks if a ray hits a triangle closer than *maxT, in which
// case *maxT is updated to the ray scale of the hit.
func rayTriangle(r *model3d.Ray, v0, v1, v2 model3d.Coord3D, maxT *float64) bool {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	tVec := r.Origin.Sub(v0)
	pVec := r.Direction.Cross(edge2)
	qVec := tVec.Cross(edge1)

	det := edge1.Dot(pVec)
	u := tVec.Dot(pVec)
	v := r.Direction.Dot(qVec)
	if det > rayEpsilon {
		if u < 0 || u > det || v < 0 || u+v > det {
			return false
		}
	} else if det < -rayEpsilon {
		if u > 0 || u < det || v > 0 || u+v < det {
			return false
		}
	} else {
		return false
	}

	t := edge2.Dot(qVec) / det
	if t < 0 || t > *maxT {
		return false
	}
	*maxT = t
	return true
}
