package hexlab

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// MeshStats summarizes the size and geometry of a mesh.
type MeshStats struct {
	NumVertices      int
	NumCells         int
	NumFaces         int
	NumBoundaryFaces int

	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64

	AvgVolume float64

	Bounds *model3d.Rect
}

// ComputeStats computes statistics over the unique edges and the cells of
// a mesh.
func ComputeStats(m *Mesh) MeshStats {
	res := MeshStats{
		NumVertices: len(m.Vertices),
		NumCells:    len(m.Cells),
		NumFaces:    len(m.Faces),
		AvgVolume:   AverageVolume(m),
		Bounds:      model3d.BoundsRect(m),
	}
	for i := range m.Faces {
		if m.IsBoundary(i) {
			res.NumBoundaryFaces++
		}
	}

	seen := map[[2]int]bool{}
	var total float64
	res.MinEdgeLength = math.Inf(1)
	for _, c := range m.Cells {
		for _, e := range cellEdges {
			a, b := c.Vertices[e[0]], c.Vertices[e[1]]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if a == b || seen[key] {
				continue
			}
			seen[key] = true
			length := m.Vertices[a].Position.Dist(m.Vertices[b].Position)
			res.MinEdgeLength = math.Min(res.MinEdgeLength, length)
			res.MaxEdgeLength = math.Max(res.MaxEdgeLength, length)
			total += length
		}
	}
	if len(seen) == 0 {
		res.MinEdgeLength = 0
	} else {
		res.AvgEdgeLength = total / float64(len(seen))
	}
	return res
}
