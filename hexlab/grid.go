package hexlab

import (
	"math/rand"

	"github.com/unixpickle/model3d/model3d"
)

// BoxGrid creates a structured grid of nx*ny*nz cells filling the box
// between min and max.
//
// The results can be passed directly to Build. Cells are ordered with x
// varying fastest.
func BoxGrid(nx, ny, nz int, min, max model3d.Coord3D) (vertices []model3d.Coord3D, indices []int) {
	size := max.Sub(min)
	vertexIndex := func(i, j, k int) int {
		return i + (nx+1)*(j+(ny+1)*k)
	}
	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				frac := model3d.XYZ(
					float64(i)/float64(nx),
					float64(j)/float64(ny),
					float64(k)/float64(nz),
				)
				vertices = append(vertices, min.Add(frac.Mul(size)))
			}
		}
	}
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				for corner := 0; corner < 8; corner++ {
					indices = append(indices, vertexIndex(
						i+corner&1,
						j+(corner>>1)&1,
						k+(corner>>2)&1,
					))
				}
			}
		}
	}
	return
}

// Jitter moves every vertex by a random offset in [-amount, amount] along
// each axis.
func Jitter(vertices []model3d.Coord3D, amount float64, gen *rand.Rand) {
	for i, v := range vertices {
		offset := model3d.XYZ(
			gen.Float64()*2-1,
			gen.Float64()*2-1,
			gen.Float64()*2-1,
		)
		vertices[i] = v.Add(offset.Scale(amount))
	}
}
