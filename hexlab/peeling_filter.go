package hexlab

import "math"

// unreachedDepth is the depth of cells with no path to the boundary.
const unreachedDepth = math.MaxInt32

// A PeelingFilter hides the outer layers of a mesh.
//
// The depth of a cell is its distance, in face-adjacency hops, to the
// nearest cell with a boundary face.
type PeelingFilter struct {
	Enabled bool

	meshID    uint64
	threshold int
	depth     []int
	maxDepth  int
}

// NewPeelingFilter creates an enabled filter which peels nothing.
func NewPeelingFilter() *PeelingFilter {
	return &PeelingFilter{Enabled: true}
}

// OnMeshSet computes the depth of every cell and resets the threshold.
// Filtering any other mesh is a no-op.
func (p *PeelingFilter) OnMeshSet(m *Mesh) {
	p.Enabled = true
	p.meshID = m.ID()
	p.depth, p.maxDepth = CellDepths(m)
	p.SetDepthThreshold(0)
}

func (p *PeelingFilter) Filter(m *Mesh) {
	if !p.Enabled || m.ID() != p.meshID {
		return
	}
	for i, d := range p.depth {
		if d < p.threshold {
			m.Mark(i)
		}
	}
}

// SetDepthThreshold hides cells shallower than depth, clamped to
// [0, MaxDepth()].
func (p *PeelingFilter) SetDepthThreshold(depth int) {
	p.threshold = clamp(depth, 0, p.maxDepth)
}

// DepthThreshold gets the current threshold.
func (p *PeelingFilter) DepthThreshold() int {
	return p.threshold
}

// Depth gets the depth of a cell.
func (p *PeelingFilter) Depth(cell int) int {
	return p.depth[cell]
}

// MaxDepth gets the largest depth of any reachable cell.
func (p *PeelingFilter) MaxDepth() int {
	return p.maxDepth
}

// CellDepths runs a breadth-first search from every cell owning a boundary
// face, returning the depth of each cell and the maximum depth.
func CellDepths(m *Mesh) (depth []int, maxDepth int) {
	depth = make([]int, len(m.Cells))
	for i := range depth {
		depth[i] = unreachedDepth
	}

	var frontier []int
	for i := range m.Faces {
		if m.IsBoundary(i) {
			c := m.Faces[i].Cells[0]
			if depth[c] != 0 {
				depth[c] = 0
				frontier = append(frontier, c)
			}
		}
	}

	for cur := 0; len(frontier) > 0; cur++ {
		if cur > maxDepth {
			maxDepth = cur
		}
		var next []int
		for _, c := range frontier {
			for side := 0; side < 6; side++ {
				n := m.OtherSide(c, side)
				if n != None && depth[n] == unreachedDepth {
					depth[n] = cur + 1
					next = append(next, n)
				}
			}
		}
		frontier = next
	}
	return
}
