package hexlab

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// AllCells may appear in PickFilter.Filtered() to hide every cell.
const AllCells = -2

var ErrStaleMesh = errors.New("mesh was replaced since the filter was set up")

// A PickFilter hides and shows individual cells selected with rays.
//
// Cells in the filled set are shown even when other filters hide them.
//
// The filter is bound to the last mesh passed to OnMeshSet. Picking on any
// other mesh fails with ErrStaleMesh, and filtering any other mesh is a
// no-op.
type PickFilter struct {
	Enabled bool

	meshID   uint64
	numCells int
	filtered []int
	filled   []int
}

// NewPickFilter creates an enabled filter with no selections.
func NewPickFilter() *PickFilter {
	return &PickFilter{Enabled: true}
}

// OnMeshSet binds the filter to m and clears the selections.
func (p *PickFilter) OnMeshSet(m *Mesh) {
	p.Enabled = true
	p.meshID = m.ID()
	p.numCells = len(m.Cells)
	p.Clear()
}

func (p *PickFilter) Filter(m *Mesh) {
	if !p.Enabled || m.ID() != p.meshID {
		return
	}
	if len(p.filtered) > 0 && p.filtered[0] == AllCells {
		for i := range m.Cells {
			m.Mark(i)
		}
	} else {
		for _, c := range p.filtered {
			m.Mark(c)
		}
	}
	for _, c := range p.filled {
		m.Unmark(c)
	}
}

// Raycast finds the visible cell hit by a ray and the cell in front of it.
// Either result may be None.
func (p *PickFilter) Raycast(m *Mesh, r *model3d.Ray) (in, out int, err error) {
	if m.ID() != p.meshID {
		return None, None, errors.Wrap(ErrStaleMesh, "raycast")
	}
	hit, ok := m.FirstSurfaceCollision(r)
	if !ok {
		return None, None, nil
	}
	return hit.In, hit.Out, nil
}

// Dig hides the first visible cell along a ray, returning its index or None
// if the ray hits nothing.
func (p *PickFilter) Dig(m *Mesh, r *model3d.Ray) (int, error) {
	in, _, err := p.Raycast(m, r)
	if err != nil || in == None {
		return None, err
	}
	if !removeSorted(&p.filled, in) {
		p.FilterCell(in)
	}
	return in, nil
}

// Undig shows the hidden cell in front of the first visible surface along a
// ray, returning its index or None.
func (p *PickFilter) Undig(m *Mesh, r *model3d.Ray) (int, error) {
	_, out, err := p.Raycast(m, r)
	if err != nil || out == None {
		return None, err
	}
	if !removeSorted(&p.filtered, out) {
		p.FillCell(out)
	}
	return out, nil
}

// Isolate hides every cell except the first visible cell along a ray.
func (p *PickFilter) Isolate(m *Mesh, r *model3d.Ray) (int, error) {
	in, _, err := p.Raycast(m, r)
	if err != nil || in == None {
		return None, err
	}
	p.filtered = []int{AllCells}
	p.filled = []int{in}
	return in, nil
}

// FilterCell adds a cell to the hidden set. Out of range cells are ignored.
func (p *PickFilter) FilterCell(cell int) {
	if cell == AllCells || (cell >= 0 && cell < p.numCells) {
		insertSorted(&p.filtered, cell)
	}
}

// FillCell adds a cell to the shown set. Out of range cells are ignored.
func (p *PickFilter) FillCell(cell int) {
	if cell >= 0 && cell < p.numCells {
		insertSorted(&p.filled, cell)
	}
}

// Clear removes every selection.
func (p *PickFilter) Clear() {
	p.filtered = nil
	p.filled = nil
}

// Filtered gets the sorted hidden set.
func (p *PickFilter) Filtered() []int {
	return append([]int{}, p.filtered...)
}

// Filled gets the sorted shown set.
func (p *PickFilter) Filled() []int {
	return append([]int{}, p.filled...)
}

func insertSorted(s *[]int, x int) {
	idx, found := slices.BinarySearch(*s, x)
	if !found {
		*s = slices.Insert(*s, idx, x)
	}
}

func removeSorted(s *[]int, x int) bool {
	idx, found := slices.BinarySearch(*s, x)
	if found {
		*s = slices.Delete(*s, idx, idx+1)
	}
	return found
}
