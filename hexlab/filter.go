package hexlab

// A Filter hides cells of a mesh.
//
// OnMeshSet is called once whenever a new mesh is loaded, and resets the
// filter to its defaults. Filter is called on every pipeline pass and marks
// the cells that should be hidden.
type Filter interface {
	OnMeshSet(m *Mesh)
	Filter(m *Mesh)
}

var (
	_ Filter = (*PlaneFilter)(nil)
	_ Filter = (*QualityFilter)(nil)
	_ Filter = (*PeelingFilter)(nil)
	_ Filter = (*PickFilter)(nil)
)
