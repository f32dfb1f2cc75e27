package hexlab

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

const planePadding = 0.00001

// A PlaneFilter hides every cell with a corner behind a plane.
type PlaneFilter struct {
	Enabled bool

	normal   model3d.Coord3D
	offset   float64
	slider   float64
	minProj  float64
	maxProj  float64
	center   model3d.Coord3D
	vertices []model3d.Coord3D
}

// NewPlaneFilter creates an enabled filter with a plane which cuts nothing.
func NewPlaneFilter() *PlaneFilter {
	return &PlaneFilter{
		Enabled: true,
		normal:  model3d.X(1),
	}
}

// OnMeshSet resets the plane to face +X behind every vertex.
func (p *PlaneFilter) OnMeshSet(m *Mesh) {
	p.Enabled = true
	p.vertices = make([]model3d.Coord3D, len(m.Vertices))
	for i, v := range m.Vertices {
		p.vertices[i] = v.Position
	}
	bounds := model3d.BoundsRect(m)
	p.center = bounds.Min().Mid(bounds.Max())
	p.normal = model3d.X(1)
	p.slider = 0
	p.updateBounds()
}

func (p *PlaneFilter) Filter(m *Mesh) {
	if !p.Enabled {
		return
	}
	for i := range m.Cells {
		for _, v := range m.Cells[i].Vertices {
			if p.normal.Dot(m.Vertices[v].Position) < p.offset {
				m.Mark(i)
				break
			}
		}
	}
}

// SetPlaneNormal changes the plane direction, keeping the slider position.
// Zero normals are ignored.
func (p *PlaneFilter) SetPlaneNormal(n model3d.Coord3D) {
	norm := n.Norm()
	if norm == 0 || math.IsNaN(norm) {
		return
	}
	p.normal = n.Scale(1 / norm)
	p.updateBounds()
}

// SetPlaneOffset moves the plane between the extreme vertex projections,
// with 0 cutting nothing and 1 cutting everything.
func (p *PlaneFilter) SetPlaneOffset(t float64) {
	p.slider = clamp(t, 0, 1)
	p.offset = p.minProj + (p.maxProj-p.minProj)*p.slider
}

// SetPlane sets the plane normal.x >= offset directly, where offset is
// measured from the origin.
func (p *PlaneFilter) SetPlane(normal model3d.Coord3D, offset float64) {
	p.SetPlaneNormal(normal)
	p.offset = offset
	if p.maxProj > p.minProj {
		p.slider = clamp((offset-p.minProj)/(p.maxProj-p.minProj), 0, 1)
	}
}

// SetPlaneWorld is like SetPlane, but worldOffset is measured from the
// center of the mesh bounding box, as returned by WorldOffset.
func (p *PlaneFilter) SetPlaneWorld(normal model3d.Coord3D, worldOffset float64) {
	p.SetPlaneNormal(normal)
	p.SetPlane(p.normal, p.normal.Dot(p.center)-worldOffset)
}

// Normal gets the unit normal of the plane.
func (p *PlaneFilter) Normal() model3d.Coord3D {
	return p.normal
}

// Offset gets the plane offset along the normal.
func (p *PlaneFilter) Offset() float64 {
	return p.offset
}

// Slider gets the plane offset as a fraction of the mesh extent.
func (p *PlaneFilter) Slider() float64 {
	return p.slider
}

// WorldOffset gets the signed distance from the plane to the center of the
// mesh bounding box, along the normal.
func (p *PlaneFilter) WorldOffset() float64 {
	return -p.offset + p.normal.Dot(p.center)
}

func (p *PlaneFilter) updateBounds() {
	p.minProj = math.Inf(1)
	p.maxProj = math.Inf(-1)
	for _, v := range p.vertices {
		proj := p.normal.Dot(v)
		p.minProj = math.Min(p.minProj, proj)
		p.maxProj = math.Max(p.maxProj, proj)
	}
	if len(p.vertices) == 0 {
		p.minProj, p.maxProj = 0, 0
	}
	p.minProj -= planePadding
	p.maxProj += planePadding
	p.SetPlaneOffset(p.slider)
}
