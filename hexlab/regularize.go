package hexlab

// ErodeDilate applies strength erosions followed by strength dilations to
// the visible cells, removing visible parts thinner than the strength.
func ErodeDilate(m *Mesh, strength int) {
	for i := 0; i < strength; i++ {
		Erode(m)
	}
	for i := 0; i < strength; i++ {
		Dilate(m)
	}
}

// Erode hides every cell touching the boundary between visible and hidden
// cells.
func Erode(m *Mesh) {
	m.updateSurfaceVertices()
	for i := range m.Cells {
		if m.touchesSurfaceVertex(i) {
			m.Mark(i)
		}
	}
}

// Dilate shows every cell touching the boundary between visible and hidden
// cells.
func Dilate(m *Mesh) {
	m.updateSurfaceVertices()
	for i := range m.Cells {
		if m.touchesSurfaceVertex(i) {
			m.Unmark(i)
		}
	}
}

// updateSurfaceVertices flags the vertices of every interior face whose two
// owners differ in visibility.
func (m *Mesh) updateSurfaceVertices() {
	for i := range m.Vertices {
		m.Vertices[i].visible = false
	}
	for i := range m.Faces {
		f := &m.Faces[i]
		if f.Cells[1] == None || m.IsMarked(f.Cells[0]) == m.IsMarked(f.Cells[1]) {
			continue
		}
		for _, v := range m.FaceIndices(i) {
			m.Vertices[v].visible = true
		}
	}
}

func (m *Mesh) touchesSurfaceVertex(cell int) bool {
	for _, v := range m.Cells[cell].Vertices {
		if m.Vertices[v].visible {
			return true
		}
	}
	return false
}
