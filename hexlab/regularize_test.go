package hexlab

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestErodeDilateProtrusion(t *testing.T) {
	m := gridMesh(t, 5, 5, 1)
	visible := func(i, j int) bool {
		return (i < 3 && j < 3) || (j == 1 && i >= 3)
	}
	m.UnmarkAll()
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			if !visible(i, j) {
				m.Mark(i + 5*j)
			}
		}
	}

	ErodeDilate(m, 1)
	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			expected := !(i < 3 && j < 3)
			if m.IsMarked(i+5*j) != expected {
				t.Errorf("cell (%d, %d): expected hidden=%v", i, j, expected)
			}
		}
	}
}

func TestErodeDilateFlatCut(t *testing.T) {
	m := gridMesh(t, 4, 4, 4)
	p := NewPlaneFilter()
	p.OnMeshSet(m)
	p.SetPlane(model3d.X(1), 2)

	m.UnmarkAll()
	p.Filter(m)
	expected := m.VisibleCells()

	for strength := 0; strength < 2; strength++ {
		m.UnmarkAll()
		p.Filter(m)
		ErodeDilate(m, strength)
		actual := m.VisibleCells()
		if len(actual) != len(expected) {
			t.Fatalf("strength %d: expected %d visible cells but got %d",
				strength, len(expected), len(actual))
		}
		for i, c := range expected {
			if actual[i] != c {
				t.Fatalf("strength %d: mismatched visible cells", strength)
			}
		}
	}
}

func TestErodeAll(t *testing.T) {
	m := gridMesh(t, 3, 3, 3)
	m.UnmarkAll()
	Erode(m)
	if n := m.NumHidden(); n != 0 {
		t.Errorf("eroding a fully visible mesh hid %d cells", n)
	}

	m.Mark(13)
	Erode(m)
	if n := m.NumHidden(); n != 27 {
		t.Errorf("expected every cell to be hidden but got %d", n)
	}
}
