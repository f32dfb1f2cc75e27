package hexlab

import (
	"testing"

	"github.com/pkg/errors"
)

func TestParseQualityOperator(t *testing.T) {
	for _, op := range []QualityOperator{Inside, Outside} {
		parsed, err := ParseQualityOperator(op.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != op {
			t.Errorf("expected %s but got %s", op, parsed)
		}
	}
	if op, err := ParseQualityOperator("OUTSIDE"); err != nil || op != Outside {
		t.Errorf("unexpected result: %v %v", op, err)
	}
	if _, err := ParseQualityOperator("between"); !errors.Is(err, ErrUnknownOperator) {
		t.Errorf("expected ErrUnknownOperator but got %v", err)
	}
}

func TestQualityFilter(t *testing.T) {
	m := gridMesh(t, 5, 1, 1)
	copy(m.NormalizedQuality, []float64{0, 0.25, 0.5, 0.75, 1})

	q := NewQualityFilter()
	q.OnMeshSet(m)
	m.UnmarkAll()
	q.Filter(m)
	if n := m.NumHidden(); n != 0 {
		t.Errorf("default range hid %d cells", n)
	}

	q.SetRange(0.8, 0.2)
	if min, max := q.Range(); min != 0.2 || max != 0.8 {
		t.Errorf("unexpected range [%f, %f]", min, max)
	}

	m.UnmarkAll()
	q.Filter(m)
	expectHidden(t, m, []bool{true, false, false, false, true})

	q.Operator = Outside
	m.UnmarkAll()
	q.Filter(m)
	expectHidden(t, m, []bool{false, true, true, true, false})

	q.SetRange(-1, 2)
	if min, max := q.Range(); min != 0 || max != 1 {
		t.Errorf("range should be clamped but got [%f, %f]", min, max)
	}
}

func expectHidden(t *testing.T, m *Mesh, hidden []bool) {
	t.Helper()
	for i, expected := range hidden {
		if m.IsMarked(i) != expected {
			t.Errorf("cell %d: expected hidden=%v", i, expected)
		}
	}
}
