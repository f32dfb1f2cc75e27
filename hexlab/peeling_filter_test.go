package hexlab

import "testing"

func TestCellDepths(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5} {
		m := gridMesh(t, n, n, n)
		depth, maxDepth := CellDepths(m)
		if expected := (n - 1) / 2; maxDepth != expected {
			t.Errorf("grid %d: expected max depth %d but got %d", n, expected, maxDepth)
		}
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					expected := minOfInts(i, j, k, n-1-i, n-1-j, n-1-k)
					if d := depth[i+n*(j+n*k)]; d != expected {
						t.Fatalf("grid %d: cell (%d, %d, %d) has depth %d but expected %d",
							n, i, j, k, d, expected)
					}
				}
			}
		}
	}
}

func TestPeelingFilter(t *testing.T) {
	m := gridMesh(t, 3, 3, 3)
	p := NewPeelingFilter()
	p.OnMeshSet(m)
	if p.MaxDepth() != 1 || p.Depth(13) != 1 || p.Depth(0) != 0 {
		t.Fatalf("unexpected depths: max=%d center=%d corner=%d", p.MaxDepth(), p.Depth(13), p.Depth(0))
	}

	m.UnmarkAll()
	p.Filter(m)
	if n := m.NumHidden(); n != 0 {
		t.Errorf("expected no hidden cells but got %d", n)
	}

	p.SetDepthThreshold(5)
	if p.DepthThreshold() != 1 {
		t.Errorf("threshold should be clamped but got %d", p.DepthThreshold())
	}
	m.UnmarkAll()
	p.Filter(m)
	if n := m.NumHidden(); n != 26 || m.IsMarked(13) {
		t.Errorf("expected only the center to remain but %d cells are hidden", n)
	}

	p.SetDepthThreshold(-1)
	if p.DepthThreshold() != 0 {
		t.Errorf("threshold should be clamped but got %d", p.DepthThreshold())
	}
}

func minOfInts(values ...int) int {
	res := values[0]
	for _, x := range values[1:] {
		if x < res {
			res = x
		}
	}
	return res
}

func TestPeelingFilterOtherMesh(t *testing.T) {
	m := gridMesh(t, 3, 3, 3)
	other := gridMesh(t, 3, 3, 3)
	p := NewPeelingFilter()
	p.OnMeshSet(m)
	p.SetDepthThreshold(1)

	other.UnmarkAll()
	p.Filter(other)
	if n := other.NumHidden(); n != 0 {
		t.Errorf("filter should not touch another mesh, but hid %d cells", n)
	}

	m.UnmarkAll()
	p.Filter(m)
	if n := m.NumHidden(); n != 26 {
		t.Errorf("expected 26 hidden cells but got %d", n)
	}
}
