package hexlab

import (
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func cornerPosition(corner int) model3d.Coord3D {
	return model3d.XYZ(float64(corner&1), float64((corner>>1)&1), float64((corner>>2)&1))
}

func TestSideCornersOutward(t *testing.T) {
	expected := [6]model3d.Coord3D{
		model3d.X(-1), model3d.X(1),
		model3d.Y(-1), model3d.Y(1),
		model3d.Z(-1), model3d.Z(1),
	}
	for side, loop := range sideCorners {
		var normal model3d.Coord3D
		for i := 0; i < 4; i++ {
			cur := cornerPosition(loop[i])
			prev := cornerPosition(loop[(i+3)%4]).Sub(cur)
			next := cornerPosition(loop[(i+1)%4]).Sub(cur)
			normal = normal.Add(prev.Cross(next))
		}
		normal = normal.Normalize()
		if normal.Dist(expected[side]) > 1e-8 {
			t.Errorf("side %d: expected normal %v but got %v", side, expected[side], normal)
		}
	}
}

func TestPivotSide(t *testing.T) {
	for side, loop := range sideCorners {
		for edge := 0; edge < 4; edge++ {
			a, b := loop[edge], loop[(edge+1)%4]
			other := pivotSide[side][edge]
			if other == side {
				t.Fatalf("side %d edge %d pivots onto itself", side, edge)
			}
			otherLoop := FourIndices(sideCorners[other])
			if loopEdge(otherLoop, b, a) == None {
				t.Errorf("side %d edge %d: side %d does not contain edge %d->%d",
					side, edge, other, b, a)
			}
		}
	}
}

func TestCellEdges(t *testing.T) {
	for i, e := range cellEdges {
		diff := cornerPosition(e[0]).Sub(cornerPosition(e[1]))
		if diff.Norm() != 1 {
			t.Errorf("edge %d is not an edge of the unit cube: %v", i, e)
		}
	}
}
