package hexlab

import (
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestBoxGrid(t *testing.T) {
	min, max := model3d.XYZ(-1, 0, 2), model3d.XYZ(3, 1, 5)
	vertices, indices := BoxGrid(4, 2, 3, min, max)
	if len(vertices) != 5*3*4 || len(indices) != 8*4*2*3 {
		t.Fatalf("unexpected sizes: %d vertices, %d indices", len(vertices), len(indices))
	}
	if vertices[0] != min || vertices[len(vertices)-1] != max {
		t.Errorf("unexpected extremes: %v %v", vertices[0], vertices[len(vertices)-1])
	}
	for i := 0; i < len(indices); i += 8 {
		var corners [8]model3d.Coord3D
		for j, idx := range indices[i : i+8] {
			corners[j] = vertices[idx]
		}
		if v := HexVolume(NewHexCorners(corners)); v <= 0 {
			t.Errorf("cell %d has non-positive volume %f", i/8, v)
		}
	}
}

func TestJitter(t *testing.T) {
	vertices, _ := BoxGrid(2, 2, 2, model3d.Origin, model3d.XYZ(1, 1, 1))
	before := append([]model3d.Coord3D{}, vertices...)

	Jitter(vertices, 0.1, rand.New(rand.NewSource(1)))
	for i, v := range vertices {
		diff := v.Sub(before[i])
		if diff.Abs().MaxCoord() > 0.1 {
			t.Errorf("vertex %d moved by %v", i, diff)
		}
	}

	again := append([]model3d.Coord3D{}, before...)
	Jitter(again, 0.1, rand.New(rand.NewSource(1)))
	for i, v := range again {
		if v != vertices[i] {
			t.Fatalf("vertex %d is not deterministic", i)
		}
	}
}
