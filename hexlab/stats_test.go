package hexlab

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(gridMesh(t, 2, 2, 2))
	if stats.NumVertices != 27 || stats.NumCells != 8 || stats.NumFaces != 36 ||
		stats.NumBoundaryFaces != 24 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.MinEdgeLength != 1 || stats.MaxEdgeLength != 1 || math.Abs(stats.AvgEdgeLength-1) > 1e-12 {
		t.Errorf("unexpected edge lengths: %f %f %f",
			stats.MinEdgeLength, stats.MaxEdgeLength, stats.AvgEdgeLength)
	}
	if math.Abs(stats.AvgVolume-1) > 1e-12 {
		t.Errorf("unexpected average volume: %f", stats.AvgVolume)
	}
	if stats.Bounds.Min() != model3d.Origin || stats.Bounds.Max() != model3d.XYZ(2, 2, 2) {
		t.Errorf("unexpected bounds: %v %v", stats.Bounds.Min(), stats.Bounds.Max())
	}
}

func TestComputeStatsEdges(t *testing.T) {
	vertices, indices := BoxGrid(2, 1, 1, model3d.Origin, model3d.XYZ(4, 1, 0.5))
	m, err := Build(vertices, indices)
	if err != nil {
		t.Fatal(err)
	}
	stats := ComputeStats(m)

	// 8 edges along x, 6 along y and 6 along z.
	if len(m.Vertices) != 12 {
		t.Fatalf("unexpected vertex count: %d", len(m.Vertices))
	}
	if math.Abs(stats.AvgEdgeLength-25.0/20) > 1e-12 {
		t.Errorf("unexpected average edge length: %f", stats.AvgEdgeLength)
	}
	if stats.MinEdgeLength != 0.5 || stats.MaxEdgeLength != 2 {
		t.Errorf("unexpected edge range: %f %f", stats.MinEdgeLength, stats.MaxEdgeLength)
	}
	if math.Abs(stats.AvgVolume-1) > 1e-12 {
		t.Errorf("unexpected average volume: %f", stats.AvgVolume)
	}
}
