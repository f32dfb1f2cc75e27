package hexlab

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap/zaptest"
)

func testApp(t *testing.T, nx, ny, nz int) *App {
	a := NewApp()
	a.Logger = zaptest.NewLogger(t)
	vertices, indices := BoxGrid(nx, ny, nz, model3d.Origin,
		model3d.XYZ(float64(nx), float64(ny), float64(nz)))
	if err := a.ImportMesh(vertices, indices); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAppNoMesh(t *testing.T) {
	a := NewApp()
	if _, err := a.Dig(xRay()); !errors.Is(err, ErrNoMesh) {
		t.Errorf("expected ErrNoMesh but got %v", err)
	}
	a.Update()
	if err := a.SetQualityMeasure(Volume); err != nil {
		t.Fatal(err)
	}
}

func TestAppImportMesh(t *testing.T) {
	a := testApp(t, 4, 4, 4)
	if a.MeshStats().NumCells != 64 {
		t.Errorf("unexpected stats: %+v", a.MeshStats())
	}
	if a.QualityMeasure() != ScaledJacobian {
		t.Errorf("unexpected measure %s", a.QualityMeasure())
	}
	if s := a.QualityStats(); s.Min != 1 || s.Max != 1 {
		t.Errorf("unexpected quality stats %+v", s)
	}
	if n := a.Mesh().NumHidden(); n != 0 {
		t.Errorf("expected no hidden cells but got %d", n)
	}

	old := a.Mesh()
	if err := a.ImportMesh(make([]model3d.Coord3D, 4), []int{0, 1, 2, 3, 4, 5, 6, 7}); err == nil {
		t.Fatal("expected an error")
	}
	if a.Mesh() != old {
		t.Error("failed import should keep the current mesh")
	}
}

func TestAppQualityMeasure(t *testing.T) {
	a := testApp(t, 2, 2, 2)
	if err := a.SetQualityMeasure(Dimension); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented but got %v", err)
	}
	if err := a.SetQualityMeasure(Measure(100)); !errors.Is(err, ErrUnknownMeasure) {
		t.Errorf("expected ErrUnknownMeasure but got %v", err)
	}
	if a.QualityMeasure() != ScaledJacobian {
		t.Errorf("measure should be unchanged but got %s", a.QualityMeasure())
	}

	a.Quality.SetRange(0.25, 0.75)
	if err := a.SetQualityMeasure(Volume); err != nil {
		t.Fatal(err)
	}
	if s := a.QualityStats(); s.Measure != Volume || s.Min != 1 {
		t.Errorf("unexpected quality stats %+v", s)
	}
	if min, max := a.Quality.Range(); min != 0.25 || max != 0.75 {
		t.Errorf("range should be kept but got [%f, %f]", min, max)
	}
}

func TestAppQualityRangeNative(t *testing.T) {
	a := NewApp()
	vertices, indices := BoxGrid(3, 3, 3, model3d.Origin, model3d.XYZ(3, 3, 3))
	Jitter(vertices, 0.2, rand.New(rand.NewSource(5)))
	if err := a.ImportMesh(vertices, indices); err != nil {
		t.Fatal(err)
	}
	min, max := a.QualityRangeNative()
	if min != -1 || math.Abs(max-a.QualityStats().Max) > 1e-12 {
		t.Errorf("unexpected native range [%f, %f]", min, max)
	}
}

func TestAppPipeline(t *testing.T) {
	a := testApp(t, 3, 1, 1)

	s := a.Settings()
	s.Plane.Offset = 1
	s.Pick.Filled = []int{2}
	if err := a.ApplySettings(s); err != nil {
		t.Fatal(err)
	}
	expectHidden(t, a.Mesh(), []bool{true, true, false})

	s.Plane.Offset = 0
	s.Pick.Filled = nil
	if err := a.ApplySettings(s); err != nil {
		t.Fatal(err)
	}
	cell, err := a.Dig(xRay())
	if err != nil {
		t.Fatal(err)
	}
	if cell != 0 {
		t.Fatalf("expected to dig cell 0 but got %d", cell)
	}
	expectHidden(t, a.Mesh(), []bool{true, false, false})

	cell, err = a.Isolate(xRay())
	if err != nil {
		t.Fatal(err)
	}
	if cell != 1 {
		t.Fatalf("expected to isolate cell 1 but got %d", cell)
	}
	expectHidden(t, a.Mesh(), []bool{true, false, true})

	a.Pick.Clear()
	a.Update()
	cell, err = a.Undig(xRay())
	if err != nil {
		t.Fatal(err)
	}
	if cell != None {
		t.Errorf("nothing should be undug but got %d", cell)
	}
}

func TestAppSettingsRoundTrip(t *testing.T) {
	s := DefaultSettings()
	s.QualityMeasure = Oddy.String()
	s.ErodeDilateLevel = 1
	s.Plane.Normal = []float64{0, 1, 0}
	s.Plane.Offset = 0.25
	s.Peeling.Depth = 1
	s.Quality.Min = 0.1
	s.Quality.Max = 0.9
	s.Quality.Operator = Outside.String()
	s.Pick.Filtered = []int{3, 5}
	s.Pick.Filled = []int{7}

	a := testApp(t, 4, 4, 4)
	if err := a.ApplySettings(s); err != nil {
		t.Fatal(err)
	}
	actual := a.Settings()
	if !reflect.DeepEqual(actual, s) {
		t.Fatalf("expected %+v but got %+v", s, actual)
	}

	b := testApp(t, 4, 4, 4)
	if err := b.ApplySettings(actual); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Mesh().VisibleCells(), b.Mesh().VisibleCells()) {
		t.Error("equal settings should hide the same cells")
	}
}

func TestAppSettingsInvalid(t *testing.T) {
	a := testApp(t, 2, 2, 2)
	before := a.Settings()

	bad := []func(s *Settings){
		func(s *Settings) { s.QualityMeasure = "Beauty" },
		func(s *Settings) { s.QualityMeasure = Dimension.String() },
		func(s *Settings) { s.Quality.Operator = "between" },
		func(s *Settings) { s.Plane.Normal = []float64{1, 0} },
	}
	for i, f := range bad {
		s := DefaultSettings()
		s.ErodeDilateLevel = 3
		f(&s)
		if err := a.ApplySettings(s); err == nil {
			t.Errorf("case %d: expected an error", i)
		}
		if !reflect.DeepEqual(a.Settings(), before) {
			t.Errorf("case %d: settings should be unchanged", i)
		}
	}
}

func TestAppPipelineOrder(t *testing.T) {
	hidden := func(cells ...int) []bool {
		res := make([]bool, 16)
		for _, c := range cells {
			res[c] = true
		}
		return res
	}

	t.Run("PickAfterRegularizer", func(t *testing.T) {
		a := testApp(t, 4, 4, 1)
		a.SetErodeDilateLevel(1)
		a.Plane.SetPlane(model3d.X(1), 1)
		a.Pick.FillCell(4)
		a.Update()
		expectHidden(t, a.Mesh(), hidden(0, 8, 12))
	})

	t.Run("QualityAfterRegularizer", func(t *testing.T) {
		a := testApp(t, 4, 4, 1)
		a.SetErodeDilateLevel(1)
		a.Plane.SetPlane(model3d.X(1), 1)
		a.Mesh().NormalizedQuality[5] = 0
		a.Quality.SetRange(0.5, 1)
		a.Update()
		expectHidden(t, a.Mesh(), hidden(0, 4, 8, 12, 5))
	})
}

func TestAppNoMeshQuality(t *testing.T) {
	a := NewApp()
	if m := a.QualityStats().Measure; m != ScaledJacobian {
		t.Errorf("expected %s but got %s", ScaledJacobian, m)
	}
	if min, max := a.QualityRangeNative(); min != 0 || max != 0 {
		t.Errorf("expected an empty native range but got [%f, %f]", min, max)
	}
	if err := a.SetQualityMeasure(Volume); err != nil {
		t.Fatal(err)
	}
	if m := a.QualityStats().Measure; m != Volume {
		t.Errorf("expected %s but got %s", Volume, m)
	}
}
