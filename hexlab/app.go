package hexlab

import (
	"time"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"go.uber.org/zap"
)

var ErrNoMesh = errors.New("no mesh has been imported")

// An App owns a mesh and runs the filter pipeline over it.
//
// Each pass unmarks every cell, applies the plane and peeling filters,
// regularizes the result, and finally applies the quality and pick filters.
type App struct {
	Logger *zap.Logger

	// Concurrency is passed to EvaluateQuality.
	Concurrency int

	Plane   *PlaneFilter
	Peeling *PeelingFilter
	Quality *QualityFilter
	Pick    *PickFilter

	mesh         *Mesh
	meshStats    MeshStats
	measure      Measure
	qualityStats QualityStats
	erodeDilate  int
}

// NewApp creates an App with default filters and the scaled Jacobian
// quality measure.
func NewApp() *App {
	return &App{
		Logger:  zap.NewNop(),
		Plane:   NewPlaneFilter(),
		Peeling: NewPeelingFilter(),
		Quality: NewQualityFilter(),
		Pick:    NewPickFilter(),
		measure: ScaledJacobian,

		qualityStats: QualityStats{Measure: ScaledJacobian},
	}
}

// ImportMesh builds a mesh and replaces the current one with it.
//
// On error, the current mesh is left untouched.
func (a *App) ImportMesh(vertices []model3d.Coord3D, indices []int) error {
	start := time.Now()
	m, err := Build(vertices, indices)
	if err != nil {
		return errors.Wrap(err, "import mesh")
	}
	a.logger().Info("built mesh",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("cells", len(m.Cells)),
		zap.Int("faces", len(m.Faces)),
		zap.Duration("elapsed", time.Since(start)))

	a.mesh = m
	a.meshStats = ComputeStats(m)
	a.evaluateQuality()
	for _, f := range a.filters() {
		f.OnMeshSet(m)
	}
	a.Update()
	return nil
}

// Mesh gets the current mesh, or nil.
func (a *App) Mesh() *Mesh {
	return a.mesh
}

// MeshStats gets statistics of the current mesh.
func (a *App) MeshStats() MeshStats {
	return a.meshStats
}

// QualityMeasure gets the active quality measure.
func (a *App) QualityMeasure() Measure {
	return a.measure
}

// QualityStats gets the statistics of the active quality measure.
func (a *App) QualityStats() QualityStats {
	return a.qualityStats
}

// SetQualityMeasure re-evaluates quality with a different measure and
// re-runs the pipeline.
func (a *App) SetQualityMeasure(measure Measure) error {
	if !measure.valid() {
		return errors.Wrapf(ErrUnknownMeasure, "set quality measure %d", int(measure))
	}
	if !measure.Implemented() {
		return errors.Wrapf(ErrNotImplemented, "set quality measure %s", measure)
	}
	a.measure = measure
	if a.mesh == nil {
		a.qualityStats = QualityStats{Measure: measure}
		return nil
	}
	a.evaluateQuality()
	a.Update()
	return nil
}

// ErodeDilateLevel gets the regularization strength.
func (a *App) ErodeDilateLevel() int {
	return a.erodeDilate
}

// SetErodeDilateLevel sets the regularization strength, where negative
// values are treated as 0.
func (a *App) SetErodeDilateLevel(level int) {
	if level < 0 {
		level = 0
	}
	a.erodeDilate = level
}

// QualityRangeNative converts the quality filter range to the native units
// of the active measure. Without a mesh, there are no native units and the
// result is 0, 0.
func (a *App) QualityRangeNative() (min, max float64) {
	if a.mesh == nil {
		return 0, 0
	}
	min, max = a.Quality.Range()
	return a.qualityStats.Denormalize(min), a.qualityStats.Denormalize(max)
}

// Update runs the filter pipeline over the current mesh.
func (a *App) Update() {
	m := a.mesh
	if m == nil {
		return
	}
	m.UnmarkAll()
	a.Plane.Filter(m)
	a.Peeling.Filter(m)
	ErodeDilate(m, a.erodeDilate)
	a.Quality.Filter(m)
	a.Pick.Filter(m)
	a.logger().Debug("filtered mesh",
		zap.Int("hidden", m.NumHidden()),
		zap.Int("cells", len(m.Cells)))
}

// Dig hides the first visible cell along a ray and re-runs the pipeline.
func (a *App) Dig(r *model3d.Ray) (int, error) {
	return a.pick("dig", a.Pick.Dig, r)
}

// Undig shows the hidden cell in front of the visible surface along a ray
// and re-runs the pipeline.
func (a *App) Undig(r *model3d.Ray) (int, error) {
	return a.pick("undig", a.Pick.Undig, r)
}

// Isolate shows only the first visible cell along a ray.
func (a *App) Isolate(r *model3d.Ray) (int, error) {
	return a.pick("isolate", a.Pick.Isolate, r)
}

// Settings gets a snapshot of the current parameters.
func (a *App) Settings() Settings {
	normal := a.Plane.Normal()
	qMin, qMax := a.Quality.Range()
	return Settings{
		QualityMeasure:   a.measure.String(),
		ErodeDilateLevel: a.erodeDilate,
		Plane: PlaneSettings{
			Enabled: a.Plane.Enabled,
			Normal:  []float64{normal.X, normal.Y, normal.Z},
			Offset:  a.Plane.Slider(),
		},
		Peeling: PeelingSettings{
			Enabled: a.Peeling.Enabled,
			Depth:   a.Peeling.DepthThreshold(),
		},
		Quality: QualitySettings{
			Enabled:  a.Quality.Enabled,
			Min:      qMin,
			Max:      qMax,
			Operator: a.Quality.Operator.String(),
		},
		Pick: PickSettings{
			Enabled:  a.Pick.Enabled,
			Filtered: a.Pick.Filtered(),
			Filled:   a.Pick.Filled(),
		},
	}
}

// ApplySettings validates and applies parameters, then re-runs the
// pipeline. Out of range values are clamped.
//
// If s is invalid, no parameter is changed.
func (a *App) ApplySettings(s Settings) error {
	parsed, err := s.parse()
	if err != nil {
		return errors.Wrap(err, "apply settings")
	}

	if parsed.measure != a.measure {
		a.measure = parsed.measure
		if a.mesh != nil {
			a.evaluateQuality()
		} else {
			a.qualityStats = QualityStats{Measure: parsed.measure}
		}
	}
	a.SetErodeDilateLevel(s.ErodeDilateLevel)

	a.Plane.Enabled = s.Plane.Enabled
	a.Plane.SetPlaneNormal(parsed.normal)
	a.Plane.SetPlaneOffset(s.Plane.Offset)

	a.Peeling.Enabled = s.Peeling.Enabled
	a.Peeling.SetDepthThreshold(s.Peeling.Depth)

	a.Quality.Enabled = s.Quality.Enabled
	a.Quality.Operator = parsed.operator
	a.Quality.SetRange(s.Quality.Min, s.Quality.Max)

	a.Pick.Enabled = s.Pick.Enabled
	a.Pick.Clear()
	for _, c := range s.Pick.Filtered {
		a.Pick.FilterCell(c)
	}
	for _, c := range s.Pick.Filled {
		a.Pick.FillCell(c)
	}

	a.Update()
	return nil
}

func (a *App) pick(name string, f func(*Mesh, *model3d.Ray) (int, error), r *model3d.Ray) (int, error) {
	if a.mesh == nil {
		return None, errors.Wrap(ErrNoMesh, name)
	}
	cell, err := f(a.mesh, r)
	if err != nil {
		return None, errors.Wrap(err, name)
	}
	a.logger().Debug("picked cell", zap.String("op", name), zap.Int("cell", cell))
	if cell != None {
		a.Update()
	}
	return cell, nil
}

func (a *App) evaluateQuality() {
	start := time.Now()
	a.qualityStats = EvaluateQuality(a.mesh, a.measure, a.meshStats.AvgVolume, a.Concurrency)
	a.logger().Info("evaluated quality",
		zap.Stringer("measure", a.measure),
		zap.Float64("min", a.qualityStats.Min),
		zap.Float64("max", a.qualityStats.Max),
		zap.Float64("mean", a.qualityStats.Mean),
		zap.Duration("elapsed", time.Since(start)))
}

func (a *App) filters() []Filter {
	return []Filter{a.Plane, a.Peeling, a.Quality, a.Pick}
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}
