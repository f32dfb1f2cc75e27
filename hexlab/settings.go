package hexlab

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Settings is a serializable snapshot of the parameters of an App.
type Settings struct {
	QualityMeasure   string          `yaml:"quality_measure"`
	ErodeDilateLevel int             `yaml:"erode_dilate_level"`
	Plane            PlaneSettings   `yaml:"plane"`
	Peeling          PeelingSettings `yaml:"peeling"`
	Quality          QualitySettings `yaml:"quality"`
	Pick             PickSettings    `yaml:"pick"`
}

// PlaneSettings configures a PlaneFilter.
type PlaneSettings struct {
	Enabled bool      `yaml:"enabled"`
	Normal  []float64 `yaml:"normal"`

	// Offset is the slider position in [0, 1].
	Offset float64 `yaml:"offset"`
}

// PeelingSettings configures a PeelingFilter.
type PeelingSettings struct {
	Enabled bool `yaml:"enabled"`
	Depth   int  `yaml:"depth"`
}

// QualitySettings configures a QualityFilter.
type QualitySettings struct {
	Enabled  bool    `yaml:"enabled"`
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Operator string  `yaml:"operator"`
}

// PickSettings configures a PickFilter.
type PickSettings struct {
	Enabled  bool  `yaml:"enabled"`
	Filtered []int `yaml:"filtered,omitempty"`
	Filled   []int `yaml:"filled,omitempty"`
}

// DefaultSettings gets the parameters of a freshly loaded mesh.
func DefaultSettings() Settings {
	return Settings{
		QualityMeasure: ScaledJacobian.String(),
		Plane: PlaneSettings{
			Enabled: true,
			Normal:  []float64{1, 0, 0},
		},
		Peeling: PeelingSettings{Enabled: true},
		Quality: QualitySettings{
			Enabled:  true,
			Max:      1,
			Operator: Inside.String(),
		},
		Pick: PickSettings{Enabled: true},
	}
}

type parsedSettings struct {
	measure  Measure
	operator QualityOperator
	normal   model3d.Coord3D
}

func (s *Settings) parse() (*parsedSettings, error) {
	measure, err := ParseMeasure(s.QualityMeasure)
	if err != nil {
		return nil, errors.Wrap(err, "parse settings")
	}
	if !measure.Implemented() {
		return nil, errors.Wrapf(ErrNotImplemented, "parse settings: %s", measure)
	}
	operator, err := ParseQualityOperator(s.Quality.Operator)
	if err != nil {
		return nil, errors.Wrap(err, "parse settings")
	}
	if len(s.Plane.Normal) != 3 {
		return nil, errors.Errorf("parse settings: plane normal has %d components", len(s.Plane.Normal))
	}
	return &parsedSettings{
		measure:  measure,
		operator: operator,
		normal:   model3d.XYZ(s.Plane.Normal[0], s.Plane.Normal[1], s.Plane.Normal[2]),
	}, nil
}
