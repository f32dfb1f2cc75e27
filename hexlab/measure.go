package hexlab

import (
	"github.com/pkg/errors"
)

var (
	ErrUnknownMeasure = errors.New("unknown quality measure")
	ErrNotImplemented = errors.New("quality measure is not implemented")
)

// A Measure selects one of the hexahedron quality metrics.
type Measure int

const (
	DiagonalRatio Measure = iota
	Dimension
	Distortion
	EdgeRatio
	Jacobian
	MaximumEdgeRatio
	MaximumAspectFrobenius
	MeanAspectFrobenius
	Oddy
	RelativeSizeSquared
	ScaledJacobian
	Shape
	ShapeAndSize
	Shear
	ShearAndSize
	Skew
	Stretch
	Taper
	Volume

	numMeasures
)

// normKind groups measures by how their native range maps to [0, 1].
type normKind int

const (
	// q / max
	normRatioOfMax normKind = iota
	// (q - min) / (max - min)
	normLinear
	// (max - q) / (max - 1), for ranges starting at 1
	normFromOne
	// (max - q) / max, for ranges starting at 0 where 0 is best
	normFromZero
	// already in [0, 1]
	normIdentity
	// (q + 1) / (max + 1), for ranges starting at -1
	normFromMinusOne
)

type measureInfo struct {
	name     string
	norm     normKind
	worst    float64
	eval     func(h *HexCorners) float64
	evalSize func(h *HexCorners, avgVolume float64) float64
}

var measureInfos = [numMeasures]measureInfo{
	DiagonalRatio:          {name: "DiagonalRatio", norm: normFromOne, worst: Unbounded, eval: HexDiagonalRatio},
	Dimension:              {name: "Dimension", norm: normRatioOfMax, worst: 0, eval: HexDimension},
	Distortion:             {name: "Distortion", norm: normLinear, worst: -Unbounded, eval: HexDistortion},
	EdgeRatio:              {name: "EdgeRatio", norm: normFromOne, worst: Unbounded, eval: HexEdgeRatio},
	Jacobian:               {name: "Jacobian", norm: normLinear, worst: -Unbounded, eval: HexJacobian},
	MaximumEdgeRatio:       {name: "MaximumEdgeRatio", norm: normFromOne, worst: Unbounded, eval: HexMaximumEdgeRatio},
	MaximumAspectFrobenius: {name: "MaximumAspectFrobenius", norm: normFromOne, worst: Unbounded, eval: HexMaximumAspectFrobenius},
	MeanAspectFrobenius:    {name: "MeanAspectFrobenius", norm: normFromOne, worst: Unbounded, eval: HexMeanAspectFrobenius},
	Oddy:                   {name: "Oddy", norm: normFromZero, worst: Unbounded, eval: HexOddy},
	RelativeSizeSquared:    {name: "RelativeSizeSquared", norm: normIdentity, worst: 0, evalSize: HexRelativeSizeSquared},
	ScaledJacobian:         {name: "ScaledJacobian", norm: normFromMinusOne, worst: -1, eval: HexScaledJacobian},
	Shape:                  {name: "Shape", norm: normIdentity, worst: 0, eval: HexShape},
	ShapeAndSize:           {name: "ShapeAndSize", norm: normIdentity, worst: 0, evalSize: HexShapeAndSize},
	Shear:                  {name: "Shear", norm: normIdentity, worst: 0, eval: HexShear},
	ShearAndSize:           {name: "ShearAndSize", norm: normIdentity, worst: 0, evalSize: HexShearAndSize},
	Skew:                   {name: "Skew", norm: normFromZero, worst: Unbounded, eval: HexSkew},
	Stretch:                {name: "Stretch", norm: normRatioOfMax, worst: 0, eval: HexStretch},
	Taper:                  {name: "Taper", norm: normFromZero, worst: Unbounded, eval: HexTaper},
	Volume:                 {name: "Volume", norm: normLinear, worst: -Unbounded, eval: HexVolume},
}

// Measures lists every Measure in order.
func Measures() []Measure {
	res := make([]Measure, numMeasures)
	for i := range res {
		res[i] = Measure(i)
	}
	return res
}

// ParseMeasure finds the Measure with the given name.
func ParseMeasure(name string) (Measure, error) {
	for i, info := range measureInfos {
		if info.name == name {
			return Measure(i), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMeasure, "parse measure %q", name)
}

func (m Measure) valid() bool {
	return m >= 0 && m < numMeasures
}

func (m Measure) String() string {
	if !m.valid() {
		return "Unknown"
	}
	return measureInfos[m].name
}

// Implemented is false for measures which only return a placeholder.
func (m Measure) Implemented() bool {
	return m.valid() && m != Dimension
}

// NeedsAverageVolume is true for measures relative to the mean cell volume.
func (m Measure) NeedsAverageVolume() bool {
	return measureInfos[m].evalSize != nil
}

// Evaluate computes the measure for one hexahedron.
//
// NaN results, which arise from fully collapsed cells, are replaced with
// the worst value of the measure.
func (m Measure) Evaluate(h *HexCorners, avgVolume float64) float64 {
	info := &measureInfos[m]
	var q float64
	if info.evalSize != nil {
		q = info.evalSize(h, avgVolume)
	} else {
		q = info.eval(h)
	}
	if q != q {
		return info.worst
	}
	return clampUnbounded(q)
}

// Normalize maps a native value to [0, 1] where 1 is the best quality.
//
// For unbounded ranges, min and max are the extremes observed over a mesh,
// so normalized values are only comparable within that mesh.
func (m Measure) Normalize(q, min, max float64) float64 {
	var num, denom float64
	switch measureInfos[m].norm {
	case normRatioOfMax:
		num, denom = q, max
	case normLinear:
		num, denom = q-min, max-min
	case normFromOne:
		num, denom = max-q, max-1
	case normFromZero:
		num, denom = max-q, max
	case normIdentity:
		return q
	case normFromMinusOne:
		num, denom = q+1, max+1
	}
	if denom == 0 {
		return 1
	}
	return num / denom
}

// Denormalize is the inverse of Normalize.
func (m Measure) Denormalize(x, min, max float64) float64 {
	switch measureInfos[m].norm {
	case normRatioOfMax:
		return x * max
	case normLinear:
		return min + x*(max-min)
	case normFromOne:
		return 1 + (1-x)*(max-1)
	case normFromZero:
		return (1 - x) * max
	case normFromMinusOne:
		return -1 + x*(max+1)
	default:
		return x
	}
}
