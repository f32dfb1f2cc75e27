package hexlab

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownOperator = errors.New("unknown quality filter operator")

// A QualityOperator decides which side of a quality range is kept.
type QualityOperator int

const (
	// Inside keeps cells whose quality is within the range.
	Inside QualityOperator = iota

	// Outside keeps cells whose quality is outside the range.
	Outside
)

func (q QualityOperator) String() string {
	switch q {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "unknown"
	}
}

// ParseQualityOperator converts "inside" or "outside" to an operator.
func ParseQualityOperator(s string) (QualityOperator, error) {
	switch strings.ToLower(s) {
	case "inside":
		return Inside, nil
	case "outside":
		return Outside, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOperator, "parse operator %q", s)
	}
}

// A QualityFilter hides cells based on their normalized quality.
type QualityFilter struct {
	Enabled  bool
	Operator QualityOperator

	min float64
	max float64
}

// NewQualityFilter creates an enabled filter keeping every cell.
func NewQualityFilter() *QualityFilter {
	return &QualityFilter{Enabled: true, max: 1}
}

func (q *QualityFilter) OnMeshSet(m *Mesh) {
	q.Enabled = true
	q.Operator = Inside
	q.min = 0
	q.max = 1
}

func (q *QualityFilter) Filter(m *Mesh) {
	if !q.Enabled {
		return
	}
	for i, x := range m.NormalizedQuality {
		var hide bool
		if q.Operator == Inside {
			hide = x < q.min || x > q.max
		} else {
			hide = x > q.min && x < q.max
		}
		if hide {
			m.Mark(i)
		}
	}
}

// SetRange sets the normalized quality range, clamped to [0, 1].
func (q *QualityFilter) SetRange(min, max float64) {
	min, max = clamp(min, 0, 1), clamp(max, 0, 1)
	if min > max {
		min, max = max, min
	}
	q.min, q.max = min, max
}

// Range gets the normalized quality range.
func (q *QualityFilter) Range() (min, max float64) {
	return q.min, q.max
}
