package hexlab

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
)

// Quality metrics of a hexahedron, following the Verdict definitions.
//
// Every metric takes the corners in counter-clockwise order, with corner 2
// diagonally opposite to corner 0 on the bottom quad and corners 4-7
// directly above corners 0-3:
//
//	  P7------P6
//	 /|      /|
//	P4------P5|
//	| P3----|-P2
//	|/      |/
//	P0------P1

// Unbounded is returned by metrics whose value would be infinite. It matches
// the largest single-precision float so that sums over a mesh stay finite.
const Unbounded = math.MaxFloat32

const (
	sqrt3       = 1.732050807568877
	tinyFloat   = 1.1754943508222875e-38 // smallest normal float32
	sjInvertTol = 1.01
)

// HexCorners are the corners of a hexahedron in metric order.
type HexCorners [8]model3d.Coord3D

// NewHexCorners converts the corners of a Cell to metric order.
func NewHexCorners(cellCorners [8]model3d.Coord3D) *HexCorners {
	var res HexCorners
	for i, j := range verdictOrder {
		res[i] = cellCorners[j]
	}
	return &res
}

// edges computes L0 through L11.
func (h *HexCorners) edges() [12]model3d.Coord3D {
	return [12]model3d.Coord3D{
		h[1].Sub(h[0]),
		h[2].Sub(h[1]),
		h[3].Sub(h[2]),
		h[3].Sub(h[0]),
		h[4].Sub(h[0]),
		h[5].Sub(h[1]),
		h[6].Sub(h[2]),
		h[7].Sub(h[3]),
		h[5].Sub(h[4]),
		h[6].Sub(h[5]),
		h[7].Sub(h[6]),
		h[7].Sub(h[4]),
	}
}

// axes computes the principal axes X1, X2, X3, each the sum of four
// parallel edges.
func (h *HexCorners) axes() [3]model3d.Coord3D {
	return [3]model3d.Coord3D{
		h[1].Sub(h[0]).Add(h[2].Sub(h[3])).Add(h[5].Sub(h[4])).Add(h[6].Sub(h[7])),
		h[3].Sub(h[0]).Add(h[2].Sub(h[1])).Add(h[7].Sub(h[4])).Add(h[6].Sub(h[5])),
		h[4].Sub(h[0]).Add(h[5].Sub(h[1])).Add(h[6].Sub(h[2])).Add(h[7].Sub(h[3])),
	}
}

// diagonals computes the lengths of the four space diagonals.
func (h *HexCorners) diagonals() [4]float64 {
	return [4]float64{
		h[6].Dist(h[0]),
		h[7].Dist(h[1]),
		h[4].Dist(h[2]),
		h[5].Dist(h[3]),
	}
}

// cornerFrames gets the three edge vectors leaving each corner, ordered so
// that their triple product is positive for a valid cell.
func cornerFrames(l *[12]model3d.Coord3D) [8][3]model3d.Coord3D {
	neg := func(c model3d.Coord3D) model3d.Coord3D {
		return c.Scale(-1)
	}
	return [8][3]model3d.Coord3D{
		{l[0], l[3], l[4]},
		{l[1], neg(l[0]), l[5]},
		{l[2], neg(l[1]), l[6]},
		{neg(l[3]), neg(l[2]), l[7]},
		{l[11], l[8], neg(l[4])},
		{neg(l[8]), l[9], neg(l[5])},
		{neg(l[9]), l[10], neg(l[6])},
		{neg(l[10]), neg(l[11]), neg(l[7])},
	}
}

func triple(a, b, c model3d.Coord3D) float64 {
	return a.Dot(b.Cross(c))
}

// alphas computes the eight corner Jacobians plus the center Jacobian
// X1 . (X2 x X3) scaled by centerScale.
func alphas(l *[12]model3d.Coord3D, x *[3]model3d.Coord3D, centerScale float64) [9]float64 {
	var res [9]float64
	for i, f := range cornerFrames(l) {
		res[i] = triple(f[0], f[1], f[2])
	}
	res[8] = triple(x[0], x[1], x[2]) * centerScale
	return res
}

func minOf(values ...float64) float64 {
	res := values[0]
	for _, v := range values[1:] {
		res = math.Min(res, v)
	}
	return res
}

func maxOf(values ...float64) float64 {
	res := values[0]
	for _, v := range values[1:] {
		res = math.Max(res, v)
	}
	return res
}

// clampUnbounded keeps infinite values within [-Unbounded, Unbounded].
func clampUnbounded(x float64) float64 {
	if x > Unbounded {
		return Unbounded
	} else if x < -Unbounded {
		return -Unbounded
	}
	return x
}

// HexVolume computes X1 . (X2 x X3) / 64.
func HexVolume(h *HexCorners) float64 {
	x := h.axes()
	return triple(x[0], x[1], x[2]) / 64
}

// HexJacobian is the minimum of the corner and center Jacobians.
func HexJacobian(h *HexCorners) float64 {
	l := h.edges()
	x := h.axes()
	a := alphas(&l, &x, 1.0/64)
	return minOf(a[:]...)
}

// HexScaledJacobian is the minimum Jacobian after scaling every edge and
// axis to unit length. Values above 1.01 can only come from inverted cells
// and are reported as -1.
func HexScaledJacobian(h *HexCorners) float64 {
	l := h.edges()
	x := h.axes()
	for i, c := range l {
		l[i] = safeNormalize(c)
	}
	for i, c := range x {
		x[i] = safeNormalize(c)
	}
	a := alphas(&l, &x, 1)
	msj := minOf(a[:]...)
	if msj > sjInvertTol {
		return -1
	}
	return msj
}

// HexDiagonalRatio is the longest space diagonal over the shortest one.
func HexDiagonalRatio(h *HexCorners) float64 {
	d := h.diagonals()
	return clampUnbounded(maxOf(d[:]...) / minOf(d[:]...))
}

// HexDimension is not supported and always returns -1.
func HexDimension(h *HexCorners) float64 {
	return -1
}

// HexDistortion is the minimum corner Jacobian relative to the volume,
// which is 1 for any parallelepiped.
func HexDistortion(h *HexCorners) float64 {
	l := h.edges()
	x := h.axes()
	a := alphas(&l, &x, 1)
	volume := HexVolume(h)
	if math.Abs(volume) < tinyFloat {
		return 0
	}
	return clampUnbounded(minOf(a[:8]...) / volume)
}

// HexEdgeRatio is the longest edge over the shortest edge.
func HexEdgeRatio(h *HexCorners) float64 {
	var lengths [12]float64
	for i, e := range h.edges() {
		lengths[i] = e.Norm()
	}
	return clampUnbounded(maxOf(lengths[:]...) / minOf(lengths[:]...))
}

// HexMaximumEdgeRatio is the largest ratio between the lengths of two
// principal axes.
func HexMaximumEdgeRatio(h *HexCorners) float64 {
	x := h.axes()
	n := [3]float64{x[0].Norm(), x[1].Norm(), x[2].Norm()}
	if n[0] < tinyFloat || n[1] < tinyFloat || n[2] < tinyFloat {
		return Unbounded
	}
	return maxOf(
		math.Max(n[0]/n[1], n[1]/n[0]),
		math.Max(n[0]/n[2], n[2]/n[0]),
		math.Max(n[1]/n[2], n[2]/n[1]),
	)
}

// aspectFrobenius computes the Frobenius condition number of a corner
// frame, divided by 3 so that a right-angled corner scores 1.
func aspectFrobenius(f [3]model3d.Coord3D) float64 {
	det := triple(f[0], f[1], f[2])
	if det <= tinyFloat {
		return Unbounded
	}
	term1 := f[0].Dot(f[0]) + f[1].Dot(f[1]) + f[2].Dot(f[2])
	c01 := f[0].Cross(f[1])
	c12 := f[1].Cross(f[2])
	c20 := f[2].Cross(f[0])
	term2 := c01.Dot(c01) + c12.Dot(c12) + c20.Dot(c20)
	return clampUnbounded(math.Sqrt(term1*term2) / det / 3)
}

// HexMaximumAspectFrobenius is the worst corner aspect Frobenius.
func HexMaximumAspectFrobenius(h *HexCorners) float64 {
	l := h.edges()
	var res float64
	for _, f := range cornerFrames(&l) {
		res = math.Max(res, aspectFrobenius(f))
	}
	return res
}

// HexMeanAspectFrobenius is the average corner aspect Frobenius.
func HexMeanAspectFrobenius(h *HexCorners) float64 {
	l := h.edges()
	var sum float64
	for _, f := range cornerFrames(&l) {
		a := aspectFrobenius(f)
		if a == Unbounded {
			return Unbounded
		}
		sum += a
	}
	return sum / 8
}

func oddyFrame(f [3]model3d.Coord3D) float64 {
	g11 := f[0].Dot(f[0])
	g12 := f[0].Dot(f[1])
	g13 := f[0].Dot(f[2])
	g22 := f[1].Dot(f[1])
	g23 := f[1].Dot(f[2])
	g33 := f[2].Dot(f[2])
	rtG := triple(f[0], f[1], f[2])
	if rtG <= tinyFloat {
		return Unbounded
	}
	normG := g11*g11 + 2*g12*g12 + 2*g13*g13 + g22*g22 + 2*g23*g23 + g33*g33
	normJ := g11 + g22 + g33
	return clampUnbounded((normG - normJ*normJ/3) / math.Pow(rtG, 4.0/3))
}

// HexOddy is the largest deviation of a corner or center metric tensor from
// a multiple of the identity.
func HexOddy(h *HexCorners) float64 {
	l := h.edges()
	x := h.axes()
	res := oddyFrame(x)
	for _, f := range cornerFrames(&l) {
		res = math.Max(res, oddyFrame(f))
	}
	return res
}

// HexRelativeSizeSquared compares the cell volume to avgVolume.
func HexRelativeSizeSquared(h *HexCorners, avgVolume float64) float64 {
	x := h.axes()
	d := triple(x[0], x[1], x[2]) / (64 * avgVolume)
	if avgVolume < tinyFloat || d <= tinyFloat {
		return 0
	}
	r := math.Min(d, 1/d)
	return r * r
}

// HexShape measures how close every corner is to a right angle with equal
// edges.
func HexShape(h *HexCorners) float64 {
	l := h.edges()
	x := h.axes()
	a := alphas(&l, &x, 1)

	var sq [9]float64
	for i, f := range cornerFrames(&l) {
		sq[i] = f[0].Dot(f[0]) + f[1].Dot(f[1]) + f[2].Dot(f[2])
	}
	sq[8] = x[0].Dot(x[0]) + x[1].Dot(x[1]) + x[2].Dot(x[2])

	res := math.Inf(1)
	for i := range a {
		if a[i] <= tinyFloat || sq[i] <= tinyFloat {
			return 0
		}
		res = math.Min(res, math.Pow(a[i], 2.0/3)/sq[i])
	}
	return 3 * res
}

// HexShapeAndSize is HexShape times HexRelativeSizeSquared.
func HexShapeAndSize(h *HexCorners, avgVolume float64) float64 {
	return HexRelativeSizeSquared(h, avgVolume) * HexShape(h)
}

// HexShear is the scaled Jacobian, with negative values raised to 0.
func HexShear(h *HexCorners) float64 {
	return math.Max(HexScaledJacobian(h), 0)
}

// HexShearAndSize is HexShear times HexRelativeSizeSquared.
func HexShearAndSize(h *HexCorners, avgVolume float64) float64 {
	return HexRelativeSizeSquared(h, avgVolume) * HexShear(h)
}

// HexSkew is the largest absolute cosine between two principal axes.
func HexSkew(h *HexCorners) float64 {
	x := h.axes()
	for i, c := range x {
		if c.Norm() <= tinyFloat {
			return Unbounded
		}
		x[i] = c.Normalize()
	}
	return maxOf(
		math.Abs(x[0].Dot(x[1])),
		math.Abs(x[0].Dot(x[2])),
		math.Abs(x[1].Dot(x[2])),
	)
}

// HexStretch is sqrt(3) times the shortest edge over the longest diagonal.
func HexStretch(h *HexCorners) float64 {
	var lengths [12]float64
	for i, e := range h.edges() {
		lengths[i] = e.Norm()
	}
	d := h.diagonals()
	dMax := maxOf(d[:]...)
	if dMax < tinyFloat {
		return 0
	}
	return sqrt3 * minOf(lengths[:]...) / dMax
}

// HexTaper measures how much opposite faces differ in size.
func HexTaper(h *HexCorners) float64 {
	x := h.axes()
	x12 := h[2].Sub(h[3]).Sub(h[1].Sub(h[0])).Add(h[6].Sub(h[7])).Sub(h[5].Sub(h[4]))
	x13 := h[5].Sub(h[1]).Sub(h[4].Sub(h[0])).Add(h[6].Sub(h[2])).Sub(h[7].Sub(h[3]))
	x23 := h[7].Sub(h[4]).Sub(h[3].Sub(h[0])).Add(h[6].Sub(h[5])).Sub(h[2].Sub(h[1]))

	n := [3]float64{x[0].Norm(), x[1].Norm(), x[2].Norm()}
	for _, v := range n {
		if v < tinyFloat {
			return Unbounded
		}
	}
	return maxOf(
		x12.Norm()/math.Min(n[0], n[1]),
		x13.Norm()/math.Min(n[0], n[2]),
		x23.Norm()/math.Min(n[1], n[2]),
	)
}
