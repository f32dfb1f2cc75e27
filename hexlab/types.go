package hexlab

import "golang.org/x/exp/constraints"

// None is used in place of a cell, face, or vertex index which is absent,
// such as the second owner of a boundary face.
const None = -1

// FourIndices is a loop of vertex indices bounding a quadrilateral.
type FourIndices [4]int

// Reversed returns the loop traversed in the opposite direction, starting at
// the same vertex.
func (f FourIndices) Reversed() FourIndices {
	return FourIndices{f[0], f[3], f[2], f[1]}
}

func clamp[T constraints.Ordered](x, min, max T) T {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}
