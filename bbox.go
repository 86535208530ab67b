package boxtree

import "math"

// BBox is an axis-aligned bounding box in d dimensions, stored as a flat
// vector of length 2·d: the first d entries are the per-axis minima, the
// remaining d entries the per-axis maxima.
//
// A valid box satisfies min[i] <= max[i] for every axis; degenerate boxes
// with zero extent on some axis are legal. The empty box has all minima at
// +Inf and all maxima at -Inf, so that extending it absorbs any box and it
// never falsely intersects anything.
type BBox []float64

// EmptyBox returns a fresh empty box for the given dimension. Every call
// allocates; boxes are never shared between callers.
func EmptyBox(dim int) BBox {
	b := make(BBox, 2*dim)
	for i := 0; i < dim; i++ {
		b[i] = math.Inf(+1)
		b[dim+i] = math.Inf(-1)
	}
	return b
}

// NewBBox assembles a box from per-axis minima and maxima, which must be of
// equal length.
func NewBBox(min, max []float64) BBox {
	assert(len(min) == len(max), "bounding box needs equally many minima and maxima")
	b := make(BBox, 0, 2*len(min))
	b = append(b, min...)
	b = append(b, max...)
	return b
}

// Dim returns the dimension of the box.
func (b BBox) Dim() int {
	return len(b) / 2
}

// Min returns the lower bound of the box on the given axis.
func (b BBox) Min(axis int) float64 {
	return b[axis]
}

// Max returns the upper bound of the box on the given axis.
func (b BBox) Max(axis int) float64 {
	return b[len(b)/2+axis]
}

// Clone returns an independent copy of the box.
func (b BBox) Clone() BBox {
	return append(BBox(nil), b...)
}

// Extend grows b in place to the union of b and o.
func (b BBox) Extend(o BBox) {
	d := len(b) / 2
	for i := 0; i < d; i++ {
		if o[i] < b[i] {
			b[i] = o[i]
		}
		if o[d+i] > b[d+i] {
			b[d+i] = o[d+i]
		}
	}
}

// Area returns the volume of the box, i.e. the product of its per-axis
// extents.
func (b BBox) Area() float64 {
	d := len(b) / 2
	area := b[d] - b[0]
	for i := 1; i < d; i++ {
		area *= b[d+i] - b[i]
	}
	return area
}

// Margin returns the sum of the per-axis extents of the box, a cheap
// perimeter-like proxy used to rank split axes without computing volume.
func (b BBox) Margin() float64 {
	d := len(b) / 2
	margin := b[d] - b[0]
	for i := 1; i < d; i++ {
		margin += b[d+i] - b[i]
	}
	return margin
}

// enlargedArea returns the area of the union of b and o, without building
// the union box.
func (b BBox) enlargedArea(o BBox) float64 {
	d := len(b) / 2
	area := 1.0
	for i := 0; i < d; i++ {
		min, max := b[i], b[d+i]
		if o[i] < min {
			min = o[i]
		}
		if o[d+i] > max {
			max = o[d+i]
		}
		area *= max - min
	}
	return area
}

// intersectionArea returns the area of the overlap of b and o, clamped at
// zero. It short-circuits as soon as one axis has no overlap.
func (b BBox) intersectionArea(o BBox) float64 {
	d := len(b) / 2
	area := 1.0
	for i := 0; i < d; i++ {
		min, max := b[i], b[d+i]
		if o[i] > min {
			min = o[i]
		}
		if o[d+i] < max {
			max = o[d+i]
		}
		if max <= min {
			return 0
		}
		area *= max - min
	}
	return area
}

// Contains reports whether o lies entirely within b on every axis.
func (b BBox) Contains(o BBox) bool {
	d := len(b) / 2
	for i := 0; i < d; i++ {
		if b[i] > o[i] || o[d+i] > b[d+i] {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o overlap, i.e. no axis is fully
// disjoint. Touching edges count as overlap.
func (b BBox) Intersects(o BBox) bool {
	d := len(b) / 2
	for i := 0; i < d; i++ {
		if o[i] > b[d+i] || o[d+i] < b[i] {
			return false
		}
	}
	return true
}
