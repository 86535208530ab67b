package boxtree

import "math"

const (
	// DefaultMaxEntries is the node fanout used when the client does not
	// configure one.
	DefaultMaxEntries = 9
	// DefaultDimension is the box dimension used when the client does not
	// configure one.
	DefaultDimension = 2
)

// Geometry derives spatial information from client items. An
// implementation is chosen once at construction time and invoked through
// direct calls on the hot paths; it must be cheap and side-effect free.
type Geometry[T any] interface {
	// BBox returns the bounding box of an item. The returned box must have
	// the tree's dimension.
	BBox(item T) BBox
	// CompareMin orders two items by their lower bound on the given axis,
	// returning a negative, zero or positive number.
	CompareMin(axis int, a, b T) float64
}

// Config configures a boxtree.
type Config[T comparable] struct {
	// MaxEntries is the maximum node fanout; values below 4 are clamped,
	// zero selects DefaultMaxEntries. The minimum fill is derived as
	// max(2, ceil(0.4·MaxEntries)) and cannot be configured directly.
	MaxEntries int
	// Dimension is the number of axes; values below 2 are clamped, zero
	// selects DefaultDimension.
	Dimension int
	// Geometry derives bounding boxes from items. Required.
	Geometry Geometry[T]
}

func (cfg Config[T]) validate() error {
	if cfg.Geometry == nil {
		return ErrNoGeometry
	}
	return nil
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.MaxEntries < 4 {
		cfg.MaxEntries = 4
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = DefaultDimension
	}
	if cfg.Dimension < 2 {
		cfg.Dimension = 2
	}
	return cfg
}

// minFill derives the lower occupancy bound from the (normalized) fanout.
func (cfg Config[T]) minFill() int {
	return int(math.Max(2, math.Ceil(float64(cfg.MaxEntries)*0.4)))
}
