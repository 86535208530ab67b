/*
Package boxtree implements a balanced, bulk-loadable spatial index over
axis-aligned bounding boxes in a fixed number of dimensions.

Boxtree

Boxtree is the in-memory analogue of a B-tree, specialized for
multi-dimensional range data. Items are opaque client values; a geometry
accessor, chosen once at construction time, derives a bounding box per
item. The tree answers "what overlaps this region" queries over large,
dynamic point or rectangle sets, as needed by maps, games, collision
systems and geospatial tools.

The index is an R-tree with an overlap-minimizing node split and a
sort-tile-recursive (OMT) bulk loader, which keeps the tree
height-balanced with guaranteed logarithmic depth:

	Operation     |   Cost
	--------------+------------------
	Insert        |   O(log n)
	Remove        |   O(log n)
	Search        |   O(log n + k)
	Load (bulk)   |   O(n) average

Trees are single-writer structures. No locking is done internally;
concurrent readers and writers must be serialized by the client.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.

*/
package boxtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the accessor for generic code, where the name T denotes the
// type parameter.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// BoxError is an error type for the boxtree module.
type BoxError string

func (e BoxError) Error() string {
	return string(e)
}

// ErrNoGeometry is flagged when a tree is constructed without a geometry
// accessor. This is the only hard failure of the package; runtime misuse of
// a correctly constructed tree results in defensive no-ops.
const ErrNoGeometry = BoxError("geometry accessor must not be nil")

// ErrInvalidStructure is wrapped by the structural checker whenever a tree
// violates one of its invariants.
const ErrInvalidStructure = BoxError("tree structure violates invariants")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
