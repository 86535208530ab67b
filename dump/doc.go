/*
Package dump renders the internal structure of a boxtree to a console.

The output is a per-level indented listing of nodes and items, with node
boxes colored by tree level. It is a debugging aid, not a stable format.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boxtree'
func tracer() tracing.Trace {
	return tracing.Select("boxtree")
}
