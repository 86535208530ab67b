/*
Package pointstream loads streams of box records into a boxtree.

Records are read in batches and bulk-loaded, so large streams end up in a
well-filled tree instead of an insertion-order one. Progress is broadcast
to subscribers while the stream is consumed, which lets interactive
clients display ingestion state without polling.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/
package pointstream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boxtree'
func tracer() tracing.Trace {
	return tracing.Select("boxtree")
}
