/*
Package render prints comment trees to a console.

The renderer is the package's rendering collaborator in the sense of the
core tree model: it is the only mutator of the per-node RenderedReplies
counter and honors the Collapsed fold flag, labelling folded subtrees with a
reply count and a body excerpt.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Liam Corbalt

Please refer to the LICENSE file for details.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'threadtree'
func tracer() tracing.Trace {
	return tracing.Select("threadtree")
}
