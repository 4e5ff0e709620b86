/*
Package preview produces width-bounded one-line excerpts of comment bodies.

Collapsed threads are labelled by an excerpt of their head comment. Excerpts
are measured in display cells rather than bytes or runes, so combined emoji
and East Asian text do not overshoot a terminal column budget.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Liam Corbalt

Please refer to the LICENSE file for details.
*/
package preview

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'threadtree'
func tracer() tracing.Trace {
	return tracing.Select("threadtree")
}
