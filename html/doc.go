/*
Package html extracts plain text from HTML comment bodies.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Liam Corbalt

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'threadtree'
func tracer() tracing.Trace {
	return tracing.Select("threadtree")
}
