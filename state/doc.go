/*
Package state orchestrates per-post comment trees in response to fetch and
submit events.

A Store keeps one State entry per post and advances it through an explicit
transition function: Apply takes one of a closed set of event kinds — initial
load, locally submitted comment, reply-batch fetch, older-page fetch, ordered
full reload — and produces the next state for the addressed post. Events for
a post not yet loaded fail loudly with ErrUnknownPost rather than silently
dropping the payload; only a load (or ordered reload) creates an entry.

Transitions for one post read the previous tree, so they must be applied in
the order their triggering events were accepted. The Store does not serialize
callers itself; one logical writer per store is the supported execution
model. Subscribers, in contrast, may listen from any goroutine: after each
successful mutation the store broadcasts a Change record naming the post and
the top-level threads affected, so rendering layers know exactly what to
re-draw without diffing trees.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Liam Corbalt

Please refer to the LICENSE file for details.
*/
package state

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'threadtree'
func tracer() tracing.Trace {
	return tracing.Select("threadtree")
}
