/*
Package threadtree maintains in-memory trees of threaded discussion comments.

A remote source delivers the comments of a post as flat, possibly out-of-order
lists, usually in pages. This package reconstructs and incrementally updates
the thread hierarchy from such lists: building a tree from a flat batch,
merging a later batch into an existing tree, inserting a single locally
submitted comment, and looking up nodes by comment ID.

Comments may arrive before their parent does. A comment whose parent is not
known at attach time is never dropped; it is promoted to a top-level position
under the synthetic root, since the true parent may still arrive with a later
page.

Trees are handled with a copy-on-write discipline: mutations hand back a tree
with a fresh root identity (and a fresh identity for the affected top-level
subtree), while untouched sibling subtrees are shared. Consumers which compare
identities — typically a rendering layer deciding which thread to re-draw —
can detect the changed thread without diffing subtrees. A consequence of this
discipline is that a tree value passed into a mutating operation is consumed;
transitions on one post must be applied sequentially.

Subpackages build on the core: state implements the per-post event
orchestration, html extracts plain text from HTML comment bodies, preview
produces width-bounded excerpts for collapsed threads, and render prints
threads to a console.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Liam Corbalt

All rights reserved.

Please refer to the LICENSE file for details.
*/
package threadtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'threadtree'
func tracer() tracing.Trace {
	return tracing.Select("threadtree")
}

// assert panics on broken internal invariants.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// TreeError is an error type for the threadtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrTreeCompleted signals that a builder has already completed a tree and
// it's illegal to stage further comments.
const ErrTreeCompleted = TreeError("forbidden to add comments; tree has been completed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")
