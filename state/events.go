package state

import (
	"time"

	"github.com/corbalt/threadtree"
)

// Event is one of the closed set of state-transition triggers. The set is
// sealed by the unexported marker method; Apply rejects anything else.
type Event interface {
	isEvent()
	// Post returns the ID of the post the event addresses.
	Post() string
}

// LoadEvent is the first successful fetch of a post's comments. It creates
// the post's state entry; re-firing it for an already-present post is a
// no-op.
type LoadEvent struct {
	PostID   string
	Comments []threadtree.Comment
	Cursor   string
	Now      time.Time
}

// CommentEvent is a single comment submitted locally against an already
// loaded post.
type CommentEvent struct {
	PostID  string
	Comment threadtree.Comment
	Now     time.Time
}

// RepliesEvent is a fetched batch of replies for an already loaded post. The
// batch may overlap with comments already in the tree; known records are
// discarded before merging.
type RepliesEvent struct {
	PostID   string
	Comments []threadtree.Comment
	Now      time.Time
}

// PageEvent swaps in a replacement tree built by the caller from an older
// pagination page, together with the new cursor.
type PageEvent struct {
	PostID string
	Thread threadtree.Tree
	Cursor string
	Now    time.Time
}

// ReloadEvent rebuilds a post's tree from a full batch with order fidelity:
// the top-level thread order of the result exactly mirrors delivery order.
type ReloadEvent struct {
	PostID   string
	Comments []threadtree.Comment
	Cursor   string
	Now      time.Time
}

func (LoadEvent) isEvent()    {}
func (CommentEvent) isEvent() {}
func (RepliesEvent) isEvent() {}
func (PageEvent) isEvent()    {}
func (ReloadEvent) isEvent()  {}

func (e LoadEvent) Post() string    { return e.PostID }
func (e CommentEvent) Post() string { return e.PostID }
func (e RepliesEvent) Post() string { return e.PostID }
func (e PageEvent) Post() string    { return e.PostID }
func (e ReloadEvent) Post() string  { return e.PostID }
