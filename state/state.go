package state

import (
	"time"

	"github.com/corbalt/threadtree"
	"github.com/guiguan/caster"
)

// DefaultZIndex is the stacking value assigned to a freshly loaded post.
// Newly surfaced top-level threads stack above it, one step per thread.
const DefaultZIndex = 100

// State is the per-post record the store advances through events.
type State struct {
	// Thread is the post's comment tree.
	Thread threadtree.Tree
	// Next is the opaque pagination cursor for older comments. Empty means
	// there is nothing further to fetch.
	Next string
	// ZIndexTop is a monotonically increasing stacking counter; a newly
	// surfaced top-level thread renders above all prior ones.
	ZIndexTop int
	// FetchedAt is the time of the first successful fetch,
	// LastFetchedAt of the most recent one.
	FetchedAt     time.Time
	LastFetchedAt time.Time
	// CommentCount totals the comments currently held in Thread.
	CommentCount int
}

// Change describes the outcome of one successful mutation, broadcast to
// subscribers. A rendering layer receiving it knows which top-level threads
// to re-draw without diffing trees.
type Change struct {
	PostID string
	// RootIDs names the changed top-level threads. Empty when Reset is set.
	RootIDs []string
	// Reset marks a whole-tree replacement (load, page swap, reload).
	Reset bool
}

// Store holds the state entries of all posts and broadcasts changes.
//
// Events for one post must be applied in acceptance order by a single
// logical writer; subscriptions are safe from any goroutine.
type Store struct {
	posts  map[string]*State
	cast   *caster.Caster
	closed bool
}

// NewStore creates an empty store with an attached change broadcaster.
func NewStore() *Store {
	return &Store{
		posts: make(map[string]*State),
		cast:  caster.New(nil), // we will broadcast Change records after mutations
	}
}

// Close shuts down the change broadcaster. The store must not be used
// afterwards.
func (s *Store) Close() {
	if s == nil || s.closed {
		return
	}
	s.closed = true
	s.cast.Close()
}

// State returns the entry for a post, if present. The returned pointer is the
// live entry; callers outside the writing goroutine must treat it as
// read-only.
func (s *Store) State(postID string) (*State, bool) {
	st, ok := s.posts[postID]
	return st, ok
}

// Subscribe registers a listener for Change broadcasts. The returned cancel
// function unsubscribes; the channel delivers Change values.
func (s *Store) Subscribe(capacity uint) (<-chan interface{}, func()) {
	ch, _ := s.cast.Sub(nil, capacity)
	return ch, func() { s.cast.Unsub(ch) }
}

func (s *Store) publish(ch Change) {
	if s.closed {
		return
	}
	s.cast.Pub(ch)
}

// Apply advances the store by one event and reports precondition violations.
//
// All events except LoadEvent and ReloadEvent require an existing entry for
// the addressed post and fail with ErrUnknownPost otherwise.
func (s *Store) Apply(ev Event) error {
	if s == nil || ev == nil {
		return ErrUnknownEvent
	}
	if s.closed {
		return ErrStoreClosed
	}
	switch e := ev.(type) {
	case LoadEvent:
		return s.applyLoad(e)
	case CommentEvent:
		return s.applyComment(e)
	case RepliesEvent:
		return s.applyReplies(e)
	case PageEvent:
		return s.applyPage(e)
	case ReloadEvent:
		return s.applyReload(e)
	}
	return ErrUnknownEvent
}

func (s *Store) applyLoad(e LoadEvent) error {
	if _, ok := s.posts[e.PostID]; ok {
		tracer().Debugf("post %q already loaded, load event is a no-op", e.PostID)
		return nil
	}
	tree := threadtree.Build(e.Comments)
	s.posts[e.PostID] = &State{
		Thread:        tree,
		Next:          e.Cursor,
		ZIndexTop:     DefaultZIndex,
		FetchedAt:     e.Now,
		LastFetchedAt: e.Now,
		CommentCount:  tree.NodeCount(),
	}
	s.publish(Change{PostID: e.PostID, Reset: true})
	return nil
}

func (s *Store) applyComment(e CommentEvent) error {
	st, ok := s.posts[e.PostID]
	if !ok {
		return ErrUnknownPost
	}
	tree, node := threadtree.Insert(st.Thread, e.Comment)
	st.Thread = tree
	st.CommentCount++
	if node.IsTopLevel() {
		// a new top-level thread stacks above everything surfaced before
		st.ZIndexTop++
	}
	top := node.TopLevel()
	s.publish(Change{PostID: e.PostID, RootIDs: []string{top.ID()}})
	return nil
}

func (s *Store) applyReplies(e RepliesEvent) error {
	st, ok := s.posts[e.PostID]
	if !ok {
		return ErrUnknownPost
	}
	survivors := make([]threadtree.Comment, 0, len(e.Comments))
	for _, rec := range e.Comments {
		if st.Thread.Find(rec.ID) != nil {
			tracer().Debugf("reply %q already present, discarding", rec.ID)
			continue
		}
		survivors = append(survivors, rec)
	}
	st.LastFetchedAt = e.Now
	if len(survivors) == 0 {
		return nil
	}
	st.Thread = threadtree.Merge(st.Thread, survivors)
	st.CommentCount += len(survivors)
	s.publish(Change{PostID: e.PostID, RootIDs: changedRoots(st.Thread, survivors)})
	return nil
}

func (s *Store) applyPage(e PageEvent) error {
	st, ok := s.posts[e.PostID]
	if !ok {
		return ErrUnknownPost
	}
	st.Thread = e.Thread
	st.Next = e.Cursor
	st.LastFetchedAt = e.Now
	st.CommentCount = e.Thread.NodeCount()
	s.publish(Change{PostID: e.PostID, Reset: true})
	return nil
}

func (s *Store) applyReload(e ReloadEvent) error {
	tree := threadtree.BuildOrdered(e.Comments)
	st, ok := s.posts[e.PostID]
	if !ok {
		st = &State{FetchedAt: e.Now}
		s.posts[e.PostID] = st
	}
	st.Thread = tree
	st.Next = e.Cursor
	st.ZIndexTop = DefaultZIndex
	st.LastFetchedAt = e.Now
	st.CommentCount = tree.NodeCount()
	s.publish(Change{PostID: e.PostID, Reset: true})
	return nil
}

// changedRoots collects the top-level thread IDs touched by merged records,
// deduplicated, in first-touch order.
func changedRoots(tree threadtree.Tree, merged []threadtree.Comment) []string {
	seen := make(map[string]bool, len(merged))
	roots := make([]string, 0, len(merged))
	for _, rec := range merged {
		node := tree.Find(rec.ID)
		if node == nil {
			continue
		}
		top := node.TopLevel()
		if top == nil || seen[top.ID()] {
			continue
		}
		seen[top.ID()] = true
		roots = append(roots, top.ID())
	}
	return roots
}
