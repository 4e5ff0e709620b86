package threadtree

/*
BSD 3-Clause License

Copyright (c) Liam Corbalt

Please refer to the License file in the repository root.

*/

import (
	"time"
)

// Comment is one comment record as delivered by the remote source.
//
// Only ID and ParentID are interpreted by this package. An empty ParentID
// marks a top-level comment. All other fields are carried through untouched
// for consumers.
type Comment struct {
	ID        string
	ParentID  string
	Author    string
	Body      string
	CreatedAt time.Time
}

// IsTopLevel reports whether the record claims a top-level position.
func (c Comment) IsTopLevel() bool {
	return c.ParentID == ""
}

// Node is one position in a comment tree.
//
// The synthetic root node carries no comment. Children are owned by their
// parent through the ordered children sequence; the parent pointer is a
// non-owning back-reference. Child order is semantically meaningful: it is
// either per-parent arrival order or, for order-preserving builds, the exact
// top-level order of the remote source.
type Node struct {
	comment  *Comment
	children []*Node
	parent   *Node

	// RenderedReplies counts how many of this node's children the rendering
	// collaborator has expanded. Mutated only by renderers.
	RenderedReplies int

	// Collapsed folds this node's subtree in UI terms.
	Collapsed bool
}

// IsRoot reports whether the node is the synthetic root of its tree.
func (n *Node) IsRoot() bool {
	return n != nil && n.comment == nil && n.parent == nil
}

// ID returns the node's comment ID, or the empty string for the root.
func (n *Node) ID() string {
	if n == nil || n.comment == nil {
		return ""
	}
	return n.comment.ID
}

// Comment returns the node's comment record. The root node (and a nil node)
// yields the zero Comment.
func (n *Node) Comment() Comment {
	if n == nil || n.comment == nil {
		return Comment{}
	}
	return *n.comment
}

// Parent returns the owning node, or nil for the root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Children returns the node's ordered child sequence.
//
// The slice is the node's own; callers must not grow or reorder it.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// ChildCount returns the number of direct replies.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// IsTopLevel reports whether the node hangs directly under the root.
func (n *Node) IsTopLevel() bool {
	return n != nil && n.parent != nil && n.parent.IsRoot()
}

// TopLevel returns the top-level ancestor of the node, i.e. the node one hop
// below the root on n's parent chain. A top-level node is its own top-level
// ancestor. Returns nil for the root and for detached nodes.
func (n *Node) TopLevel() *Node {
	if n == nil || n.IsRoot() {
		return nil
	}
	walk := n
	for walk.parent != nil && !walk.parent.IsRoot() {
		walk = walk.parent
	}
	if walk.parent == nil {
		return nil
	}
	return walk
}

// Depth returns the node's distance from the root. The root has depth 0,
// top-level comments have depth 1.
func (n *Node) Depth() int {
	d := 0
	for walk := n; walk != nil && walk.parent != nil; walk = walk.parent {
		d++
	}
	return d
}

// Replies returns the total number of comments in n's subtree, excluding n
// itself.
func (n *Node) Replies() int {
	if n == nil {
		return 0
	}
	return n.descendants()
}

// descendants counts the nodes of n's subtree, excluding n itself.
func (n *Node) descendants() int {
	cnt := 0
	for _, ch := range n.children {
		cnt += 1 + ch.descendants()
	}
	return cnt
}

// Tree is a handle on one post's comment tree.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty thread. Mutating operations
// consume their input tree and return a tree with a fresh root identity.
type Tree struct {
	root *Node
}

// newRoot allocates a synthetic root node.
func newRoot() *Node {
	return &Node{}
}

// treeFromRoot wraps a root node, normalizing nil to the empty tree.
func treeFromRoot(root *Node) Tree {
	if root == nil {
		return Tree{}
	}
	return Tree{root: root}
}

// Root returns the synthetic root node, or nil for the empty tree.
func (t Tree) Root() *Node {
	return t.root
}

// IsEmpty reports whether the tree holds no comments.
func (t Tree) IsEmpty() bool {
	return t.root == nil || len(t.root.children) == 0
}

// NodeCount returns the number of comment nodes, excluding the root.
func (t Tree) NodeCount() int {
	if t.root == nil {
		return 0
	}
	return t.root.descendants()
}

// TopLevel returns the ordered sequence of top-level nodes.
func (t Tree) TopLevel() []*Node {
	if t.root == nil {
		return nil
	}
	return t.root.children
}

// TopLevelIDs returns the IDs of the top-level nodes in order.
func (t Tree) TopLevelIDs() []string {
	tops := t.TopLevel()
	if len(tops) == 0 {
		return nil
	}
	ids := make([]string, len(tops))
	for i, n := range tops {
		ids[i] = n.ID()
	}
	return ids
}

// EachNode visits all comment nodes depth-first in child order, parents
// before children. The root itself is not visited. Iteration stops early if
// the callback returns false.
func (t Tree) EachNode(fn func(n *Node) bool) {
	if t.root == nil || fn == nil {
		return
	}
	eachNode(t.root, fn)
}

func eachNode(n *Node, fn func(n *Node) bool) bool {
	for _, ch := range n.children {
		if !fn(ch) {
			return false
		}
		if !eachNode(ch, fn) {
			return false
		}
	}
	return true
}
