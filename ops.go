package threadtree

// Build constructs a fresh tree from a flat batch of comment records and
// returns its root handle. Sibling order among staged records follows
// delivery order per parent; no global top-level ordering is guaranteed.
func Build(comments []Comment) Tree {
	b := NewBuilder()
	_ = b.Add(comments...)
	return b.Tree()
}

// BuildOrdered constructs a fresh tree whose top-level child order exactly
// reproduces the delivery order of top-level (and orphaned) records. It is
// used when the caller must mirror an authoritative remote ordering, e.g. a
// re-sorted page of top-level threads.
func BuildOrdered(comments []Comment) Tree {
	b := NewOrderedBuilder()
	_ = b.Add(comments...)
	return b.Tree()
}

// Merge merges a batch of comment records into an existing tree, attaching
// each record to its parent wherever that parent lives in the tree, and to
// the root when the parent is unknown. The input tree is consumed; the result
// carries a fresh root identity.
//
// Merge does not deduplicate: records already present in the tree must be
// filtered out beforehand, see Tree.Find.
func Merge(tree Tree, comments []Comment) Tree {
	b := NewBuilder()
	_ = b.Into(tree)
	_ = b.Add(comments...)
	return b.Tree()
}

// Insert inserts one new comment into an existing tree and returns the new
// tree together with the inserted node.
//
// If the comment names a parent present anywhere in the tree, the new node
// becomes that parent's last child; otherwise it becomes the last top-level
// node. The input tree is consumed: the result carries fresh identities for
// the root and for the top-level subtree containing the insertion, while all
// sibling subtrees are shared, so identity-comparing consumers can tell
// exactly which top-level thread changed.
func Insert(tree Tree, c Comment) (Tree, *Node) {
	return insertComment(tree, c)
}
