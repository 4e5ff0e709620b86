package threadtree

// insertComment implements the single-comment mutation behind Insert.
//
// The update is a shallow path-copy: the root is re-allocated always, and for
// nested replies the top-level ancestor of the attach point is re-allocated
// as well. Nodes below the top-level ancestor are shared and mutated in
// place, which is fine under the single-writer discipline documented for the
// package.
func insertComment(tree Tree, c Comment) (Tree, *Node) {
	root := adoptRoot(tree.root)
	node := &Node{comment: &c}

	parent := root
	if pid := c.ParentID; pid != "" && pid != c.ID {
		if p := findNode(root, pid); p != nil {
			parent = p
		} else {
			tracer().Infof("parent %q of new comment %q unknown, promoting to top-level", pid, c.ID)
		}
	}

	if parent == root {
		root.children = append(root.children, node)
		node.parent = root
		return treeFromRoot(root), node
	}

	top := parent.TopLevel()
	assert(top != nil, "insert: attach point has no top-level ancestor")
	fresh := cloneShallow(top)
	for i, ch := range root.children {
		if ch == top {
			root.children[i] = fresh
			break
		}
	}
	fresh.parent = root
	if parent == top {
		parent = fresh
	}
	parent.children = append(parent.children, node)
	node.parent = parent
	return treeFromRoot(root), node
}

// cloneShallow re-allocates a node, keeping its comment, child sequence and
// UI state. Direct children are re-pointed to the clone; deeper nodes are
// untouched.
func cloneShallow(n *Node) *Node {
	fresh := &Node{
		comment:         n.comment,
		children:        n.children,
		parent:          n.parent,
		RenderedReplies: n.RenderedReplies,
		Collapsed:       n.Collapsed,
	}
	for _, ch := range fresh.children {
		ch.parent = fresh
	}
	return fresh
}
