package threadtree

// Find returns the node carrying the comment with the given ID, or nil if no
// such node exists. The synthetic root never matches, since it carries no
// comment.
//
// Traversal is depth-first in child order; order affects only performance,
// not the result, since IDs are unique within a tree.
func (t Tree) Find(id string) *Node {
	return findNode(t.root, id)
}

func findNode(n *Node, id string) *Node {
	if n == nil || id == "" {
		return nil
	}
	for _, ch := range n.children {
		if ch.comment != nil && ch.comment.ID == id {
			return ch
		}
		if hit := findNode(ch, id); hit != nil {
			return hit
		}
	}
	return nil
}
