package threadtree

import "fmt"

// ErrInvalidTree signals a broken structural invariant.
const ErrInvalidTree = TreeError("invalid tree structure")

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests while the
// implementation is evolving. Checked invariants:
//   - the root carries no comment and has no parent,
//   - every non-root node carries a comment and appears in exactly one
//     children sequence, with its parent back-reference pointing at the owner,
//   - comment IDs are unique across the tree,
//   - every parent chain reaches the root (no cycles).
func (t Tree) Check() error {
	if t.root == nil {
		return nil
	}
	if t.root.comment != nil {
		return fmt.Errorf("%w: root node carries a comment", ErrInvalidTree)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root node has a parent", ErrInvalidTree)
	}
	seen := make(map[*Node]bool)
	ids := make(map[string]bool)
	return checkNode(t.root, seen, ids)
}

func checkNode(n *Node, seen map[*Node]bool, ids map[string]bool) error {
	for _, ch := range n.children {
		if ch == nil {
			return fmt.Errorf("%w: nil child under %q", ErrInvalidTree, n.ID())
		}
		if ch.comment == nil {
			return fmt.Errorf("%w: non-root node without comment under %q", ErrInvalidTree, n.ID())
		}
		if ch.parent != n {
			return fmt.Errorf("%w: parent back-reference of %q does not point at owner", ErrInvalidTree, ch.ID())
		}
		if seen[ch] {
			return fmt.Errorf("%w: node %q owned by more than one parent", ErrInvalidTree, ch.ID())
		}
		seen[ch] = true
		if id := ch.comment.ID; id != "" {
			if ids[id] {
				return fmt.Errorf("%w: duplicate comment ID %q", ErrInvalidTree, id)
			}
			ids[id] = true
		}
		if err := checkNode(ch, seen, ids); err != nil {
			return err
		}
	}
	return nil
}
