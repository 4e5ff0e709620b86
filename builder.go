package threadtree

// Builder incrementally stages flat comment records and finalizes them into
// a Tree.
//
// Builder collects records in delivery order and materializes the tree only
// when Tree() is called. Staged records may reference parents which are
// themselves staged later in the sequence; resolution happens in a separate
// pass at materialization time.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// staged keeps records in delivery order.
	staged []Comment

	// base is an optional existing tree to merge into.
	base    Tree
	hasBase bool

	// ordered pins top-level attachment order to delivery order.
	ordered bool

	done  bool
	dirty bool
	tree  Tree
}

// NewBuilder creates a new and empty tree builder.
//
// A plain builder guarantees per-parent append order for staged siblings, but
// no global top-level ordering fidelity.
func NewBuilder() *Builder {
	return &Builder{}
}

// NewOrderedBuilder creates a builder whose top-level attachment order is
// defined to exactly match delivery order: the sequence of top-level children
// of the finalized tree equals the sequence of staged records which are
// top-level or orphaned, with no reordering. Used when an authoritative
// remote ordering must be reproduced.
//
// An ordered builder always builds fresh; it cannot merge into an existing
// tree.
func NewOrderedBuilder() *Builder {
	return &Builder{ordered: true}
}

// Into sets an existing tree as merge target. Staged records whose parent is
// found anywhere in the target tree are attached there; the finalized tree
// has a fresh root identity and consumes the target.
//
// Returns ErrIllegalArguments for ordered builders, which never merge.
func (b *Builder) Into(tree Tree) error {
	if b == nil || b.ordered {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	b.base = tree
	b.hasBase = true
	b.dirty = true
	return nil
}

// Add stages comment records at the end of the delivery sequence.
//
// Returns ErrTreeCompleted if Tree() has already been called.
func (b *Builder) Add(comments ...Comment) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrTreeCompleted
	}
	b.staged = append(b.staged, comments...)
	if len(comments) > 0 {
		b.dirty = true
	}
	return nil
}

// Tree returns the tree built from all staged records.
//
// It is illegal to continue adding records after Tree has been called, but
// Tree may be called multiple times. Repeated calls return the same value
// until Reset is called.
func (b *Builder) Tree() Tree {
	if b == nil {
		return Tree{}
	}
	if b.dirty {
		b.tree = b.buildTree()
		b.dirty = false
	}
	b.done = true
	if b.tree.IsEmpty() {
		tracer().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
// The ordered flag of the builder is kept.
func (b *Builder) Reset() {
	b.staged = nil
	b.base = Tree{}
	b.hasBase = false
	b.done = false
	b.dirty = false
	b.tree = Tree{}
}

// buildTree materializes the staged records into a tree.
//
// Construction is two-pass. Pass 1 allocates one node per record into a
// lookup index keyed by ID; pass 2 walks the records again in delivery order
// and attaches each node to its resolved parent: first the batch index, then
// (when merging) anywhere in the existing tree, else the root. No record is
// ever dropped.
func (b *Builder) buildTree() Tree {
	root := newRoot()
	if b.hasBase {
		root = adoptRoot(b.base.root)
	}
	if len(b.staged) == 0 {
		return treeFromRoot(root)
	}

	// pass 1: allocate nodes, index by ID
	nodes := make([]*Node, len(b.staged))
	index := make(map[string]*Node, len(b.staged))
	for i := range b.staged {
		c := b.staged[i]
		nodes[i] = &Node{comment: &c}
		if c.ID != "" {
			// the builder does not deduplicate; on ID collision within a
			// batch the later record wins the index slot
			index[c.ID] = nodes[i]
		}
	}

	// pass 2: attach in delivery order
	for i := range b.staged {
		node := nodes[i]
		parent := root
		if pid := b.staged[i].ParentID; pid != "" && pid != b.staged[i].ID {
			if p, ok := index[pid]; ok && p != node {
				parent = p
			} else if b.hasBase {
				if p := findNode(root, pid); p != nil {
					parent = p
				}
			}
		}
		parent.children = append(parent.children, node)
		node.parent = parent
	}

	promoteUnreachable(root, nodes)
	return treeFromRoot(root)
}

// adoptRoot re-roots an existing tree under a fresh root node, so that a
// merge hands back a new root identity while sharing all subtrees.
func adoptRoot(old *Node) *Node {
	root := newRoot()
	if old == nil || len(old.children) == 0 {
		return root
	}
	root.children = make([]*Node, len(old.children), len(old.children)+1)
	copy(root.children, old.children)
	for _, top := range root.children {
		top.parent = root
	}
	return root
}

// promoteUnreachable breaks parent cycles formed by degenerate batches.
//
// Mutually-referential records (a names b as parent, b names a) attach to
// each other in pass 2 and end up in a cycle disconnected from the root.
// Policy: the first cycle member in delivery order is detached from its
// parent and promoted to top-level, which reconnects the rest of the cycle.
func promoteUnreachable(root *Node, nodes []*Node) {
	reachable := make(map[*Node]bool)
	markReachable(root, reachable)
	for _, node := range nodes {
		if reachable[node] {
			continue
		}
		tracer().Infof("comment %q is caught in a parent cycle, promoting to top-level", node.ID())
		detachFromParent(node)
		root.children = append(root.children, node)
		node.parent = root
		reachable[node] = true
		markReachable(node, reachable)
	}
}

func markReachable(n *Node, seen map[*Node]bool) {
	for _, ch := range n.children {
		if seen[ch] {
			continue
		}
		seen[ch] = true
		markReachable(ch, seen)
	}
}

func detachFromParent(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	for i, ch := range p.children {
		if ch == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}
