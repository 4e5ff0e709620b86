package threadtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertTopLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("b", "a")})
	oldRoot := tree.Root()
	oldA := tree.Find("a")

	tree2, node := Insert(tree, c("t", ""))
	if err := tree2.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if node == nil || node.ID() != "t" {
		t.Fatalf("Insert did not return the inserted node")
	}
	if !node.IsTopLevel() {
		t.Errorf("expected inserted node to be top-level")
	}
	tops := tree2.TopLevel()
	if tops[len(tops)-1] != node {
		t.Errorf("inserted node must be the last top-level child")
	}
	if tree2.Root() == oldRoot {
		t.Errorf("copy on write did not work for the root")
	}
	if tree2.Find("a") != oldA {
		t.Errorf("untouched top-level subtree must keep its identity")
	}
}

func TestInsertNestedReplacesAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("b", "a"), c("z", "")})
	oldRoot := tree.Root()
	oldA := tree.Find("a")
	oldZ := tree.Find("z")

	tree2, node := Insert(tree, c("r", "b"))
	if err := tree2.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if node.Parent().ID() != "b" {
		t.Errorf("expected insertion under 'b', got %q", node.Parent().ID())
	}
	b := tree2.Find("b")
	if last := b.Children()[b.ChildCount()-1]; last != node {
		t.Errorf("inserted node must be the last child of its parent")
	}
	if top := node.TopLevel(); top == nil || top.ID() != "a" {
		t.Errorf("top-level ancestor of the insertion should be 'a'")
	}
	if tree2.Root() == oldRoot {
		t.Errorf("copy on write did not work for the root")
	}
	if tree2.Find("a") == oldA {
		t.Errorf("affected top-level ancestor must get a fresh identity")
	}
	if tree2.Find("z") != oldZ {
		t.Errorf("sibling top-level subtree must be shared, not copied")
	}
}

func TestInsertOrphanGoesTopLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", "")})
	tree2, node := Insert(tree, c("d", "x"))
	if node == nil || tree2.Find("d") == nil {
		t.Fatalf("orphan insert silently dropped")
	}
	if !node.IsTopLevel() {
		t.Errorf("orphan insert must attach under the root")
	}
	tops := tree2.TopLevelIDs()
	if tops[len(tops)-1] != "d" {
		t.Errorf("orphan must be appended as the last top-level node")
	}
}

func TestInsertIntoEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree2, node := Insert(Tree{}, c("a", ""))
	if tree2.IsEmpty() || node == nil {
		t.Fatalf("insert into zero tree failed")
	}
	if tree2.NodeCount() != 1 {
		t.Errorf("node count = %d, want 1", tree2.NodeCount())
	}
}
