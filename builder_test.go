package threadtree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func c(id, parent string) Comment {
	return Comment{ID: id, ParentID: parent}
}

func TestBuildGroupsReplies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("b", "a"), c("c", "")})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, tree.TopLevelIDs()); diff != "" {
		t.Errorf("top-level order mismatch (-want +got):\n%s", diff)
	}
	a := tree.Find("a")
	if a == nil || a.ChildCount() != 1 || a.Children()[0].ID() != "b" {
		t.Errorf("expected 'b' to be the single child of 'a'")
	}
}

func TestBuildAttachesEveryRecord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	batch := []Comment{
		c("a", ""), c("b", "a"), c("d", "b"), c("e", "nowhere"),
		c("f", "a"), c("g", ""),
	}
	tree := Build(batch)
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.NodeCount() != len(batch) {
		t.Errorf("node count = %d, want %d", tree.NodeCount(), len(batch))
	}
	for _, rec := range batch {
		if tree.Find(rec.ID) == nil {
			t.Errorf("record %q lost during build", rec.ID)
		}
	}
}

func TestBuildForwardReference(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	// child delivered before its parent, within the same batch
	tree := Build([]Comment{c("b", "a"), c("a", "")})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a"}, tree.TopLevelIDs()); diff != "" {
		t.Errorf("top-level order mismatch (-want +got):\n%s", diff)
	}
	b := tree.Find("b")
	if b == nil || b.Parent().ID() != "a" {
		t.Errorf("expected 'b' nested under 'a'")
	}
}

func TestBuildOrphanPromotedNotDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("x", "missing")})
	x := tree.Find("x")
	if x == nil {
		t.Fatalf("orphan record dropped")
	}
	if !x.IsTopLevel() {
		t.Errorf("orphan should be promoted to top-level")
	}
}

func TestBuildParentChainsBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	batch := []Comment{c("1", ""), c("2", "1"), c("3", "2"), c("4", "3"), c("5", "4")}
	tree := Build(batch)
	tree.EachNode(func(n *Node) bool {
		steps := 0
		for walk := n; !walk.IsRoot(); walk = walk.Parent() {
			steps++
			if steps > len(batch) {
				t.Fatalf("parent chain of %q exceeds batch size", n.ID())
			}
		}
		return true
	})
}

func TestBuildOrderedFidelity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := BuildOrdered([]Comment{c("c", ""), c("a", ""), c("b", "a")})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, tree.TopLevelIDs()); diff != "" {
		t.Errorf("top-level order must match delivery order (-want +got):\n%s", diff)
	}
	b := tree.Find("b")
	if b == nil || b.Parent().ID() != "a" {
		t.Errorf("expected 'b' nested under 'a'")
	}
}

func TestBuildOrderedOrphanAtDeliveryPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := BuildOrdered([]Comment{c("a", ""), c("x", "missing"), c("b", "")})
	if diff := cmp.Diff([]string{"a", "x", "b"}, tree.TopLevelIDs()); diff != "" {
		t.Errorf("orphan not at its delivery position (-want +got):\n%s", diff)
	}
}

func TestMergeAttachesToExistingParents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("b", "a")})
	oldRoot := tree.Root()
	merged := Merge(tree, []Comment{c("r1", "b"), c("r2", "a"), c("t", "")})
	if err := merged.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if merged.Root() == oldRoot {
		t.Errorf("merge must hand back a fresh root identity")
	}
	if merged.NodeCount() != 5 {
		t.Errorf("node count = %d, want 5", merged.NodeCount())
	}
	r1 := merged.Find("r1")
	if r1 == nil || r1.Parent().ID() != "b" {
		t.Errorf("expected 'r1' under the nested node 'b'")
	}
	b := merged.Find("b")
	if last := b.Children()[b.ChildCount()-1]; last.ID() != "r1" {
		t.Errorf("merged reply must be appended as last child")
	}
}

func TestMergeEmptyBatchKeepsCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", ""), c("b", "a")})
	merged := Merge(tree, nil)
	if merged.NodeCount() != 2 {
		t.Errorf("node count = %d, want 2", merged.NodeCount())
	}
}

func TestBuilderRefusesLateAdds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	b := NewBuilder()
	_ = b.Add(c("a", ""))
	_ = b.Tree()
	if err := b.Add(c("b", "")); !errors.Is(err, ErrTreeCompleted) {
		t.Errorf("expected ErrTreeCompleted, got %v", err)
	}
}

func TestOrderedBuilderRefusesMergeTarget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	b := NewOrderedBuilder()
	if err := b.Into(Tree{}); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments, got %v", err)
	}
}

func TestBuildSelfParentPromoted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", "a")})
	a := tree.Find("a")
	if a == nil || !a.IsTopLevel() {
		t.Errorf("self-referential record must be promoted to top-level")
	}
}

func TestBuildMutualCyclePromoted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	tree := Build([]Comment{c("a", "b"), c("b", "a")})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	if tree.NodeCount() != 2 {
		t.Fatalf("cycle member lost: node count = %d, want 2", tree.NodeCount())
	}
	a := tree.Find("a")
	if a == nil || !a.IsTopLevel() {
		t.Errorf("first cycle member must be promoted to top-level")
	}
	b := tree.Find("b")
	if b == nil || b.Parent().ID() != "a" {
		t.Errorf("remaining cycle member should stay attached under 'a'")
	}
}
