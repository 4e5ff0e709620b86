package html

import (
	"strings"
	"testing"

	"github.com/corbalt/threadtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTextFromHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	text, err := TextFromHTML(strings.NewReader("<p>Hello <em>World</em>!</p>"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Logf("text = %q", text)
	if text != "Hello World!" {
		t.Errorf("expected 'Hello World!', got %q", text)
	}
}

func TestCommentTextPlainBodyPassesThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	c := threadtree.Comment{ID: "a", Body: "just text, no markup"}
	if got := CommentText(c); got != c.Body {
		t.Errorf("plain body must pass through, got %q", got)
	}
}

func TestCommentTextStripsMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "threadtree")
	defer teardown()

	c := threadtree.Comment{ID: "a", Body: "<div>quoted <b>reply</b></div>"}
	if got := CommentText(c); got != "quoted reply" {
		t.Errorf("expected 'quoted reply', got %q", got)
	}
}
