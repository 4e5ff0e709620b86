package preview

import (
	"bufio"
	"strings"

	"github.com/corbalt/threadtree"
	"github.com/corbalt/threadtree/html"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

const ellipsis = "…"

// Width measures a string in fixed-width display cells, respecting grapheme
// cluster boundaries and East Asian width context.
func Width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// Excerpt flattens text to a single line and bounds it to a display-cell
// budget. The second return value reports whether text had to be cut.
//
// Cutting prefers UAX#14 line-break opportunities, so an excerpt ends on a
// word boundary whenever one fits the budget; pathological unbroken runs are
// cut between grapheme clusters instead. A cut excerpt ends with an ellipsis,
// which is included in the budget.
func Excerpt(text string, width int, context *uax11.Context) (string, bool) {
	if context == nil {
		context = uax11.ContextFromEnvironment()
	}
	flat := strings.Join(strings.Fields(text), " ")
	if flat == "" {
		return "", false
	}
	if width <= 0 {
		return "", true
	}
	if Width(flat, context) <= width {
		return flat, false
	}
	spaceleft := width - Width(ellipsis, context)
	var sb strings.Builder
	segmenter := segment.NewSegmenter(uax14.NewLineWrap())
	segmenter.Init(bufio.NewReader(strings.NewReader(flat)))
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		fraglen := Width(frag, context)
		if fraglen > spaceleft {
			break
		}
		sb.WriteString(frag)
		spaceleft -= fraglen
	}
	out := strings.TrimRight(sb.String(), " ")
	if out == "" {
		tracer().Debugf("no line-break opportunity within %d cells, cutting clusters", width)
		out = cutGraphemes(flat, width-Width(ellipsis, context), context)
	}
	return out + ellipsis, true
}

// cutGraphemes accumulates grapheme clusters while the budget lasts, so a cut
// never lands inside a cluster.
func cutGraphemes(s string, budget int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(s)
	var sb strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		cluster := gstr.Nth(i)
		w := uax11.StringWidth(grapheme.StringFromString(cluster), context)
		if used+w > budget {
			break
		}
		sb.WriteString(cluster)
		used += w
	}
	return sb.String()
}

// ForComment produces a one-line excerpt of a comment's body, stripping HTML
// markup first. Used by renderers to label collapsed threads.
func ForComment(c threadtree.Comment, width int, context *uax11.Context) (string, bool) {
	return Excerpt(html.CommentText(c), width, context)
}
