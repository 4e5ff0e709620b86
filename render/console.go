package render

/*
BSD 3-Clause License

Copyright (c) Liam Corbalt

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corbalt/threadtree"
	"github.com/corbalt/threadtree/preview"
	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Palette maps thread elements to console colors. It may cover just a subset
// of elements; uncovered ones print unstyled.
type Palette struct {
	Author    *color.Color
	Meta      *color.Color
	Collapsed *color.Color
}

func makeDefaultPalette() *Palette {
	return &Palette{
		Author:    color.New(color.FgBlue),
		Meta:      color.New(color.Faint),
		Collapsed: color.New(color.FgYellow),
	}
}

// Config carries output parameters for a console rendering pass.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// Console renders comment trees to a console with a fixed width font, one
// line per comment, indented by thread depth.
//
// Rendering maintains each visited node's RenderedReplies counter: the
// counter holds the number of children actually expanded, which is zero for
// collapsed subtrees.
type Console struct {
	palette *Palette
}

// NewConsole creates a console renderer.
//
// colors maps thread elements to display colors; passing nil selects a
// default palette.
func NewConsole(colors *Palette) *Console {
	c := &Console{palette: colors}
	if c.palette == nil {
		c.palette = makeDefaultPalette()
	}
	return c
}

// Print outputs a comment tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func (c *Console) Print(tree threadtree.Tree, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return c.Fprint(os.Stdout, tree, config)
}

// Fprint outputs a comment tree to w.
func (c *Console) Fprint(w io.Writer, tree threadtree.Tree, config *Config) error {
	if w == nil {
		return threadtree.ErrIllegalArguments
	}
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.ContextFromEnvironment()
	}
	for _, top := range tree.TopLevel() {
		c.renderNode(w, top, 0, config)
	}
	return nil
}

func (c *Console) renderNode(w io.Writer, n *threadtree.Node, depth int, config *Config) {
	indent := strings.Repeat("  ", depth)
	budget := config.LineWidth - preview.Width(indent, config.Context)
	if n.Collapsed {
		n.RenderedReplies = 0
		excerpt, _ := preview.ForComment(n.Comment(), budget-labelCells(n, config), config.Context)
		io.WriteString(w, indent)
		c.styled(w, c.palette.Collapsed, collapsedLabel(n))
		io.WriteString(w, " ")
		io.WriteString(w, excerpt)
		io.WriteString(w, "\n")
		return
	}
	rec := n.Comment()
	io.WriteString(w, indent)
	c.styled(w, c.palette.Author, rec.Author)
	if rec.Author != "" {
		io.WriteString(w, ": ")
	}
	bodyBudget := budget - preview.Width(rec.Author, config.Context) - 2
	excerpt, cut := preview.ForComment(rec, bodyBudget, config.Context)
	io.WriteString(w, excerpt)
	if cut {
		tracer().Debugf("comment %q cut to %d cells", rec.ID, bodyBudget)
	}
	if cnt := n.ChildCount(); cnt > 0 {
		c.styled(w, c.palette.Meta, fmt.Sprintf("  (%d)", cnt))
	}
	io.WriteString(w, "\n")
	n.RenderedReplies = n.ChildCount()
	for _, ch := range n.Children() {
		c.renderNode(w, ch, depth+1, config)
	}
}

// styled outputs s through the palette color, falling back to plain output
// when the palette has no entry.
func (c *Console) styled(w io.Writer, col *color.Color, s string) {
	if s == "" {
		return
	}
	if col != nil {
		col.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}

func collapsedLabel(n *threadtree.Node) string {
	return fmt.Sprintf("[+] %s (%d replies)", n.Comment().Author, n.Replies())
}

func labelCells(n *threadtree.Node, config *Config) int {
	// +1 for the separating space
	return preview.Width(collapsedLabel(n), config.Context) + 1
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
