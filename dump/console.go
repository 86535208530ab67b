package dump

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/boxtree"
	"golang.org/x/term"
)

// A Console prints tree structures with a fixed line width. Output lines
// longer than the width are truncated, which keeps deep trees with large
// boxes readable on a terminal.
type Console struct {
	width  int
	colors []*color.Color
}

// NewConsole creates a console dumper with a given line width. A width of
// 0 selects the width of the terminal connected to stdout, or 80 if
// stdout is not a terminal.
func NewConsole(width int) *Console {
	if width <= 0 {
		width = 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
	}
	return &Console{
		width: width,
		colors: []*color.Color{
			color.New(color.FgCyan),
			color.New(color.FgGreen),
			color.New(color.FgYellow),
			color.New(color.FgMagenta),
		},
	}
}

// Print writes an indented listing of the tree to w, one line per node or
// item, using the console's width and colors. Node lines carry the node's
// height and bounding box, item lines the item's value.
func Print[T comparable](c *Console, t *boxtree.Tree[T], w io.Writer) {
	rootHeight := t.Height()
	tracer().Debugf("console dump of tree with height %d", rootHeight)
	t.Traverse(func(bbox boxtree.BBox, level int, item T, isItem bool) bool {
		var line string
		if isItem {
			line = fmt.Sprintf("%s- %v", strings.Repeat("  ", rootHeight), item)
		} else {
			depth := rootHeight - level
			col := c.colors[depth%len(c.colors)]
			line = fmt.Sprintf("%s%s", strings.Repeat("  ", depth),
				col.Sprintf("(h=%d) %s", level, formatBox(bbox)))
		}
		if utf8.RuneCountInString(line) > c.width {
			runes := []rune(line)
			line = string(runes[:c.width])
		}
		fmt.Fprintln(w, line)
		return true
	})
}

func formatBox(b boxtree.BBox) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < b.Dim(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g…%g", b.Min(i), b.Max(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
