package boxtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T comparable](t *Tree[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	id := 0
	type frame struct {
		n  *node[T]
		id int
	}
	stack := []frame{{t.root, id}}
	fmt.Fprintf(w, "\"%d\" [label=\"h=%d %s\",shape=box];\n", 0, t.root.height, boxLabel(t.root.bbox))
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.n.leaf {
			for _, item := range f.n.items {
				id++
				fmt.Fprintf(w, "\"%d\" [label=\"%v\",style=filled,fillcolor=lightgray];\n", id, item)
				fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", f.id, id)
			}
			continue
		}
		for _, child := range f.n.children {
			id++
			fmt.Fprintf(w, "\"%d\" [label=\"h=%d %s\",shape=box];\n", id, child.height, boxLabel(child.bbox))
			fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", f.id, id)
			stack = append(stack, frame{child, id})
		}
	}
	io.WriteString(w, "}\n")
}

func boxLabel(b BBox) string {
	d := b.Dim()
	s := "["
	for i := 0; i < d; i++ {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%g…%g", b.Min(i), b.Max(i))
	}
	return s + "]"
}
