package rope

import (
	"fmt"
	"io"
	"strings"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a rope in Graphviz DOT format
// (for debugging purposes). Subtrees shared between parts of the tree are
// output only once. For windowed ropes the complete underlying tree is shown.
func Rope2Dot(r Rope, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	var nodelist, edgelist strings.Builder
	var walk func(n *node, pos int)
	walk = func(n *node, pos int) {
		if ids.find(n) > 0 {
			return
		}
		ID := ids.alloc(n)
		styles := nodeDotStyles(n.isLeaf())
		if n.isLeaf() {
			label := fmt.Sprintf("%d @%d\\n“%s”", n.length, pos, strstart(n.text))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, styles)
			return
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%d/%d\" %s];\n", ID, n.height, n.length, styles)
		offset := pos
		for _, child := range n.children {
			walk(child, offset)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.find(child))
			offset += child.length
		}
	}
	walk(r.tree(), 0)
	if r.root != nil && !r.isFull() {
		tracer().Debugf("rope DOT: window [%d,%d) not shown", r.start, r.start+r.length)
	}
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// strstart returns a short, DOT-safe prefix of a leaf's text.
func strstart(text string) string {
	const maxlen = 12
	if len(text) > maxlen {
		cut := maxlen
		for cut > 0 && !isCharBoundary(text, cut) {
			cut--
		}
		text = text[:cut] + "…"
	}
	r := strings.NewReplacer(`"`, `\"`, `\`, `\\`, "\n", `\\n`, "\r", `\\r`)
	return r.Replace(text)
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
