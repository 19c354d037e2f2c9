package rope

import "fmt"

const (
	// MinLeaf is the minimum length in bytes of a balanced leaf.
	MinLeaf = 511
	// MaxLeaf is the maximum length in bytes of any leaf.
	MaxLeaf = 1024
	// MinChildren is the lower fan-out bound of a balanced inner node.
	MinChildren = 4
	// MaxChildren is the upper fan-out bound of any inner node.
	MaxChildren = 8
)

// node is an immutable tree node. It is either a leaf, holding a flat text run,
// or an inner node, holding 2…MaxChildren children of uniform height.
//
// Nodes are shared between ropes and must never be changed after construction.
type node struct {
	height   int     // 0 for leaves
	length   int     // bytes of text in this subtree
	newlines int     // line terminators in this subtree
	text     string  // leaf payload, valid iff height == 0
	children []*node // inner payload, valid iff height > 0
}

// emptyLeaf is the root of the empty rope.
var emptyLeaf = &node{}

// leafFrom creates a leaf node for a flat text run.
func leafFrom(text string) (*node, error) {
	if len(text) > MaxLeaf {
		return nil, fmt.Errorf("%w: leaf of length %d exceeds %d", ErrConstruction, len(text), MaxLeaf)
	}
	return &node{
		length:   len(text),
		newlines: countNewlines(text),
		text:     text,
	}, nil
}

// internalFrom creates an inner node for a list of children.
// All children are required to have the same height; this is not re-checked.
//
// The children slice is copied, clients may re-use it.
func internalFrom(children []*node) (*node, error) {
	if len(children) < 2 || len(children) > MaxChildren {
		return nil, fmt.Errorf("%w: inner node with %d children", ErrConstruction, len(children))
	}
	n := &node{
		height:   children[0].height + 1,
		children: make([]*node, len(children)),
	}
	copy(n.children, children)
	for _, child := range children {
		n.length += child.length
	}
	n.newlines = joinedNewlines(children)
	return n, nil
}

// joinedNewlines sums up the line terminators of adjacent subtrees. A "\r\n"
// pair straddling two of them is a single terminator.
func joinedNewlines(children []*node) int {
	cnt := 0
	for i, child := range children {
		cnt += child.newlines
		if i > 0 && crlfSeam(children[i-1], child) {
			cnt--
		}
	}
	return cnt
}

// crlfSeam reports whether left ends with '\r' and right starts with '\n'.
func crlfSeam(left, right *node) bool {
	l, okl := left.lastByte()
	r, okr := right.firstByte()
	return okl && okr && l == '\r' && r == '\n'
}

func (n *node) firstByte() (byte, bool) {
	for !n.isLeaf() {
		i := 0
		for i < len(n.children)-1 && n.children[i].length == 0 {
			i++
		}
		n = n.children[i]
	}
	if n.length == 0 {
		return 0, false
	}
	return n.text[0], true
}

func (n *node) lastByte() (byte, bool) {
	for !n.isLeaf() {
		i := len(n.children) - 1
		for i > 0 && n.children[i].length == 0 {
			i--
		}
		n = n.children[i]
	}
	if n.length == 0 {
		return 0, false
	}
	return n.text[n.length-1], true
}

// mustLeaf and mustInternal are used by the tree algorithms, which guarantee
// the size bounds by construction. An error here is a broken invariant.
func mustLeaf(text string) *node {
	n, err := leafFrom(text)
	assert(err == nil, "rope: leaf construction out of bounds")
	return n
}

func mustInternal(children ...*node) *node {
	n, err := internalFrom(children)
	assert(err == nil, "rope: inner node construction out of bounds")
	return n
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// leaf returns the text of a leaf node.
func (n *node) leaf() string {
	assert(n.isLeaf(), "rope: leaf text requested from inner node")
	return n.text
}

// kids returns the children of an inner node.
func (n *node) kids() []*node {
	assert(!n.isLeaf(), "rope: children requested from leaf")
	return n.children
}

// isOkChild reports whether a node may be used as a child of an inner node
// without further rebalancing: leaves need at least MinLeaf bytes, inner
// nodes need at least MinChildren children.
func (n *node) isOkChild() bool {
	if n.isLeaf() {
		return n.length >= MinLeaf
	}
	return len(n.children) >= MinChildren
}

// findChild locates the child of an inner node which fully contains the
// range [start,end). It returns the child's index and its offset, or
// ok=false if the range straddles a child boundary.
func (n *node) findChild(start, end int) (index int, offset int, ok bool) {
	for i, child := range n.kids() {
		next := offset + child.length
		if start < next || (start == next && i == len(n.children)-1) {
			if end <= next {
				return i, offset, true
			}
			return 0, 0, false
		}
		offset = next
	}
	return 0, 0, false
}

// appendText appends the text of range [start,end) of the subtree at n to buf.
func (n *node) appendText(buf []byte, start, end int) []byte {
	if start >= end {
		return buf
	}
	if n.isLeaf() {
		return append(buf, n.text[start:end]...)
	}
	offset := 0
	for _, child := range n.children {
		if end <= offset {
			break
		}
		next := offset + child.length
		if next > start {
			buf = child.appendText(buf, max(start, offset)-offset, min(end, next)-offset)
		}
		offset = next
	}
	return buf
}

// eachLeaf calls f for every leaf fragment overlapping [start,end), in order,
// with the fragment clipped to the range. pos is the fragment's offset
// relative to start.
func (n *node) eachLeaf(start, end, pos int, f func(text string, pos int) error) (int, error) {
	if start >= end {
		return pos, nil
	}
	if n.isLeaf() {
		frag := n.text[start:end]
		return pos + len(frag), f(frag, pos)
	}
	offset := 0
	var err error
	for _, child := range n.children {
		if end <= offset {
			break
		}
		next := offset + child.length
		if next > start {
			pos, err = child.eachLeaf(max(start, offset)-offset, min(end, next)-offset, pos, f)
			if err != nil {
				return pos, err
			}
		}
		offset = next
	}
	return pos, nil
}
