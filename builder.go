package rope

// Builder incrementally assembles a balanced rope from strings, ropes and
// subtrees.
//
// The builder is the only mutable type of this package. It holds a single
// in-progress root, which is replaced (never modified) on every push. A
// builder is owned by a single goroutine; the ropes it produces may be shared
// freely.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
//
//	r := NewBuilder().PushString("<<").PushRope(FromString("hello")).PushString(">>").Build()
type Builder struct {
	root *node
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the rope built from all fragments pushed so far.
//
// Build may be called multiple times. Pushing further fragments after Build
// is legal and never affects ropes returned earlier.
func (b *Builder) Build() Rope {
	root := b.rootNode()
	if root.length == 0 {
		tracer().Debugf("rope builder: rope is void")
	}
	return Rope{root: root, length: root.length}
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.root = nil
}

// rootNode returns the current root. If nothing has been pushed, it is
// the empty leaf.
func (b *Builder) rootNode() *node {
	if b == nil || b.root == nil {
		return emptyLeaf
	}
	return b.root
}

// push appends a subtree.
func (b *Builder) push(n *node) {
	if n.length == 0 {
		return
	}
	if b.root == nil {
		b.root = n
		return
	}
	b.root = concat(b.root, n)
}

// pushShortString appends a text of at most MaxLeaf bytes as a single leaf.
func (b *Builder) pushShortString(s string) error {
	leaf, err := leafFrom(s)
	if err != nil {
		return err
	}
	b.push(leaf)
	return nil
}

// PushString appends a text of arbitrary length.
//
// Long texts are cut into leaves of close to MaxLeaf bytes, which are
// assembled bottom-up into full inner nodes. This is considerably faster than
// pushing leaf after leaf.
func (b *Builder) PushString(s string) *Builder {
	if len(s) <= MaxLeaf {
		err := b.pushShortString(s)
		assert(err == nil, "rope builder: short string does not fit into a leaf")
		return b
	}
	tracer().Debugf("rope builder: bulk loading %d bytes", len(s))
	// stack holds lists of nodes in strictly descending height order; every
	// list has fewer than MaxChildren nodes of the same height.
	var stack [][]*node
	for len(s) > 0 {
		splitPoint := len(s)
		if len(s) > MaxLeaf {
			splitPoint = findSplitForBulk(s)
		}
		n := mustLeaf(s[:splitPoint])
		s = s[splitPoint:]
		for {
			top := len(stack) - 1
			if top < 0 || stack[top][0].height != n.height {
				stack = append(stack, nil)
				top++
			}
			stack[top] = append(stack[top], n)
			if len(stack[top]) < MaxChildren {
				break
			}
			n = mustInternal(stack[top]...)
			stack = stack[:top]
		}
	}
	for _, level := range stack {
		for _, n := range level {
			b.push(n)
		}
	}
	return b
}

// PushRope appends the text of a rope.
//
// Subtrees of r which are fully covered by r's window are re-used without
// copying any text.
func (b *Builder) PushRope(r Rope) *Builder {
	if r.root == nil || r.length == 0 {
		return b
	}
	b.subsequence(r.root, r.start, r.start+r.length)
	return b
}

// subsequence pushes range [start,end) of the subtree at n. Whole children
// are pushed as they are; only at the edges of the range leaf text is sliced.
func (b *Builder) subsequence(n *node, start, end int) {
	if start >= end {
		return
	}
	if start == 0 && end == n.length {
		b.push(n)
		return
	}
	if n.isLeaf() {
		err := b.pushShortString(n.leaf()[start:end])
		assert(err == nil, "rope builder: leaf slice does not fit into a leaf")
		return
	}
	offset := 0
	for _, child := range n.kids() {
		if end <= offset {
			break
		}
		next := offset + child.length
		if next > start {
			b.subsequence(child, max(start, offset)-offset, min(end, next)-offset)
		}
		offset = next
	}
}
